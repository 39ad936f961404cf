package server

import (
	"errors"
	"net/http"

	"github.com/avolkov/cardbase/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (s *Server) listExperts(c *gin.Context) {
	experts := []model.Expert{}
	if err := s.db.Find(&experts).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, experts)
}

func (s *Server) getExpert(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var expert model.Expert
	if err := s.db.First(&expert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Expert")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, expert)
}

func (s *Server) createExpert(c *gin.Context) {
	var in model.ExpertCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	expert := model.Expert{UserID: in.UserID, DomainID: in.DomainID, Level: in.Level}
	if err := s.db.Create(&expert).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expert)
}

func (s *Server) updateExpert(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in model.ExpertUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	var expert model.Expert
	if err := s.db.First(&expert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Expert")
			return
		}
		internalError(c, err)
		return
	}
	if changes := in.Changes(); len(changes) > 0 {
		if err := s.db.Model(&expert).Updates(changes).Error; err != nil {
			internalError(c, err)
			return
		}
	}
	if err := s.db.First(&expert, id).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, expert)
}

func (s *Server) deleteExpert(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var expert model.Expert
	if err := s.db.First(&expert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Expert")
			return
		}
		internalError(c, err)
		return
	}
	if err := s.db.Delete(&expert).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, expert)
}
