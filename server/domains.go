package server

import (
	"errors"
	"net/http"

	"github.com/avolkov/cardbase/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (s *Server) listDomains(c *gin.Context) {
	domains := []model.Domain{}
	if err := s.db.Find(&domains).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, domains)
}

func (s *Server) getDomain(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var domain model.Domain
	if err := s.db.First(&domain, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Domain")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain)
}

func (s *Server) createDomain(c *gin.Context) {
	var in model.DomainCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	domain := model.Domain{Code: in.Code, Name: in.Name, Description: in.Description}
	if err := s.db.Create(&domain).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, domain)
}

func (s *Server) updateDomain(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in model.DomainUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	var domain model.Domain
	if err := s.db.First(&domain, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Domain")
			return
		}
		internalError(c, err)
		return
	}
	if changes := in.Changes(); len(changes) > 0 {
		if err := s.db.Model(&domain).Updates(changes).Error; err != nil {
			internalError(c, err)
			return
		}
	}
	if err := s.db.First(&domain, id).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain)
}

// deleteDomain removes the domain row; its sources, cards and expert
// profiles go with it through the cascade rules, and events of the removed
// cards go transitively.
func (s *Server) deleteDomain(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var domain model.Domain
	if err := s.db.First(&domain, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Domain")
			return
		}
		internalError(c, err)
		return
	}
	if err := s.db.Delete(&domain).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain)
}
