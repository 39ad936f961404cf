package server

import (
	"errors"
	"net/http"

	"github.com/avolkov/cardbase/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (s *Server) listSources(c *gin.Context) {
	sources := []model.Source{}
	if err := s.db.Find(&sources).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, sources)
}

func (s *Server) getSource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var source model.Source
	if err := s.db.First(&source, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Source")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, source)
}

func (s *Server) createSource(c *gin.Context) {
	var in model.SourceCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	source := model.Source{DomainID: in.DomainID, Title: in.Title, Type: in.Type, Uri: in.Uri, IsActive: true}
	if in.IsActive != nil {
		source.IsActive = *in.IsActive
	}
	if err := s.db.Create(&source).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, source)
}

func (s *Server) updateSource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in model.SourceUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	var source model.Source
	if err := s.db.First(&source, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Source")
			return
		}
		internalError(c, err)
		return
	}
	if changes := in.Changes(); len(changes) > 0 {
		if err := s.db.Model(&source).Updates(changes).Error; err != nil {
			internalError(c, err)
			return
		}
	}
	if err := s.db.First(&source, id).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, source)
}

func (s *Server) deleteSource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var source model.Source
	if err := s.db.First(&source, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Source")
			return
		}
		internalError(c, err)
		return
	}
	if err := s.db.Delete(&source).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, source)
}
