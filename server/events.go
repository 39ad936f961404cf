package server

import (
	"errors"
	"net/http"

	"github.com/avolkov/cardbase/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (s *Server) listEvents(c *gin.Context) {
	events := []model.Event{}
	if err := s.db.Find(&events).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (s *Server) getEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var event model.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Event")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *Server) createEvent(c *gin.Context) {
	var in model.EventCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	event := model.Event{CardID: in.CardID, UserID: in.UserID, EventType: in.EventType, Payload: in.Payload}
	if err := s.db.Create(&event).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (s *Server) updateEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in model.EventUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	var event model.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Event")
			return
		}
		internalError(c, err)
		return
	}
	if changes := in.Changes(); len(changes) > 0 {
		if err := s.db.Model(&event).Updates(changes).Error; err != nil {
			internalError(c, err)
			return
		}
	}
	if err := s.db.First(&event, id).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *Server) deleteEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var event model.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Event")
			return
		}
		internalError(c, err)
		return
	}
	if err := s.db.Delete(&event).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
