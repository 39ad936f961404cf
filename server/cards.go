package server

import (
	"errors"
	"net/http"

	"github.com/avolkov/cardbase/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cardFullEventLimit caps how much of the activity log the detail view
// carries, newest first.
const cardFullEventLimit = 20

func (s *Server) listCards(c *gin.Context) {
	cards := []model.Card{}
	if err := s.db.Find(&cards).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (s *Server) getCard(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var card model.Card
	if err := s.db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Card")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (s *Server) createCard(c *gin.Context) {
	var in model.CardCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	card := model.Card{
		DomainID:    in.DomainID,
		OwnerID:     in.OwnerID,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Status:      in.Status,
	}
	if card.Status == "" {
		card.Status = "draft"
	}
	if err := s.db.Create(&card).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (s *Server) updateCard(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in model.CardUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	var card model.Card
	if err := s.db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Card")
			return
		}
		internalError(c, err)
		return
	}
	// Updates through a change map refreshes updated_at on every mutation.
	if changes := in.Changes(); len(changes) > 0 {
		if err := s.db.Model(&card).Updates(changes).Error; err != nil {
			internalError(c, err)
			return
		}
	}
	if err := s.db.First(&card, id).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (s *Server) deleteCard(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var card model.Card
	if err := s.db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Card")
			return
		}
		internalError(c, err)
		return
	}
	if err := s.db.Delete(&card).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// getCardFull returns the card with its domain, owner, linked sources and
// the most recent slice of its activity log.
func (s *Server) getCardFull(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var card model.Card
	err := s.db.
		Preload("Domain").
		Preload("Owner").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC").Limit(cardFullEventLimit)
		}).
		Preload("Events.User").
		Preload("Sources").
		First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Card")
			return
		}
		internalError(c, err)
		return
	}

	full := model.CardFull{
		Card:    card,
		Sources: make([]model.SourceShort, 0, len(card.Sources)),
		Events:  make([]model.EventShort, 0, len(card.Events)),
	}
	if card.Domain != nil {
		full.Domain = &model.DomainShort{Id: card.Domain.Id, Code: card.Domain.Code, Name: card.Domain.Name}
	}
	if card.Owner != nil {
		full.Owner = &model.UserShort{Id: card.Owner.Id, Name: card.Owner.Name}
	}
	for _, source := range card.Sources {
		full.Sources = append(full.Sources, model.SourceShort{
			Id:       source.Id,
			Title:    source.Title,
			Type:     source.Type,
			Uri:      source.Uri,
			IsActive: source.IsActive,
		})
	}
	for _, event := range card.Events {
		short := model.EventShort{
			Id:        event.Id,
			EventType: event.EventType,
			CreatedAt: event.CreatedAt,
			Payload:   event.Payload,
		}
		if event.User != nil {
			short.User = model.UserShort{Id: event.User.Id, Name: event.User.Name}
		}
		full.Events = append(full.Events, short)
	}
	c.JSON(http.StatusOK, full)
}

// linkCardSource attaches a source to a card with an optional note.
// Linking an already linked pair just replaces the note.
func (s *Server) linkCardSource(c *gin.Context) {
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}
	sourceID, ok := pathID(c, "sourceID")
	if !ok {
		return
	}
	var in model.CardSourceLink
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			validationError(c, err)
			return
		}
	}

	var card model.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Card")
			return
		}
		internalError(c, err)
		return
	}
	var source model.Source
	if err := s.db.First(&source, sourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Source")
			return
		}
		internalError(c, err)
		return
	}

	link := model.CardSource{CardID: card.Id, SourceID: source.Id, Note: in.Note}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "card_id"}, {Name: "source_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"note"}),
	}).Create(&link).Error
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (s *Server) unlinkCardSource(c *gin.Context) {
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}
	sourceID, ok := pathID(c, "sourceID")
	if !ok {
		return
	}
	var link model.CardSource
	err := s.db.Where("card_id = ? AND source_id = ?", cardID, sourceID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Card source link")
			return
		}
		internalError(c, err)
		return
	}
	if err := s.db.Where("card_id = ? AND source_id = ?", cardID, sourceID).Delete(&model.CardSource{}).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}
