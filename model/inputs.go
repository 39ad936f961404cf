package model

// Request bodies for the REST surface. Create shapes carry binding rules so
// malformed requests are rejected by the validation layer before any handler
// logic runs. Update shapes use pointer fields: a nil field was omitted from
// the request and must keep its stored value.

type UserCreate struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

type UserUpdate struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
	Role  *string `json:"role"`
}

func (u *UserUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Email != nil {
		changes["email"] = *u.Email
	}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Role != nil {
		changes["role"] = *u.Role
	}
	return changes
}

type DomainCreate struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type DomainUpdate struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (d *DomainUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if d.Code != nil {
		changes["code"] = *d.Code
	}
	if d.Name != nil {
		changes["name"] = *d.Name
	}
	if d.Description != nil {
		changes["description"] = *d.Description
	}
	return changes
}

type SourceCreate struct {
	DomainID int32  `json:"domain_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Uri      string `json:"uri" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type SourceUpdate struct {
	DomainID *int32  `json:"domain_id"`
	Title    *string `json:"title"`
	Type     *string `json:"type"`
	Uri      *string `json:"uri"`
	IsActive *bool   `json:"is_active"`
}

func (s *SourceUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if s.DomainID != nil {
		changes["domain_id"] = *s.DomainID
	}
	if s.Title != nil {
		changes["title"] = *s.Title
	}
	if s.Type != nil {
		changes["type"] = *s.Type
	}
	if s.Uri != nil {
		changes["uri"] = *s.Uri
	}
	if s.IsActive != nil {
		changes["is_active"] = *s.IsActive
	}
	return changes
}

type CardCreate struct {
	DomainID    *int32  `json:"domain_id"`
	OwnerID     *int32  `json:"owner_id"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Status      string  `json:"status"`
}

type CardUpdate struct {
	DomainID    *int32  `json:"domain_id"`
	OwnerID     *int32  `json:"owner_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Status      *string `json:"status"`
}

func (c *CardUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if c.DomainID != nil {
		changes["domain_id"] = *c.DomainID
	}
	if c.OwnerID != nil {
		changes["owner_id"] = *c.OwnerID
	}
	if c.Title != nil {
		changes["title"] = *c.Title
	}
	if c.Description != nil {
		changes["description"] = *c.Description
	}
	if c.Content != nil {
		changes["content"] = *c.Content
	}
	if c.Status != nil {
		changes["status"] = *c.Status
	}
	return changes
}

type ExpertCreate struct {
	UserID   int32  `json:"user_id" binding:"required"`
	DomainID int32  `json:"domain_id" binding:"required"`
	Level    string `json:"level" binding:"required"`
}

type ExpertUpdate struct {
	UserID   *int32  `json:"user_id"`
	DomainID *int32  `json:"domain_id"`
	Level    *string `json:"level"`
}

func (e *ExpertUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if e.UserID != nil {
		changes["user_id"] = *e.UserID
	}
	if e.DomainID != nil {
		changes["domain_id"] = *e.DomainID
	}
	if e.Level != nil {
		changes["level"] = *e.Level
	}
	return changes
}

type EventCreate struct {
	CardID    int32   `json:"card_id" binding:"required"`
	UserID    int32   `json:"user_id" binding:"required"`
	EventType string  `json:"event_type" binding:"required"`
	Payload   *string `json:"payload"`
}

type EventUpdate struct {
	CardID    *int32  `json:"card_id"`
	UserID    *int32  `json:"user_id"`
	EventType *string `json:"event_type"`
	Payload   *string `json:"payload"`
}

func (e *EventUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if e.CardID != nil {
		changes["card_id"] = *e.CardID
	}
	if e.UserID != nil {
		changes["user_id"] = *e.UserID
	}
	if e.EventType != nil {
		changes["event_type"] = *e.EventType
	}
	if e.Payload != nil {
		changes["payload"] = *e.Payload
	}
	return changes
}

// CardSourceLink is the body of the card/source link endpoint.
type CardSourceLink struct {
	Note *string `json:"note"`
}
