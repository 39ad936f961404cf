package model

import "time"

// Short shapes are the denormalized fragments embedded in composite
// responses, mirroring only what a listing needs to render.

type UserShort struct {
	Id   int32  `json:"id"`
	Name string `json:"name"`
}

type DomainShort struct {
	Id   int32  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type SourceShort struct {
	Id       int32  `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Uri      string `json:"uri"`
	IsActive bool   `json:"is_active"`
}

type EventShort struct {
	Id        int32     `json:"id"`
	EventType string    `json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
	Payload   *string   `json:"payload"`
	User      UserShort `json:"user"`
}

// CardFull is the composite detail view of one card: the row itself plus its
// relations. Domain and Owner are nil when the card has neither.
type CardFull struct {
	Card    Card          `json:"card"`
	Domain  *DomainShort  `json:"domain"`
	Owner   *UserShort    `json:"owner"`
	Sources []SourceShort `json:"sources"`
	Events  []EventShort  `json:"events"`
}
