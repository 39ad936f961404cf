package model

import "time"

/*

Event is an append-only activity log entry tied to a card

Id: primary key, use to identify an event
CardID:
Card: card this event happened on, removed with the card
UserID:
User: user who triggered the event, removed with the user
EventType: free-form kind string, for example "status_changed"
Payload: optional opaque text, usually serialized JSON
CreatedAt: time when entity is created

*/

type Event struct {
	Id        int32     `json:"id" gorm:"primaryKey"`
	CardID    int32     `json:"card_id" gorm:"not null"`
	Card      *Card     `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	UserID    int32     `json:"user_id" gorm:"not null"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	EventType string    `json:"event_type" gorm:"not null"`
	Payload   *string   `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}
