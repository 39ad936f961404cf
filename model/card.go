package model

import "time"

/*

Card is a knowledge item, the central entity of the service

Id: primary key, use to identify a card
DomainID:
Domain: optional domain the card is filed under, "belongs-to" relation,
		removing the domain removes the card
OwnerID:
Owner: optional user owning the card, removing the owner removes the card
Title: display title
Description: optional short summary, searched by the feed and the mock chat
Content: optional long-form body
Status: workflow state, free-form string, defaults to "draft"
CreatedAt: time when entity is created
UpdatedAt: refreshed by the store on every mutation

Events: activity log of this card, removed with the card
Sources: references annotated on this card, "many-to-many" relation via
card_sources

*/

type Card struct {
	Id          int32     `json:"id" gorm:"primaryKey"`
	DomainID    *int32    `json:"domain_id"`
	Domain      *Domain   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	OwnerID     *int32    `json:"owner_id"`
	Owner       *User     `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Status      string    `json:"status" gorm:"not null;default:draft"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Events      []Event   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Sources     []*Source `json:"-" gorm:"many2many:card_sources;"`
}
