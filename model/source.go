package model

import "time"

/*

Source is a reference document or link registered under a domain

Id: primary key, use to identify a source
DomainID:
Domain: domain this source belongs to, "belongs-to" relation
Title: display title
Type: kind of reference, for example "article" or "video"
Uri: where the reference lives
IsActive: soft switch, inactive sources stay linked but are flagged off
CreatedAt: time when entity is created

Cards: cards annotated with this source, "many-to-many" relation via
card_sources

*/

type Source struct {
	Id        int32     `json:"id" gorm:"primaryKey"`
	DomainID  int32     `json:"domain_id" gorm:"not null"`
	Domain    *Domain   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Title     string    `json:"title" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"`
	Uri       string    `json:"uri" gorm:"not null"`
	IsActive  bool      `json:"is_active" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	Cards     []*Card   `json:"-" gorm:"many2many:card_sources;"`
}
