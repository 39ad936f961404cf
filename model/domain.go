package model

/*

Domain is a topical category grouping sources, cards and experts

Id: primary key, use to identify a domain
Code: unique short code, for example "ml"
Name: display name
Description: optional free-form description

Sources: sources registered under this domain, removed with the domain
Cards: cards filed under this domain, removed with the domain
Experts: expert profiles recorded for this domain, removed with the domain

*/

type Domain struct {
	Id          int32    `json:"id" gorm:"primaryKey"`
	Code        string   `json:"code" gorm:"uniqueIndex;not null"`
	Name        string   `json:"name" gorm:"not null"`
	Description *string  `json:"description"`
	Sources     []Source `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Cards       []Card   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Experts     []Expert `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}
