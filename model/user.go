package model

import "time"

/*

User is an account that owns cards, triggers events and holds expert profiles

Id: primary key, use to identify a user
Email: unique login identity
Name: display name
Role: free-form role string, for example "editor"
CreatedAt: time when entity is created

Cards: cards owned by this user, "has-many" relation, removed with the user
Events: activity log entries this user triggered, removed with the user
ExpertProfiles: per-domain proficiency records, removed with the user

*/

type User struct {
	Id             int32     `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Name           string    `json:"name" gorm:"not null"`
	Role           string    `json:"role" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
	Cards          []Card    `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
	Events         []Event   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	ExpertProfiles []Expert  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}
