package model

// Expert records a user's proficiency level within one domain.
type Expert struct {
	Id       int32   `json:"id" gorm:"primaryKey"`
	UserID   int32   `json:"user_id" gorm:"not null"`
	User     *User   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	DomainID int32   `json:"domain_id" gorm:"not null"`
	Domain   *Domain `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Level    string  `json:"level" gorm:"not null"`
}
