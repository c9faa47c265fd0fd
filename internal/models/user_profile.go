package models

import (
	"time"
)

// UserProfile is the persisted profile document, keyed by the auth
// provider's uid. CreatedAt is written once at creation. Latitude and
// Longitude stay null unless the location flow sets them; the identity
// upsert never writes either.
type UserProfile struct {
	UID         string    `gorm:"primaryKey;size:128" json:"uid"`
	Email       string    `gorm:"size:255" json:"email"`
	DisplayName string    `gorm:"size:255" json:"display_name"`
	PhotoURL    string    `gorm:"size:512" json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
}

// TableName pins the table name regardless of pluralization settings.
func (UserProfile) TableName() string { return "user_profiles" }
