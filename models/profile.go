package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleHost, RoleAdmin:
		return true
	}
	return false
}

const (
	LanguageEN = "en"
	LanguageES = "es"
)

func ValidLanguage(lang string) bool {
	return lang == LanguageEN || lang == LanguageES
}

// Profile is the identity record behind every authenticated session.
// PasswordHash never leaves the server; the mobile client only ever sees
// the JSON shape.
type Profile struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	Email        string  `gorm:"uniqueIndex;size:150" json:"email"`
	PasswordHash string  `gorm:"size:255" json:"-"`
	FirstName    *string `gorm:"size:100" json:"first_name,omitempty"`
	LastName     *string `gorm:"size:100" json:"last_name,omitempty"`
	AvatarURL    *string `gorm:"size:512" json:"avatar_url,omitempty"`
	Phone        *string `gorm:"size:50" json:"phone,omitempty"`
	Bio          *string `gorm:"type:text" json:"bio,omitempty"`
	Location     *string `gorm:"size:255" json:"location,omitempty"`
	Role         Role    `gorm:"size:20;default:user;index" json:"role"`
	Language     string  `gorm:"size:5;default:en" json:"language"`

	// Denormalized counters the client renders on the profile screen
	// (trips, reviews, listings, rating). Shape is owned by the client.
	Stats datatypes.JSON `json:"stats,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
