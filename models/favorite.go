package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteAccommodation links a user to a saved listing. The pair is
// unique; toggling an existing pair removes it.
type FavoriteAccommodation struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"size:36;not null;uniqueIndex:idx_user_accommodation" json:"user_id"`
	AccommodationID string    `gorm:"size:36;not null;uniqueIndex:idx_user_accommodation" json:"accommodation_id"`
	CreatedAt       time.Time `json:"created_at"`

	Accommodation Accommodation `gorm:"foreignKey:AccommodationID;references:ID" json:"accommodation"`
}

func (FavoriteAccommodation) TableName() string {
	return "favorite_accommodations"
}

func (f *FavoriteAccommodation) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
