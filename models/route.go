package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyHard:
		return true
	}
	return false
}

// Route is a cycling route listing, the parallel shape to Accommodation.
type Route struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	CreatorID   string   `gorm:"size:36;index;not null" json:"creator_id"`
	Name        string   `gorm:"size:255;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Location    string   `gorm:"size:255" json:"location"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`

	DistanceKm     float64    `gorm:"not null" json:"distance_km"`
	ElevationGainM int        `gorm:"default:0" json:"elevation_gain_m"`
	Difficulty     Difficulty `gorm:"size:20;default:moderate" json:"difficulty"`

	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Images  []RouteImage  `gorm:"foreignKey:RouteID" json:"route_images"`
	Reviews []RouteReview `gorm:"foreignKey:RouteID" json:"route_reviews"`
}

func (r *Route) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type RouteImage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	RouteID   string    `gorm:"size:36;index;not null" json:"route_id"`
	ImageURL  string    `gorm:"size:512;not null" json:"image_url"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

func (i *RouteImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
