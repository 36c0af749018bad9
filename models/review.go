package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccommodationReview is one guest review, tied to exactly one completed
// booking by the reviewing user. One review per booking.
type AccommodationReview struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	BookingID       string    `gorm:"size:36;not null;uniqueIndex" json:"booking_id"`
	UserID          string    `gorm:"size:36;index;not null" json:"user_id"`
	AccommodationID string    `gorm:"size:36;index;not null" json:"accommodation_id"`
	Rating          int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment         *string   `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (r *AccommodationReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RouteReview adds a difficulty vote on top of the overall rating.
type RouteReview struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	BookingID        string    `gorm:"size:36;not null;uniqueIndex" json:"booking_id"`
	UserID           string    `gorm:"size:36;index;not null" json:"user_id"`
	RouteID          string    `gorm:"size:36;index;not null" json:"route_id"`
	Rating           int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	DifficultyRating int       `gorm:"not null;check:difficulty_rating >= 1 AND difficulty_rating <= 5" json:"difficulty_rating"`
	Comment          *string   `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (r *RouteReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RatingSummary is a presentation-layer aggregate over raw review ratings.
// The data layer always returns the raw values; callers decide whether to
// summarize.
type RatingSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

func SummarizeRatings(ratings []int) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return RatingSummary{
		Count:   len(ratings),
		Average: float64(sum) / float64(len(ratings)),
	}
}
