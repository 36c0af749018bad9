package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to
// another. pending goes to confirmed or cancelled; confirmed goes to
// completed or cancelled. cancelled and completed are terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted || to == BookingCancelled
	}
	return false
}

// Booking is a user's stay request against one accommodation.
type Booking struct {
	ID              string        `gorm:"primaryKey;size:36" json:"id"`
	UserID          string        `gorm:"size:36;index;not null" json:"user_id"`
	AccommodationID string        `gorm:"size:36;index;not null" json:"accommodation_id"`
	CheckIn         time.Time     `gorm:"not null" json:"check_in"`
	CheckOut        time.Time     `gorm:"not null" json:"check_out"`
	Guests          int           `gorm:"default:1" json:"guests"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `gorm:"size:20;default:pending;index" json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	User          Profile       `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Accommodation Accommodation `gorm:"foreignKey:AccommodationID;references:ID" json:"accommodation"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Nights counts whole nights between check-in and check-out, on calendar
// days in UTC so times-of-day on the stamps don't skew the count.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	n := int(out.Sub(in).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// TotalPrice is nights × nightly rate.
func TotalPrice(checkIn, checkOut time.Time, pricePerNight float64) float64 {
	return float64(Nights(checkIn, checkOut)) * pricePerNight
}
