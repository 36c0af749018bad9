package services

import (
	"errors"
	"fmt"
	"time"

	"bikeandbed-backend/models"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound   = errors.New("booking_not_found")
	ErrInvalidDates      = errors.New("invalid_dates")
	ErrCapacityExceeded  = errors.New("capacity_exceeded")
	ErrInvalidTransition = errors.New("invalid_status_transition")
	ErrListingInactive   = errors.New("listing_inactive")
	ErrNotBookingOwner   = errors.New("not_booking_owner")
	ErrNotListingOwner   = errors.New("not_listing_owner")
)

// BookingService wraps *gorm.DB for booking reads and the create /
// status-transition write intents.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// ListForUser returns the user's bookings newest-created-first, each with
// its accommodation and that accommodation's images.
func (s *BookingService) ListForUser(userID string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := s.DB.
		Preload("Accommodation.Images", orderImagesPrimaryFirst).
		Preload("Accommodation").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// ListForHost returns bookings placed against any of the host's listings,
// newest first.
func (s *BookingService) ListForHost(hostID string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := s.DB.
		Preload("Accommodation.Images", orderImagesPrimaryFirst).
		Preload("Accommodation").
		Joins("JOIN accommodations ON accommodations.id = bookings.accommodation_id").
		Where("accommodations.host_id = ?", hostID).
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list host bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) GetByID(id string) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Accommodation.Images", orderImagesPrimaryFirst).
		Preload("Accommodation").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

// CreateBookingInput carries "2006-01-02" date strings, matching what the
// date pickers submit.
type CreateBookingInput struct {
	AccommodationID string `json:"accommodation_id" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Guests          int    `json:"guests" binding:"required,gt=0"`
}

// Create validates the stay against the listing and inserts a pending
// booking with the server-computed total price.
func (s *BookingService) Create(userID string, input CreateBookingInput) (models.Booking, error) {
	checkIn, err := time.Parse("2006-01-02", input.CheckIn)
	if err != nil {
		return models.Booking{}, ErrInvalidDates
	}
	checkOut, err := time.Parse("2006-01-02", input.CheckOut)
	if err != nil {
		return models.Booking{}, ErrInvalidDates
	}
	if models.Nights(checkIn, checkOut) <= 0 {
		return models.Booking{}, ErrInvalidDates
	}

	var accommodation models.Accommodation
	if err := s.DB.First(&accommodation, "id = ?", input.AccommodationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrAccommodationNotFound
		}
		return models.Booking{}, fmt.Errorf("load accommodation: %w", err)
	}
	if !accommodation.IsActive {
		return models.Booking{}, ErrListingInactive
	}
	if input.Guests > accommodation.Capacity {
		return models.Booking{}, ErrCapacityExceeded
	}

	booking := models.Booking{
		UserID:          userID,
		AccommodationID: accommodation.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          input.Guests,
		TotalPrice:      models.TotalPrice(checkIn, checkOut, accommodation.PricePerNight),
		Status:          models.BookingPending,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("create booking: %w", err)
	}
	booking.Accommodation = accommodation
	return booking, nil
}

// HostEarnings sums a host's completed booking revenue per listing, for
// the host earnings screen.
type HostEarnings struct {
	AccommodationID   string  `json:"accommodation_id"`
	AccommodationName string  `json:"accommodation_name"`
	CompletedBookings int64   `json:"completed_bookings"`
	Revenue           float64 `json:"revenue"`
}

func (s *BookingService) EarningsForHost(hostID string) ([]HostEarnings, error) {
	earnings := []HostEarnings{}
	err := s.DB.Model(&models.Booking{}).
		Select("accommodations.id AS accommodation_id, accommodations.name AS accommodation_name, COUNT(bookings.id) AS completed_bookings, COALESCE(SUM(bookings.total_price), 0) AS revenue").
		Joins("JOIN accommodations ON accommodations.id = bookings.accommodation_id").
		Where("accommodations.host_id = ? AND bookings.status = ?", hostID, models.BookingCompleted).
		Group("accommodations.id, accommodations.name").
		Scan(&earnings).Error
	if err != nil {
		return nil, fmt.Errorf("host earnings: %w", err)
	}
	return earnings, nil
}

// UpdateStatus moves a booking along the allowed transition table. Hosts
// may only act on bookings against their own listings; admins pass an
// empty hostID.
func (s *BookingService) UpdateStatus(id, hostID string, to models.BookingStatus) (models.Booking, error) {
	if !models.ValidBookingStatus(to) {
		return models.Booking{}, ErrInvalidTransition
	}

	var updated models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Preload("Accommodation").First(&booking, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("load booking: %w", err)
		}
		if hostID != "" && booking.Accommodation.HostID != hostID {
			return ErrNotListingOwner
		}
		if !models.CanTransition(booking.Status, to) {
			return ErrInvalidTransition
		}
		if err := tx.Model(&booking).Update("status", to).Error; err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		booking.Status = to
		updated = booking
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return updated, nil
}
