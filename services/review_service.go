package services

import (
	"errors"
	"fmt"

	"bikeandbed-backend/models"

	"gorm.io/gorm"
)

var (
	ErrBookingNotCompleted = errors.New("booking_not_completed")
	ErrAlreadyReviewed     = errors.New("already_reviewed")
	ErrInvalidRating       = errors.New("invalid_rating")
)

// ReviewService wraps *gorm.DB for review submission. Every review hangs
// off a completed booking owned by the reviewer, one review per booking.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

func validRating(r int) bool {
	return r >= 1 && r <= 5
}

// reviewableBooking loads the booking and checks ownership and status.
func (s *ReviewService) reviewableBooking(tx *gorm.DB, bookingID, userID string) (models.Booking, error) {
	var booking models.Booking
	if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("load booking: %w", err)
	}
	if booking.UserID != userID {
		return models.Booking{}, ErrNotBookingOwner
	}
	if booking.Status != models.BookingCompleted {
		return models.Booking{}, ErrBookingNotCompleted
	}
	return booking, nil
}

type CreateAccommodationReviewInput struct {
	BookingID string  `json:"booking_id" binding:"required"`
	Rating    int     `json:"rating" binding:"required"`
	Comment   *string `json:"comment"`
}

func (s *ReviewService) CreateForAccommodation(userID string, input CreateAccommodationReviewInput) (models.AccommodationReview, error) {
	if !validRating(input.Rating) {
		return models.AccommodationReview{}, ErrInvalidRating
	}

	var review models.AccommodationReview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := s.reviewableBooking(tx, input.BookingID, userID)
		if err != nil {
			return err
		}

		review = models.AccommodationReview{
			BookingID:       booking.ID,
			UserID:          userID,
			AccommodationID: booking.AccommodationID,
			Rating:          input.Rating,
			Comment:         input.Comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrAlreadyReviewed
			}
			return fmt.Errorf("create review: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.AccommodationReview{}, err
	}
	return review, nil
}

type CreateRouteReviewInput struct {
	BookingID        string  `json:"booking_id" binding:"required"`
	RouteID          string  `json:"route_id" binding:"required"`
	Rating           int     `json:"rating" binding:"required"`
	DifficultyRating int     `json:"difficulty_rating" binding:"required"`
	Comment          *string `json:"comment"`
}

// CreateForRoute ties a route review to a completed accommodation stay —
// the trip during which the route was ridden.
func (s *ReviewService) CreateForRoute(userID string, input CreateRouteReviewInput) (models.RouteReview, error) {
	if !validRating(input.Rating) || !validRating(input.DifficultyRating) {
		return models.RouteReview{}, ErrInvalidRating
	}

	var review models.RouteReview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := s.reviewableBooking(tx, input.BookingID, userID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Route{}).Where("id = ?", input.RouteID).Count(&count).Error; err != nil {
			return fmt.Errorf("check route: %w", err)
		}
		if count == 0 {
			return ErrRouteNotFound
		}

		review = models.RouteReview{
			BookingID:        booking.ID,
			UserID:           userID,
			RouteID:          input.RouteID,
			Rating:           input.Rating,
			DifficultyRating: input.DifficultyRating,
			Comment:          input.Comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrAlreadyReviewed
			}
			return fmt.Errorf("create route review: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.RouteReview{}, err
	}
	return review, nil
}

func (s *ReviewService) ListForAccommodation(accommodationID string) ([]models.AccommodationReview, error) {
	reviews := []models.AccommodationReview{}
	err := s.DB.
		Where("accommodation_id = ?", accommodationID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list accommodation reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) ListForRoute(routeID string) ([]models.RouteReview, error) {
	reviews := []models.RouteReview{}
	err := s.DB.
		Where("route_id = ?", routeID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list route reviews: %w", err)
	}
	return reviews, nil
}
