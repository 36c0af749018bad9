package services

import (
	"errors"
	"fmt"
	"strings"

	"bikeandbed-backend/models"

	"gorm.io/gorm"
)

var ErrAccommodationNotFound = errors.New("accommodation_not_found")

// AccommodationService wraps *gorm.DB for listing queries and the host
// write intents. List results carry images (primary first) and the raw
// rating values of each listing's reviews; aggregation is left to callers.
type AccommodationService struct {
	DB *gorm.DB
}

func NewAccommodationService(db *gorm.DB) *AccommodationService {
	return &AccommodationService{DB: db}
}

func orderImagesPrimaryFirst(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC, created_at ASC")
}

// ListActive returns every active accommodation with its images and
// review ratings. Zero matches yield an empty slice, not an error.
func (s *AccommodationService) ListActive() ([]models.Accommodation, error) {
	accommodations := []models.Accommodation{}
	err := s.DB.
		Preload("Images", orderImagesPrimaryFirst).
		Preload("Reviews").
		Where("is_active = ?", true).
		Find(&accommodations).Error
	if err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}
	return accommodations, nil
}

func (s *AccommodationService) GetByID(id string) (models.Accommodation, error) {
	var accommodation models.Accommodation
	err := s.DB.
		Preload("Images", orderImagesPrimaryFirst).
		Preload("Reviews").
		First(&accommodation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Accommodation{}, ErrAccommodationNotFound
		}
		return models.Accommodation{}, fmt.Errorf("get accommodation: %w", err)
	}
	return accommodation, nil
}

// ListByHost returns the host's own listings, active or not.
func (s *AccommodationService) ListByHost(hostID string) ([]models.Accommodation, error) {
	accommodations := []models.Accommodation{}
	err := s.DB.
		Preload("Images", orderImagesPrimaryFirst).
		Preload("Reviews").
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&accommodations).Error
	if err != nil {
		return nil, fmt.Errorf("list host accommodations: %w", err)
	}
	return accommodations, nil
}

type CreateAccommodationInput struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Location       string   `json:"location" binding:"required"`
	Address        string   `json:"address"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	PricePerNight  float64  `json:"price_per_night" binding:"required,gt=0"`
	Capacity       int      `json:"capacity" binding:"required,gt=0"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	HasBikeStorage bool     `json:"has_bike_storage"`
	HasBikeRental  bool     `json:"has_bike_rental"`
	HasBikeTools   bool     `json:"has_bike_tools"`
	HasLaundry     bool     `json:"has_laundry"`
	HasWifi        bool     `json:"has_wifi"`
	HasKitchen     bool     `json:"has_kitchen"`
	HasParking     bool     `json:"has_parking"`
	ImageURLs      []string `json:"image_urls"`
}

// Create inserts a listing plus its images in one transaction. The first
// image becomes the primary one.
func (s *AccommodationService) Create(hostID string, input CreateAccommodationInput) (models.Accommodation, error) {
	accommodation := models.Accommodation{
		HostID:         hostID,
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		Location:       strings.TrimSpace(input.Location),
		Address:        input.Address,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		PricePerNight:  input.PricePerNight,
		Capacity:       input.Capacity,
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		HasBikeStorage: input.HasBikeStorage,
		HasBikeRental:  input.HasBikeRental,
		HasBikeTools:   input.HasBikeTools,
		HasLaundry:     input.HasLaundry,
		HasWifi:        input.HasWifi,
		HasKitchen:     input.HasKitchen,
		HasParking:     input.HasParking,
		IsActive:       true,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&accommodation).Error; err != nil {
			return fmt.Errorf("create accommodation: %w", err)
		}
		for i, url := range input.ImageURLs {
			image := models.AccommodationImage{
				AccommodationID: accommodation.ID,
				ImageURL:        url,
				IsPrimary:       i == 0,
			}
			if err := tx.Create(&image).Error; err != nil {
				return fmt.Errorf("create accommodation image: %w", err)
			}
			accommodation.Images = append(accommodation.Images, image)
		}
		return nil
	})
	if err != nil {
		return models.Accommodation{}, err
	}
	return accommodation, nil
}

// SetActive flips the is_active flag. Hosts may only touch their own
// listings; admins pass an empty hostID to skip the ownership check.
func (s *AccommodationService) SetActive(id, hostID string, active bool) error {
	q := s.DB.Model(&models.Accommodation{}).Where("id = ?", id)
	if hostID != "" {
		q = q.Where("host_id = ?", hostID)
	}
	res := q.Update("is_active", active)
	if res.Error != nil {
		return fmt.Errorf("set accommodation active: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAccommodationNotFound
	}
	return nil
}
