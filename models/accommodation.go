package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Accommodation is a host-owned listing. Review ratings are embedded raw;
// aggregation happens in the presentation layer (see RatingSummary).
type Accommodation struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	HostID      string   `gorm:"size:36;index;not null" json:"host_id"`
	Name        string   `gorm:"size:255;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Location    string   `gorm:"size:255" json:"location"`
	Address     string   `gorm:"size:255" json:"address"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`

	PricePerNight float64 `gorm:"not null" json:"price_per_night"`
	Capacity      int     `gorm:"default:1" json:"capacity"`
	Bedrooms      int     `gorm:"default:1" json:"bedrooms"`
	Bathrooms     int     `gorm:"default:1" json:"bathrooms"`

	HasBikeStorage bool `gorm:"default:false" json:"has_bike_storage"`
	HasBikeRental  bool `gorm:"default:false" json:"has_bike_rental"`
	HasBikeTools   bool `gorm:"default:false" json:"has_bike_tools"`
	HasLaundry     bool `gorm:"default:false" json:"has_laundry"`
	HasWifi        bool `gorm:"default:false" json:"has_wifi"`
	HasKitchen     bool `gorm:"default:false" json:"has_kitchen"`
	HasParking     bool `gorm:"default:false" json:"has_parking"`

	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Host    Profile               `gorm:"foreignKey:HostID;references:ID" json:"-"`
	Images  []AccommodationImage  `gorm:"foreignKey:AccommodationID" json:"accommodation_images"`
	Reviews []AccommodationReview `gorm:"foreignKey:AccommodationID" json:"accommodation_reviews"`
}

func (a *Accommodation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type AccommodationImage struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	AccommodationID string    `gorm:"size:36;index;not null" json:"accommodation_id"`
	ImageURL        string    `gorm:"size:512;not null" json:"image_url"`
	IsPrimary       bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt       time.Time `json:"created_at"`
}

func (i *AccommodationImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// PrimaryImage returns the image flagged primary, falling back to the first
// one. At most one primary per listing is expected (enforced upstream).
func (a *Accommodation) PrimaryImage() *AccommodationImage {
	for i := range a.Images {
		if a.Images[i].IsPrimary {
			return &a.Images[i]
		}
	}
	if len(a.Images) > 0 {
		return &a.Images[0]
	}
	return nil
}
