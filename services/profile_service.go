package services

import (
	"errors"
	"fmt"

	"bikeandbed-backend/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile_not_found")

// ProfileService wraps *gorm.DB for profile reads and the small set of
// write intents the client issues (partial field updates, language).
type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

func (s *ProfileService) GetByID(id string) (models.Profile, error) {
	var profile models.Profile
	if err := s.DB.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// ProfileUpdateFields mirrors the editable subset of the profile screen.
type ProfileUpdateFields struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Location  *string `json:"location,omitempty"`
}

// Update merges non-nil fields into the stored profile and returns the
// merged record.
func (s *ProfileService) Update(id string, fields ProfileUpdateFields) (models.Profile, error) {
	updates := map[string]interface{}{}
	if fields.FirstName != nil {
		updates["first_name"] = *fields.FirstName
	}
	if fields.LastName != nil {
		updates["last_name"] = *fields.LastName
	}
	if fields.AvatarURL != nil {
		updates["avatar_url"] = *fields.AvatarURL
	}
	if fields.Phone != nil {
		updates["phone"] = *fields.Phone
	}
	if fields.Bio != nil {
		updates["bio"] = *fields.Bio
	}
	if fields.Location != nil {
		updates["location"] = *fields.Location
	}

	if len(updates) > 0 {
		res := s.DB.Model(&models.Profile{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return models.Profile{}, fmt.Errorf("update profile: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.Profile{}, ErrProfileNotFound
		}
	}
	return s.GetByID(id)
}

// SetLanguage persists the language preference on the profile row.
func (s *ProfileService) SetLanguage(id, lang string) error {
	if !models.ValidLanguage(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	res := s.DB.Model(&models.Profile{}).Where("id = ?", id).Update("language", lang)
	if res.Error != nil {
		return fmt.Errorf("set language: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
