package services

import (
	"errors"
	"fmt"

	"bikeandbed-backend/models"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// FavoriteService wraps *gorm.DB for the user's saved listings.
type FavoriteService struct {
	DB *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{DB: db}
}

// ListForUser returns favorite associations joined with the full
// accommodation, its images and review ratings.
func (s *FavoriteService) ListForUser(userID string) ([]models.FavoriteAccommodation, error) {
	favorites := []models.FavoriteAccommodation{}
	err := s.DB.
		Preload("Accommodation.Images", orderImagesPrimaryFirst).
		Preload("Accommodation.Reviews").
		Preload("Accommodation").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

// isDuplicateKey matches unique-index violations, both the raw MySQL
// error (1062) and gorm's translated form.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// Toggle adds the accommodation to the user's favorites, or removes it if
// the pair already exists. Returns whether the listing is a favorite after
// the call. A concurrent double-insert hitting the unique pair index is
// treated as the remove branch.
func (s *FavoriteService) Toggle(userID, accommodationID string) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Accommodation{}).Where("id = ?", accommodationID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check accommodation: %w", err)
	}
	if count == 0 {
		return false, ErrAccommodationNotFound
	}

	res := s.DB.
		Where("user_id = ? AND accommodation_id = ?", userID, accommodationID).
		Delete(&models.FavoriteAccommodation{})
	if res.Error != nil {
		return false, fmt.Errorf("remove favorite: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	favorite := models.FavoriteAccommodation{UserID: userID, AccommodationID: accommodationID}
	if err := s.DB.Create(&favorite).Error; err != nil {
		if isDuplicateKey(err) {
			return true, nil
		}
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return true, nil
}

// IsFavorite reports whether the pair exists.
func (s *FavoriteService) IsFavorite(userID, accommodationID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.FavoriteAccommodation{}).
		Where("user_id = ? AND accommodation_id = ?", userID, accommodationID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return count > 0, nil
}
