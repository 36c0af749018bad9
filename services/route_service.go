package services

import (
	"errors"
	"fmt"

	"bikeandbed-backend/models"

	"gorm.io/gorm"
)

var ErrRouteNotFound = errors.New("route_not_found")

// RouteService mirrors AccommodationService for cycling routes. Route
// reviews carry (rating, difficulty_rating) pairs.
type RouteService struct {
	DB *gorm.DB
}

func NewRouteService(db *gorm.DB) *RouteService {
	return &RouteService{DB: db}
}

// ListActive returns active routes, optionally narrowed to one difficulty
// tier. An empty difficulty means no filter.
func (s *RouteService) ListActive(difficulty models.Difficulty) ([]models.Route, error) {
	if difficulty != "" && !models.ValidDifficulty(difficulty) {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	routes := []models.Route{}
	q := s.DB.
		Preload("Images", orderImagesPrimaryFirst).
		Preload("Reviews").
		Where("is_active = ?", true)
	if difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}
	if err := q.Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

func (s *RouteService) GetByID(id string) (models.Route, error) {
	var route models.Route
	err := s.DB.
		Preload("Images", orderImagesPrimaryFirst).
		Preload("Reviews").
		First(&route, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Route{}, ErrRouteNotFound
		}
		return models.Route{}, fmt.Errorf("get route: %w", err)
	}
	return route, nil
}
