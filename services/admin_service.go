package services

import (
	"fmt"

	"bikeandbed-backend/models"

	"gorm.io/gorm"
)

// AdminService backs the admin dashboard, user list and report screens.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (s *AdminService) ListProfiles() ([]models.Profile, error) {
	profiles := []models.Profile{}
	if err := s.DB.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// PlatformReport is the aggregate snapshot the admin report screen shows.
type PlatformReport struct {
	Users             int64   `json:"users"`
	Hosts             int64   `json:"hosts"`
	Accommodations    int64   `json:"accommodations"`
	ActiveListings    int64   `json:"active_listings"`
	Routes            int64   `json:"routes"`
	Bookings          int64   `json:"bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	CompletedRevenue  float64 `json:"completed_revenue"`
}

func (s *AdminService) Report() (PlatformReport, error) {
	var report PlatformReport

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&report.Users, s.DB.Model(&models.Profile{}).Where("role = ?", models.RoleUser)},
		{&report.Hosts, s.DB.Model(&models.Profile{}).Where("role = ?", models.RoleHost)},
		{&report.Accommodations, s.DB.Model(&models.Accommodation{})},
		{&report.ActiveListings, s.DB.Model(&models.Accommodation{}).Where("is_active = ?", true)},
		{&report.Routes, s.DB.Model(&models.Route{})},
		{&report.Bookings, s.DB.Model(&models.Booking{})},
		{&report.CompletedBookings, s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingCompleted)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return PlatformReport{}, fmt.Errorf("platform report: %w", err)
		}
	}

	err := s.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingCompleted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&report.CompletedRevenue).Error
	if err != nil {
		return PlatformReport{}, fmt.Errorf("platform revenue: %w", err)
	}
	return report, nil
}
