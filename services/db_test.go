package services

import (
	"fmt"
	"testing"
	"time"

	"bikeandbed-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema so service
// queries run against real tables and real constraints (unique indexes
// included).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.Profile{},
		&models.Accommodation{},
		&models.AccommodationImage{},
		&models.Route{},
		&models.RouteImage{},
		&models.Booking{},
		&models.AccommodationReview{},
		&models.RouteReview{},
		&models.FavoriteAccommodation{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, role models.Role) models.Profile {
	t.Helper()
	profile := models.Profile{
		Email: fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()),
		Role:  role,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create %s profile: %v", role, err)
	}
	return profile
}

// createTestAccommodation inserts a listing owned by hostID. The is_active
// column carries a database default, so inactivity is applied with an
// explicit update after the insert.
func createTestAccommodation(t *testing.T, db *gorm.DB, hostID string, active bool) models.Accommodation {
	t.Helper()
	accommodation := models.Accommodation{
		HostID:        hostID,
		Name:          "Test Lodge",
		Location:      "Girona",
		PricePerNight: 95,
		Capacity:      2,
		IsActive:      true,
	}
	if err := db.Create(&accommodation).Error; err != nil {
		t.Fatalf("create accommodation: %v", err)
	}
	if !active {
		if err := db.Model(&accommodation).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate accommodation: %v", err)
		}
		accommodation.IsActive = false
	}
	return accommodation
}

func createTestRoute(t *testing.T, db *gorm.DB, creatorID string, difficulty models.Difficulty, active bool) models.Route {
	t.Helper()
	route := models.Route{
		CreatorID:  creatorID,
		Name:       "Test Loop",
		Location:   "Girona",
		DistanceKm: 42,
		Difficulty: difficulty,
		IsActive:   true,
	}
	if err := db.Create(&route).Error; err != nil {
		t.Fatalf("create route: %v", err)
	}
	if !active {
		if err := db.Model(&route).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate route: %v", err)
		}
		route.IsActive = false
	}
	return route
}

func createTestBooking(t *testing.T, db *gorm.DB, userID, accommodationID string, status models.BookingStatus) models.Booking {
	t.Helper()
	checkIn := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC)
	booking := models.Booking{
		UserID:          userID,
		AccommodationID: accommodationID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          2,
		TotalPrice:      models.TotalPrice(checkIn, checkOut, 95),
		Status:          status,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return booking
}
