package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"bikeandbed-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "bikeandbed_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.Profile{},
		&models.Accommodation{},
		&models.AccommodationImage{},
		&models.Route{},
		&models.RouteImage{},
		&models.Booking{},
		&models.FavoriteAccommodation{},
		&models.AccommodationReview{},
		&models.RouteReview{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

func seedProfile(email string, role models.Role, first, last string) models.Profile {
	hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("SEED_PASSWORD", "demo1234")), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash seed password: %v", err)
	}
	return models.Profile{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    &first,
		LastName:     &last,
		Role:         role,
		Language:     models.LanguageEN,
	}
}

// SeedDatabase installs one demo profile per role plus a starter listing
// and route so a fresh database has something to render. Idempotent.
func SeedDatabase() {
	var profileCount int64
	DB.Model(&models.Profile{}).Count(&profileCount)
	if profileCount > 0 {
		log.Println("Profiles already seeded")
		return
	}

	user := seedProfile("user@bikeandbed.local", models.RoleUser, "John", "Doe")
	host := seedProfile("host@bikeandbed.local", models.RoleHost, "Maria", "Alvarez")
	admin := seedProfile("admin@bikeandbed.local", models.RoleAdmin, "Sam", "Okafor")
	for _, p := range []*models.Profile{&user, &host, &admin} {
		if err := DB.Create(p).Error; err != nil {
			log.Printf("warning: failed to seed profile %s: %v", p.Email, err)
			return
		}
	}
	log.Println("Demo profiles seeded")

	lat, lon := 39.7392, -104.9903
	lodge := models.Accommodation{
		HostID:         host.ID,
		Name:           "Alpine Cyclist Lodge",
		Description:    "Trailside lodge with secure bike storage and a repair bench.",
		Location:       "Denver, Colorado",
		Address:        "120 Ridge Road",
		Latitude:       &lat,
		Longitude:      &lon,
		PricePerNight:  95,
		Capacity:       4,
		Bedrooms:       2,
		Bathrooms:      1,
		HasBikeStorage: true,
		HasBikeTools:   true,
		HasWifi:        true,
		HasKitchen:     true,
		IsActive:       true,
	}
	if err := DB.Create(&lodge).Error; err != nil {
		log.Printf("warning: failed to seed accommodation: %v", err)
		return
	}
	images := []models.AccommodationImage{
		{AccommodationID: lodge.ID, ImageURL: "https://images.bikeandbed.local/lodge-front.jpg", IsPrimary: true},
		{AccommodationID: lodge.ID, ImageURL: "https://images.bikeandbed.local/lodge-storage.jpg", IsPrimary: false},
	}
	if err := DB.Create(&images).Error; err != nil {
		log.Printf("warning: failed to seed accommodation images: %v", err)
	}

	route := models.Route{
		CreatorID:      host.ID,
		Name:           "Lookout Mountain Loop",
		Description:    "Classic climb with a long gentle descent back into town.",
		Location:       "Golden, Colorado",
		DistanceKm:     32.5,
		ElevationGainM: 640,
		Difficulty:     models.DifficultyModerate,
		IsActive:       true,
	}
	if err := DB.Create(&route).Error; err != nil {
		log.Printf("warning: failed to seed route: %v", err)
		return
	}
	routeImage := models.RouteImage{RouteID: route.ID, ImageURL: "https://images.bikeandbed.local/lookout-summit.jpg", IsPrimary: true}
	if err := DB.Create(&routeImage).Error; err != nil {
		log.Printf("warning: failed to seed route image: %v", err)
	}

	// One completed stay with a review, so rating summaries have data.
	checkIn := time.Now().AddDate(0, -1, 0)
	checkOut := checkIn.AddDate(0, 0, 3)
	stay := models.Booking{
		UserID:          user.ID,
		AccommodationID: lodge.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          2,
		TotalPrice:      models.TotalPrice(checkIn, checkOut, lodge.PricePerNight),
		Status:          models.BookingCompleted,
	}
	if err := DB.Create(&stay).Error; err != nil {
		log.Printf("warning: failed to seed booking: %v", err)
		return
	}
	comment := "Great storage, five minutes from the trailhead."
	review := models.AccommodationReview{
		BookingID:       stay.ID,
		UserID:          user.ID,
		AccommodationID: lodge.ID,
		Rating:          5,
		Comment:         &comment,
	}
	if err := DB.Create(&review).Error; err != nil {
		log.Printf("warning: failed to seed review: %v", err)
	}

	log.Println("Starter listing, route and review seeded")
}
