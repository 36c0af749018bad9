package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"bikeandbed-backend/config"
	"bikeandbed-backend/controllers"
	"bikeandbed-backend/routes"
	"bikeandbed-backend/services"
	"bikeandbed-backend/session"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Required token secret (fatal if missing)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue session tokens.")
	}
	devLogin := strings.EqualFold(os.Getenv("AUTH_DEV_LOGIN"), "true")
	if devLogin {
		log.Println("⚠️  AUTH_DEV_LOGIN enabled: role-only sign-in is active")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Device session store, persisted under SESSION_DIR
	sessionDir := os.Getenv("SESSION_DIR")
	if sessionDir == "" {
		sessionDir = "./data"
	}
	storage, err := session.NewFileStorage(sessionDir)
	if err != nil {
		log.Fatalf("❌ Session storage init failed: %v", err)
	}
	store := session.NewStore(storage)
	if err := store.Load(context.Background()); err != nil {
		log.Printf("⚠️  Session snapshot load failed (starting signed out): %v", err)
	}

	// Initialize services
	authService := services.NewAuthService(db, jwtSecret, devLogin)
	profileService := services.NewProfileService(db)
	accommodationService := services.NewAccommodationService(db)
	routeService := services.NewRouteService(db)
	bookingService := services.NewBookingService(db)
	favoriteService := services.NewFavoriteService(db)
	reviewService := services.NewReviewService(db)
	adminService := services.NewAdminService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, profileService, store)
	sessionController := controllers.NewSessionController(store)
	profileController := controllers.NewProfileController(profileService)
	accommodationController := controllers.NewAccommodationController(accommodationService)
	routeController := controllers.NewRouteController(routeService)
	bookingController := controllers.NewBookingController(bookingService)
	favoriteController := controllers.NewFavoriteController(favoriteService)
	reviewController := controllers.NewReviewController(reviewService)
	adminController := controllers.NewAdminController(adminService)

	// Build router
	router := routes.SetupRouter(
		authService,
		authController,
		sessionController,
		profileController,
		accommodationController,
		routeController,
		bookingController,
		favoriteController,
		reviewController,
		adminController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
