package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bikeandbed-backend/controllers"
	"bikeandbed-backend/middleware"
	"bikeandbed-backend/models"
	"bikeandbed-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller into the gin engine.
func SetupRouter(
	authSvc *services.AuthService,
	ac *controllers.AuthController,
	sc *controllers.SessionController,
	pc *controllers.ProfileController,
	acc *controllers.AccommodationController,
	rc *controllers.RouteController,
	bc *controllers.BookingController,
	fc *controllers.FavoriteController,
	rvc *controllers.ReviewController,
	adc *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/dev-login", ac.DevLogin)
			auth.GET("/me", middleware.AuthRequired(authSvc), ac.Me)
		}

		// Device session: current user snapshot, language, navigation gate.
		sess := api.Group("/session")
		{
			sess.GET("", sc.GetState)
			sess.POST("/login", sc.Login)
			sess.POST("/logout", sc.Logout)
			sess.PUT("/language", sc.SetLanguage)
			sess.PATCH("/user", sc.UpdateUser)
			sess.GET("/gate", sc.Gate)
		}

		accommodations := api.Group("/accommodations")
		{
			accommodations.GET("", acc.List)
			accommodations.GET("/:id", acc.GetByID)
		}

		cycling := api.Group("/routes")
		{
			cycling.GET("", rc.List)
			cycling.GET("/:id", rc.GetByID)
		}

		authed := api.Group("")
		authed.Use(middleware.AuthRequired(authSvc))
		{
			authed.PATCH("/profile", pc.Update)
			authed.PUT("/profile/language", pc.SetLanguage)

			bookings := authed.Group("/bookings")
			{
				bookings.GET("", bc.ListMine)
				bookings.POST("", bc.Create)
				bookings.GET("/:id", bc.GetByID)
			}

			favorites := authed.Group("/favorites")
			{
				favorites.GET("", fc.ListMine)
				favorites.GET("/:id/status", fc.Status)
				favorites.POST("/toggle", fc.Toggle)
			}

			reviews := authed.Group("/reviews")
			{
				reviews.POST("/accommodation", rvc.CreateForAccommodation)
				reviews.POST("/route", rvc.CreateForRoute)
			}

			host := authed.Group("/host")
			host.Use(middleware.RequireRole(models.RoleHost))
			{
				host.GET("/accommodations", acc.ListForHost)
				host.POST("/accommodations", acc.Create)
				host.PATCH("/accommodations/:id/active", acc.SetActive)
				host.GET("/bookings", bc.ListForHost)
				host.PATCH("/bookings/:id/status", bc.UpdateStatus)
				host.GET("/earnings", bc.Earnings)
			}

			admin := authed.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", adc.ListUsers)
				admin.GET("/report", adc.Report)
				admin.PATCH("/accommodations/:id/active", acc.SetActive)
				admin.PATCH("/bookings/:id/status", bc.UpdateStatus)
			}
		}
	}

	return r
}
