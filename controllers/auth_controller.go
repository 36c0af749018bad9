package controllers

import (
	"errors"
	"log"
	"net/http"

	"bikeandbed-backend/middleware"
	"bikeandbed-backend/models"
	"bikeandbed-backend/services"
	"bikeandbed-backend/session"
	"bikeandbed-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthSvc    *services.AuthService
	ProfileSvc *services.ProfileService
	Session    *session.Store
}

func NewAuthController(authSvc *services.AuthService, profileSvc *services.ProfileService, store *session.Store) *AuthController {
	return &AuthController{AuthSvc: authSvc, ProfileSvc: profileSvc, Session: store}
}

type LoginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "email and password are required")
		return
	}

	result, err := ctrl.AuthSvc.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "wrong email or password")
			return
		}
		log.Printf("login failed for %s: %v", payload.Email, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not sign in")
		return
	}

	// The device session mirrors the signed-in profile.
	if err := ctrl.Session.SetUser(c.Request.Context(), result.Profile); err != nil {
		log.Printf("persist session snapshot for %s: %v", result.Profile.ID, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not persist session")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, result)
}

type DevLoginPayload struct {
	Role models.Role `json:"role" binding:"required"`
}

// DevLogin signs in as the seeded demo profile for a role. Disabled unless
// AUTH_DEV_LOGIN=true.
func (ctrl *AuthController) DevLogin(c *gin.Context) {
	var payload DevLoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "role is required")
		return
	}

	result, err := ctrl.AuthSvc.DevLogin(payload.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDevLoginDisabled):
			utils.JSONError(c, http.StatusForbidden, "error.devLoginDisabled", "development login is disabled")
		case errors.Is(err, services.ErrProfileNotFound):
			utils.JSONError(c, http.StatusNotFound, "error.noDemoProfile", "no profile seeded for role "+string(payload.Role))
		default:
			log.Printf("dev login failed for role %s: %v", payload.Role, err)
			utils.JSONError(c, http.StatusBadRequest, "error.invalidRole", "role must be user, host or admin")
		}
		return
	}

	if err := ctrl.Session.SetUser(c.Request.Context(), result.Profile); err != nil {
		log.Printf("persist session snapshot for %s: %v", result.Profile.ID, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not persist session")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, result)
}

// Me returns the profile of the authenticated caller, or none when the
// token resolves to a deleted profile.
func (ctrl *AuthController) Me(c *gin.Context) {
	profile, err := ctrl.ProfileSvc.GetByID(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			utils.JSONSuccess(c, http.StatusOK, nil)
			return
		}
		log.Printf("load current profile: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load profile")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}
