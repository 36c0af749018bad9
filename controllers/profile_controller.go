package controllers

import (
	"errors"
	"log"
	"net/http"

	"bikeandbed-backend/middleware"
	"bikeandbed-backend/services"
	"bikeandbed-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileSvc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileSvc: svc}
}

// Update merges the editable profile fields for the authenticated caller.
func (ctrl *ProfileController) Update(c *gin.Context) {
	var fields services.ProfileUpdateFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "could not parse profile fields")
		return
	}

	profile, err := ctrl.ProfileSvc.Update(middleware.UserID(c), fields)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.profileNotFound", "no such profile")
			return
		}
		log.Printf("update profile: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not update profile")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}

type ProfileLanguagePayload struct {
	Language string `json:"language" binding:"required"`
}

// SetLanguage persists the preference on the profile row, the server-side
// counterpart of the device setting.
func (ctrl *ProfileController) SetLanguage(c *gin.Context) {
	var payload ProfileLanguagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "language is required")
		return
	}

	if err := ctrl.ProfileSvc.SetLanguage(middleware.UserID(c), payload.Language); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.profileNotFound", "no such profile")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "error.unsupportedLanguage", "language must be en or es")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"language": payload.Language})
}
