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

type FavoriteController struct {
	FavoriteSvc *services.FavoriteService
}

func NewFavoriteController(svc *services.FavoriteService) *FavoriteController {
	return &FavoriteController{FavoriteSvc: svc}
}

func (ctrl *FavoriteController) ListMine(c *gin.Context) {
	favorites, err := ctrl.FavoriteSvc.ListForUser(middleware.UserID(c))
	if err != nil {
		log.Printf("list favorites: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load favorites")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, favorites)
}

type TogglePayload struct {
	AccommodationID string `json:"accommodation_id" binding:"required"`
}

func (ctrl *FavoriteController) Toggle(c *gin.Context) {
	var payload TogglePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "accommodation_id is required")
		return
	}

	isFavorite, err := ctrl.FavoriteSvc.Toggle(middleware.UserID(c), payload.AccommodationID)
	if err != nil {
		if errors.Is(err, services.ErrAccommodationNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.accommodationNotFound", "no such accommodation")
			return
		}
		log.Printf("toggle favorite: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not update favorites")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"accommodation_id": payload.AccommodationID,
		"is_favorite":      isFavorite,
	})
}

// Status reports whether one accommodation is in the caller's favorites,
// so the detail screen can render its heart state without the full list.
func (ctrl *FavoriteController) Status(c *gin.Context) {
	accommodationID := c.Param("id")
	isFavorite, err := ctrl.FavoriteSvc.IsFavorite(middleware.UserID(c), accommodationID)
	if err != nil {
		log.Printf("favorite status: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load favorite status")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"accommodation_id": accommodationID,
		"is_favorite":      isFavorite,
	})
}
