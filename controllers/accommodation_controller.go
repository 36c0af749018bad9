package controllers

import (
	"errors"
	"log"
	"net/http"

	"bikeandbed-backend/middleware"
	"bikeandbed-backend/models"
	"bikeandbed-backend/services"
	"bikeandbed-backend/utils"

	"github.com/gin-gonic/gin"
)

type AccommodationController struct {
	AccommodationSvc *services.AccommodationService
}

func NewAccommodationController(svc *services.AccommodationService) *AccommodationController {
	return &AccommodationController{AccommodationSvc: svc}
}

// accommodationView decorates the raw record with the rating aggregate the
// cards render. The data layer hands back raw review rows; summarizing is
// a presentation concern.
type accommodationView struct {
	models.Accommodation
	RatingSummary models.RatingSummary `json:"rating_summary"`
}

func toAccommodationView(a models.Accommodation) accommodationView {
	ratings := make([]int, 0, len(a.Reviews))
	for _, r := range a.Reviews {
		ratings = append(ratings, r.Rating)
	}
	return accommodationView{Accommodation: a, RatingSummary: models.SummarizeRatings(ratings)}
}

func (ctrl *AccommodationController) List(c *gin.Context) {
	accommodations, err := ctrl.AccommodationSvc.ListActive()
	if err != nil {
		log.Printf("list accommodations: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load accommodations")
		return
	}

	views := make([]accommodationView, 0, len(accommodations))
	for _, a := range accommodations {
		views = append(views, toAccommodationView(a))
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

func (ctrl *AccommodationController) GetByID(c *gin.Context) {
	accommodation, err := ctrl.AccommodationSvc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAccommodationNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.accommodationNotFound", "no such accommodation")
			return
		}
		log.Printf("get accommodation %s: %v", c.Param("id"), err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load accommodation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toAccommodationView(accommodation))
}

// ListForHost returns the caller's own listings, active or not.
func (ctrl *AccommodationController) ListForHost(c *gin.Context) {
	accommodations, err := ctrl.AccommodationSvc.ListByHost(middleware.UserID(c))
	if err != nil {
		log.Printf("list host accommodations: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load listings")
		return
	}

	views := make([]accommodationView, 0, len(accommodations))
	for _, a := range accommodations {
		views = append(views, toAccommodationView(a))
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

func (ctrl *AccommodationController) Create(c *gin.Context) {
	var input services.CreateAccommodationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	accommodation, err := ctrl.AccommodationSvc.Create(middleware.UserID(c), input)
	if err != nil {
		log.Printf("create accommodation: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not create listing")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, accommodation)
}

type SetActivePayload struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetActive toggles a listing. Hosts are scoped to their own listings;
// admins may touch any.
func (ctrl *AccommodationController) SetActive(c *gin.Context) {
	var payload SetActivePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "is_active is required")
		return
	}

	hostID := middleware.UserID(c)
	if models.Role(c.GetString(middleware.ContextRole)) == models.RoleAdmin {
		hostID = ""
	}

	if err := ctrl.AccommodationSvc.SetActive(c.Param("id"), hostID, *payload.IsActive); err != nil {
		if errors.Is(err, services.ErrAccommodationNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.accommodationNotFound", "no such accommodation for this account")
			return
		}
		log.Printf("set accommodation active: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not update listing")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": c.Param("id"), "is_active": *payload.IsActive})
}
