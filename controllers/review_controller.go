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

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

func respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "no such booking")
	case errors.Is(err, services.ErrRouteNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.routeNotFound", "no such route")
	case errors.Is(err, services.ErrNotBookingOwner):
		utils.JSONError(c, http.StatusForbidden, "error.notYourBooking", "reviews must reference your own booking")
	case errors.Is(err, services.ErrBookingNotCompleted):
		utils.JSONError(c, http.StatusConflict, "error.bookingNotCompleted", "only completed stays can be reviewed")
	case errors.Is(err, services.ErrAlreadyReviewed):
		utils.JSONError(c, http.StatusConflict, "error.alreadyReviewed", "this booking was already reviewed")
	case errors.Is(err, services.ErrInvalidRating):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRating", "ratings run from 1 to 5")
	default:
		log.Printf("create review: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not save review")
	}
}

func (ctrl *ReviewController) CreateForAccommodation(c *gin.Context) {
	var input services.CreateAccommodationReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	review, err := ctrl.ReviewSvc.CreateForAccommodation(middleware.UserID(c), input)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}

func (ctrl *ReviewController) CreateForRoute(c *gin.Context) {
	var input services.CreateRouteReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	review, err := ctrl.ReviewSvc.CreateForRoute(middleware.UserID(c), input)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}
