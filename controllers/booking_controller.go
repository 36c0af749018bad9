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

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// ListMine returns the caller's bookings, newest first. Zero bookings is a
// plain empty list.
func (ctrl *BookingController) ListMine(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListForUser(middleware.UserID(c))
	if err != nil {
		log.Printf("list bookings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) Create(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.Create(middleware.UserID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDates):
			utils.JSONError(c, http.StatusBadRequest, "error.invalidDates", "check-out must be after check-in")
		case errors.Is(err, services.ErrAccommodationNotFound):
			utils.JSONError(c, http.StatusNotFound, "error.accommodationNotFound", "no such accommodation")
		case errors.Is(err, services.ErrListingInactive):
			utils.JSONError(c, http.StatusConflict, "error.listingInactive", "this listing is not accepting bookings")
		case errors.Is(err, services.ErrCapacityExceeded):
			utils.JSONError(c, http.StatusBadRequest, "error.capacityExceeded", "guest count exceeds listing capacity")
		default:
			log.Printf("create booking: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not create booking")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetByID returns one booking, restricted to its owner (or the listing's
// host / an admin).
func (ctrl *BookingController) GetByID(c *gin.Context) {
	booking, err := ctrl.BookingSvc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "no such booking")
			return
		}
		log.Printf("get booking %s: %v", c.Param("id"), err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load booking")
		return
	}

	callerID := middleware.UserID(c)
	callerRole := models.Role(c.GetString(middleware.ContextRole))
	if booking.UserID != callerID &&
		booking.Accommodation.HostID != callerID &&
		callerRole != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "error.notYourBooking", "this booking belongs to another account")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// ListForHost returns bookings placed against the caller's listings.
func (ctrl *BookingController) ListForHost(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListForHost(middleware.UserID(c))
	if err != nil {
		log.Printf("list host bookings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// Earnings serves the host earnings screen: completed revenue per listing.
func (ctrl *BookingController) Earnings(c *gin.Context) {
	earnings, err := ctrl.BookingSvc.EarningsForHost(middleware.UserID(c))
	if err != nil {
		log.Printf("host earnings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load earnings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, earnings)
}

type UpdateStatusPayload struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// UpdateStatus drives the booking lifecycle: pending→confirmed|cancelled,
// confirmed→completed|cancelled. Hosts act on their own listings, admins
// on any.
func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	var payload UpdateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "status is required")
		return
	}

	hostID := middleware.UserID(c)
	if models.Role(c.GetString(middleware.ContextRole)) == models.RoleAdmin {
		hostID = ""
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(c.Param("id"), hostID, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "no such booking")
		case errors.Is(err, services.ErrNotListingOwner):
			utils.JSONError(c, http.StatusForbidden, "error.notYourListing", "this booking targets another host's listing")
		case errors.Is(err, services.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "error.invalidTransition", "booking cannot move to "+string(payload.Status))
		default:
			log.Printf("update booking status: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not update booking")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
