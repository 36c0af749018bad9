package controllers

import (
	"log"
	"net/http"

	"bikeandbed-backend/models"
	"bikeandbed-backend/session"
	"bikeandbed-backend/utils"

	"github.com/gin-gonic/gin"
)

// SessionController exposes the device session store: current user
// snapshot, language preference and the navigation gate.
type SessionController struct {
	Store *session.Store
}

func NewSessionController(store *session.Store) *SessionController {
	return &SessionController{Store: store}
}

func (ctrl *SessionController) GetState(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Store.State())
}

type RoleLoginPayload struct {
	Role models.Role `json:"role" binding:"required"`
}

// Login establishes a demo session for a role, mirroring the client's
// development sign-in.
func (ctrl *SessionController) Login(c *gin.Context) {
	var payload RoleLoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "role is required")
		return
	}

	user, err := ctrl.Store.Login(c.Request.Context(), payload.Role)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRole", err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *SessionController) Logout(c *gin.Context) {
	if err := ctrl.Store.Logout(c.Request.Context()); err != nil {
		log.Printf("logout: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not clear session")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Store.State())
}

type SetLanguagePayload struct {
	Language string `json:"language" binding:"required"`
}

func (ctrl *SessionController) SetLanguage(c *gin.Context) {
	var payload SetLanguagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "language is required")
		return
	}

	if err := ctrl.Store.SetLanguage(c.Request.Context(), payload.Language); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.unsupportedLanguage", "language must be en or es")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Store.State())
}

// UpdateUser merges partial profile fields into the session snapshot. A
// no-op without a signed-in user, by contract.
func (ctrl *SessionController) UpdateUser(c *gin.Context) {
	var update session.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "could not parse profile fields")
		return
	}

	if err := ctrl.Store.UpdateUser(c.Request.Context(), update); err != nil {
		log.Printf("update session user: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not persist profile fields")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Store.State())
}

// Gate answers whether a role-scoped screen area may render for the
// current session.
func (ctrl *SessionController) Gate(c *gin.Context) {
	area := models.Role(c.Query("area"))
	if !models.ValidRole(area) {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidArea", "area must be user, host or admin")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Store.Gate(area))
}
