package controllers

import (
	"log"
	"net/http"

	"bikeandbed-backend/services"
	"bikeandbed-backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminSvc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{AdminSvc: svc}
}

func (ctrl *AdminController) ListUsers(c *gin.Context) {
	profiles, err := ctrl.AdminSvc.ListProfiles()
	if err != nil {
		log.Printf("list profiles: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load users")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profiles)
}

func (ctrl *AdminController) Report(c *gin.Context) {
	report, err := ctrl.AdminSvc.Report()
	if err != nil {
		log.Printf("platform report: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not build report")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}
