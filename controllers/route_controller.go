package controllers

import (
	"errors"
	"log"
	"net/http"

	"bikeandbed-backend/models"
	"bikeandbed-backend/services"
	"bikeandbed-backend/utils"

	"github.com/gin-gonic/gin"
)

type RouteController struct {
	RouteSvc *services.RouteService
}

func NewRouteController(svc *services.RouteService) *RouteController {
	return &RouteController{RouteSvc: svc}
}

type routeView struct {
	models.Route
	RatingSummary     models.RatingSummary `json:"rating_summary"`
	AvgDifficultyVote float64              `json:"avg_difficulty_vote"`
}

func toRouteView(r models.Route) routeView {
	ratings := make([]int, 0, len(r.Reviews))
	difficulty := make([]int, 0, len(r.Reviews))
	for _, rev := range r.Reviews {
		ratings = append(ratings, rev.Rating)
		difficulty = append(difficulty, rev.DifficultyRating)
	}
	return routeView{
		Route:             r,
		RatingSummary:     models.SummarizeRatings(ratings),
		AvgDifficultyVote: models.SummarizeRatings(difficulty).Average,
	}
}

// List returns active routes. The explore screen's filter buttons map to
// the optional ?difficulty=easy|moderate|hard query parameter.
func (ctrl *RouteController) List(c *gin.Context) {
	difficulty := models.Difficulty(c.Query("difficulty"))
	if difficulty != "" && !models.ValidDifficulty(difficulty) {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDifficulty", "difficulty must be easy, moderate or hard")
		return
	}

	routes, err := ctrl.RouteSvc.ListActive(difficulty)
	if err != nil {
		log.Printf("list routes: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load routes")
		return
	}

	views := make([]routeView, 0, len(routes))
	for _, r := range routes {
		views = append(views, toRouteView(r))
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

func (ctrl *RouteController) GetByID(c *gin.Context) {
	route, err := ctrl.RouteSvc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRouteNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.routeNotFound", "no such route")
			return
		}
		log.Printf("get route %s: %v", c.Param("id"), err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not load route")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toRouteView(route))
}
