package controllers

import (
	"testing"

	"bikeandbed-backend/models"
)

func TestToAccommodationView(t *testing.T) {
	a := models.Accommodation{
		ID:       "A1",
		IsActive: true,
		Images: []models.AccommodationImage{
			{ID: "img-1", AccommodationID: "A1", IsPrimary: true},
			{ID: "img-2", AccommodationID: "A1", IsPrimary: false},
		},
		Reviews: []models.AccommodationReview{
			{Rating: 5}, {Rating: 3},
		},
	}

	view := toAccommodationView(a)
	if len(view.Images) != 2 {
		t.Fatalf("images = %d, want 2", len(view.Images))
	}
	primaries := 0
	for _, img := range view.Images {
		if img.IsPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		t.Fatalf("primary images = %d, want 1", primaries)
	}
	if view.RatingSummary.Count != 2 {
		t.Fatalf("rating count = %d, want 2", view.RatingSummary.Count)
	}
	if view.RatingSummary.Average != 4 {
		t.Fatalf("rating average = %v, want 4", view.RatingSummary.Average)
	}
}

func TestToAccommodationViewNoReviews(t *testing.T) {
	view := toAccommodationView(models.Accommodation{ID: "A2"})
	if view.RatingSummary.Count != 0 || view.RatingSummary.Average != 0 {
		t.Fatalf("empty summary = %+v", view.RatingSummary)
	}
}

func TestToRouteView(t *testing.T) {
	r := models.Route{
		ID: "R1",
		Reviews: []models.RouteReview{
			{Rating: 4, DifficultyRating: 2},
			{Rating: 2, DifficultyRating: 4},
		},
	}

	view := toRouteView(r)
	if view.RatingSummary.Average != 3 {
		t.Fatalf("rating average = %v, want 3", view.RatingSummary.Average)
	}
	if view.AvgDifficultyVote != 3 {
		t.Fatalf("difficulty average = %v, want 3", view.AvgDifficultyVote)
	}
}
