package services

import (
	"errors"
	"testing"

	"bikeandbed-backend/models"
)

func TestToggleFavoriteRoundTrip(t *testing.T) {
	db := newTestDB(t)
	host := createTestProfile(t, db, models.RoleHost)
	guest := createTestProfile(t, db, models.RoleUser)
	accommodation := createTestAccommodation(t, db, host.ID, true)

	svc := NewFavoriteService(db)

	saved, err := svc.Toggle(guest.ID, accommodation.ID)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !saved {
		t.Fatal("first toggle should save the listing")
	}

	isFavorite, err := svc.IsFavorite(guest.ID, accommodation.ID)
	if err != nil {
		t.Fatalf("is favorite: %v", err)
	}
	if !isFavorite {
		t.Fatal("listing should be a favorite after toggle on")
	}

	favorites, err := svc.ListForUser(guest.ID)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0].Accommodation.ID != accommodation.ID {
		t.Fatalf("favorites = %+v, want the saved listing joined", favorites)
	}

	saved, err = svc.Toggle(guest.ID, accommodation.ID)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if saved {
		t.Fatal("second toggle should remove the listing")
	}

	isFavorite, err = svc.IsFavorite(guest.ID, accommodation.ID)
	if err != nil {
		t.Fatalf("is favorite: %v", err)
	}
	if isFavorite {
		t.Fatal("listing should not be a favorite after toggle off")
	}
}

func TestToggleFavoriteUnknownAccommodation(t *testing.T) {
	db := newTestDB(t)
	guest := createTestProfile(t, db, models.RoleUser)

	svc := NewFavoriteService(db)
	_, err := svc.Toggle(guest.ID, "missing")
	if !errors.Is(err, ErrAccommodationNotFound) {
		t.Fatalf("err = %v, want ErrAccommodationNotFound", err)
	}
}
