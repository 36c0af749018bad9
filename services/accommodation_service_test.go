package services

import (
	"errors"
	"testing"

	"bikeandbed-backend/models"
)

func TestListActiveFiltersInactiveListings(t *testing.T) {
	db := newTestDB(t)
	host := createTestProfile(t, db, models.RoleHost)
	active := createTestAccommodation(t, db, host.ID, true)
	createTestAccommodation(t, db, host.ID, false)

	for _, image := range []models.AccommodationImage{
		{AccommodationID: active.ID, ImageURL: "https://img/side.jpg"},
		{AccommodationID: active.ID, ImageURL: "https://img/front.jpg", IsPrimary: true},
	} {
		if err := db.Create(&image).Error; err != nil {
			t.Fatalf("create image: %v", err)
		}
	}

	svc := NewAccommodationService(db)
	listings, err := svc.ListActive()
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("listings = %d, want 1", len(listings))
	}
	if listings[0].ID != active.ID {
		t.Fatalf("listing id = %s, want %s", listings[0].ID, active.ID)
	}
	if len(listings[0].Images) != 2 {
		t.Fatalf("images = %d, want 2", len(listings[0].Images))
	}
	if !listings[0].Images[0].IsPrimary {
		t.Fatal("primary image should sort first")
	}
}

func TestListActiveEmptyCatalog(t *testing.T) {
	db := newTestDB(t)

	svc := NewAccommodationService(db)
	listings, err := svc.ListActive()
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if listings == nil || len(listings) != 0 {
		t.Fatalf("listings = %#v, want empty slice", listings)
	}
}

func TestSetActiveChecksOwnership(t *testing.T) {
	db := newTestDB(t)
	host := createTestProfile(t, db, models.RoleHost)
	other := createTestProfile(t, db, models.RoleHost)
	accommodation := createTestAccommodation(t, db, host.ID, true)

	svc := NewAccommodationService(db)

	err := svc.SetActive(accommodation.ID, other.ID, false)
	if !errors.Is(err, ErrAccommodationNotFound) {
		t.Fatalf("foreign host err = %v, want ErrAccommodationNotFound", err)
	}

	if err := svc.SetActive(accommodation.ID, host.ID, false); err != nil {
		t.Fatalf("owner deactivate: %v", err)
	}
	// Admins pass an empty hostID and may touch any listing.
	if err := svc.SetActive(accommodation.ID, "", true); err != nil {
		t.Fatalf("admin reactivate: %v", err)
	}

	reloaded, err := svc.GetByID(accommodation.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.IsActive {
		t.Fatal("listing should be active again")
	}
}
