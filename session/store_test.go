package session

import (
	"context"
	"testing"

	"bikeandbed-backend/models"
)

func newTestStore(t *testing.T) (*Store, *FileStorage) {
	t.Helper()
	storage, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new file storage: %v", err)
	}
	store := NewStore(storage)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return store, storage
}

func TestStoreLoginRoleFidelity(t *testing.T) {
	ctx := context.Background()
	for _, role := range []models.Role{models.RoleUser, models.RoleHost, models.RoleAdmin} {
		store, _ := newTestStore(t)
		if _, err := store.Login(ctx, role); err != nil {
			t.Fatalf("login(%s): %v", role, err)
		}
		state := store.State()
		if state.User == nil {
			t.Fatalf("login(%s): expected a user in state", role)
		}
		if state.User.Role != role {
			t.Fatalf("login(%s): state role = %s", role, state.User.Role)
		}
	}
}

func TestStoreLoginRejectsUnknownRole(t *testing.T) {
	store, _ := newTestStore(t)
	if _, err := store.Login(context.Background(), models.Role("superuser")); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if store.State().User != nil {
		t.Fatal("failed login must not install a user")
	}
}

func TestStoreLogoutRetainsLanguage(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	if err := store.SetLanguage(ctx, models.LanguageES); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if _, err := store.Login(ctx, models.RoleUser); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := store.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	state := store.State()
	if state.User != nil {
		t.Fatal("logout must clear the current user")
	}
	if state.Language != models.LanguageES {
		t.Fatalf("logout must retain language, got %q", state.Language)
	}
}

func TestStoreLanguageSurvivesReload(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new file storage: %v", err)
	}

	store := NewStore(storage)
	if err := store.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := store.SetLanguage(ctx, models.LanguageES); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if _, err := store.Login(ctx, models.RoleHost); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Simulated process restart: fresh store over the same storage.
	reloaded := NewStore(storage)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	state := reloaded.State()
	if state.Language != models.LanguageES {
		t.Fatalf("expected persisted language es, got %q", state.Language)
	}
	if state.User == nil || state.User.Role != models.RoleHost {
		t.Fatalf("expected persisted host user, got %+v", state.User)
	}
}

func TestStoreSetLanguageRejectsUnknown(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.SetLanguage(context.Background(), "fr"); err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if got := store.State().Language; got != models.LanguageEN {
		t.Fatalf("failed set must not change language, got %q", got)
	}
}

func TestStoreUpdateUserNoOpWhenSignedOut(t *testing.T) {
	store, _ := newTestStore(t)

	bio := "X"
	if err := store.UpdateUser(context.Background(), ProfileUpdate{Bio: &bio}); err != nil {
		t.Fatalf("update user: %v", err)
	}
	if store.State().User != nil {
		t.Fatal("updateUser while signed out must remain a no-op")
	}
}

func TestStoreUpdateUserMergesFields(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	user, err := store.Login(ctx, models.RoleUser)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	bio := "Rides gravel on weekends"
	location := "Boulder, CO"
	if err := store.UpdateUser(ctx, ProfileUpdate{Bio: &bio, Location: &location}); err != nil {
		t.Fatalf("update user: %v", err)
	}

	state := store.State()
	if state.User.Bio == nil || *state.User.Bio != bio {
		t.Fatalf("bio not merged: %+v", state.User.Bio)
	}
	if state.User.Location == nil || *state.User.Location != location {
		t.Fatalf("location not merged: %+v", state.User.Location)
	}
	// Untouched fields survive the merge.
	if state.User.Email != user.Email {
		t.Fatalf("email changed by merge: %q", state.User.Email)
	}
}

func TestStoreIsLoadingUntilLoad(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new file storage: %v", err)
	}
	store := NewStore(storage)
	if !store.State().IsLoading {
		t.Fatal("store must report loading before Load")
	}
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.State().IsLoading {
		t.Fatal("store must stop loading after Load")
	}
}
