package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bikeandbed-backend/models"
	"bikeandbed-backend/services"
	"bikeandbed-backend/session"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthTestController(t *testing.T) (*AuthController, *session.Store, models.Profile) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Profile{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("pedal-power"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	profile := models.Profile{
		Email:        "rider@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	storage, err := session.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("session storage: %v", err)
	}
	store := session.NewStore(storage)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("session load: %v", err)
	}

	authSvc := services.NewAuthService(db, "test-secret", false)
	profileSvc := services.NewProfileService(db)
	return NewAuthController(authSvc, profileSvc, store), store, profile
}

func postJSON(t *testing.T, handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestLoginInstallsSessionSnapshot(t *testing.T) {
	ctrl, store, profile := newAuthTestController(t)

	w := postJSON(t, ctrl.Login, LoginPayload{
		Email:    "rider@example.com",
		Password: "pedal-power",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	state := store.State()
	if state.User == nil {
		t.Fatal("session should hold the signed-in user after login")
	}
	if state.User.ID != profile.ID {
		t.Fatalf("session user = %s, want %s", state.User.ID, profile.ID)
	}
}

func TestLoginWrongPasswordLeavesSessionSignedOut(t *testing.T) {
	ctrl, store, _ := newAuthTestController(t)

	w := postJSON(t, ctrl.Login, LoginPayload{
		Email:    "rider@example.com",
		Password: "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if store.State().User != nil {
		t.Fatal("failed login must not touch the session")
	}
}
