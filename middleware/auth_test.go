package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bikeandbed-backend/models"
	"bikeandbed-backend/services"

	"github.com/gin-gonic/gin"
)

func authedRequest(t *testing.T, handler gin.HandlerFunc, authorization string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}
	handler(c)
	return w, c
}

func TestAuthRequiredMissingToken(t *testing.T) {
	auth := services.NewAuthService(nil, "test-secret", false)

	w, c := authedRequest(t, AuthRequired(auth), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !c.IsAborted() {
		t.Fatal("request should be aborted")
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	auth := services.NewAuthService(nil, "test-secret", false)

	w, _ := authedRequest(t, AuthRequired(auth), "Bearer garbage")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthRequiredSetsIdentity(t *testing.T) {
	auth := services.NewAuthService(nil, "test-secret", false)
	token, err := auth.GenerateToken("profile-9", models.RoleHost)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w, c := authedRequest(t, AuthRequired(auth), "Bearer "+token)
	if c.IsAborted() {
		t.Fatalf("valid token aborted with status %d", w.Code)
	}
	if UserID(c) != "profile-9" {
		t.Fatalf("user id = %q, want profile-9", UserID(c))
	}
	if c.GetString(ContextRole) != string(models.RoleHost) {
		t.Fatalf("role = %q, want host", c.GetString(ContextRole))
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		have     models.Role
		required models.Role
		allowed  bool
	}{
		{"host in host area", models.RoleHost, models.RoleHost, true},
		{"user in host area", models.RoleUser, models.RoleHost, false},
		{"host in admin area", models.RoleHost, models.RoleAdmin, false},
		{"admin in admin area", models.RoleAdmin, models.RoleAdmin, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/host/bookings", nil)
			c.Set(ContextRole, string(tc.have))

			RequireRole(tc.required)(c)

			if tc.allowed && c.IsAborted() {
				t.Fatalf("expected pass, got status %d", w.Code)
			}
			if !tc.allowed {
				if !c.IsAborted() || w.Code != http.StatusForbidden {
					t.Fatalf("expected 403, got status %d aborted=%v", w.Code, c.IsAborted())
				}
			}
		})
	}
}

func TestRequireRoleUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)

	RequireRole(models.RoleAdmin)(c)
	if !c.IsAborted() || w.Code != http.StatusForbidden {
		t.Fatalf("missing role should 403, got %d", w.Code)
	}
}
