package services

import (
	"errors"
	"testing"

	"bikeandbed-backend/models"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", false)

	token, err := svc.GenerateToken("profile-1", models.RoleHost)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	userID, role, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if userID != "profile-1" {
		t.Fatalf("user id = %q, want profile-1", userID)
	}
	if role != models.RoleHost {
		t.Fatalf("role = %s, want host", role)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, "secret-a", false)
	verifier := NewAuthService(nil, "secret-b", false)

	token, err := issuer.GenerateToken("profile-1", models.RoleUser)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, _, err := verifier.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", false)
	for _, token := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestDevLoginDisabled(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", false)
	if _, err := svc.DevLogin(models.RoleUser); !errors.Is(err, ErrDevLoginDisabled) {
		t.Fatalf("expected ErrDevLoginDisabled, got %v", err)
	}
}
