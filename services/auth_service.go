package services

import (
	"errors"
	"fmt"
	"time"

	"bikeandbed-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrDevLoginDisabled   = errors.New("dev_login_disabled")
	ErrInvalidToken       = errors.New("invalid_token")
)

const tokenTTL = 7 * 24 * time.Hour

// AuthService verifies credentials against stored profiles and issues
// HMAC-signed session tokens. The role-only dev login reproduces the
// development sign-in flow of the mobile client and must be switched on
// explicitly.
type AuthService struct {
	DB            *gorm.DB
	jwtSecret     []byte
	devLoginAllow bool
}

func NewAuthService(db *gorm.DB, jwtSecret string, devLoginAllow bool) *AuthService {
	return &AuthService{
		DB:            db,
		jwtSecret:     []byte(jwtSecret),
		devLoginAllow: devLoginAllow,
	}
}

// LoginResult bundles the session token and the profile it belongs to.
type LoginResult struct {
	Token   string         `json:"token"`
	Profile models.Profile `json:"profile"`
}

// Login verifies an email/password pair and returns a session token.
func (s *AuthService) Login(email, password string) (LoginResult, error) {
	var profile models.Profile
	if err := s.DB.First(&profile, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("load profile: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(profile.ID, profile.Role)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate token: %w", err)
	}
	return LoginResult{Token: token, Profile: profile}, nil
}

// DevLogin resolves the seeded demo profile for a role and issues a token
// for it, without credential verification. Guarded by AUTH_DEV_LOGIN.
func (s *AuthService) DevLogin(role models.Role) (LoginResult, error) {
	if !s.devLoginAllow {
		return LoginResult{}, ErrDevLoginDisabled
	}
	if !models.ValidRole(role) {
		return LoginResult{}, fmt.Errorf("invalid role %q", role)
	}

	var profile models.Profile
	err := s.DB.
		Where("role = ?", role).
		Order("created_at ASC").
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResult{}, ErrProfileNotFound
		}
		return LoginResult{}, fmt.Errorf("load demo profile: %w", err)
	}

	token, err := s.GenerateToken(profile.ID, profile.Role)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate token: %w", err)
	}
	return LoginResult{Token: token, Profile: profile}, nil
}

// GenerateToken signs a token carrying the profile id and role.
func (s *AuthService) GenerateToken(userID string, role models.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken validates a session token and returns its user id and role.
func (s *AuthService) VerifyToken(tokenString string) (string, models.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok || !models.ValidRole(models.Role(roleStr)) {
		return "", "", ErrInvalidToken
	}
	return userID, models.Role(roleStr), nil
}
