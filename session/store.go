package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"bikeandbed-backend/models"
)

const (
	keyUser     = "user"
	keyLanguage = "language"
)

// Store holds the device session: the signed-in user snapshot and the
// language preference. It is the single source of truth the navigation
// gate reads. Construct one and pass it where it is needed; there is no
// package-level instance.
//
// Every mutation persists through Storage before returning, so callers
// always observe state and disk in agreement.
type Store struct {
	mu      sync.RWMutex
	storage Storage

	user     *models.Profile
	language string
	loading  bool
}

// State is an immutable snapshot handed to consumers.
type State struct {
	User      *models.Profile `json:"user"`
	Language  string          `json:"language"`
	IsLoading bool            `json:"is_loading"`
}

func NewStore(storage Storage) *Store {
	return &Store{
		storage:  storage,
		language: models.LanguageEN,
		loading:  true,
	}
}

// Load reads the persisted language and user snapshot. The store reports
// IsLoading until Load has run once; gates render nothing in the meantime.
// Unknown language codes and undecodable user snapshots are dropped rather
// than surfaced, matching a fresh install.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	lang, ok, err := s.storage.Get(ctx, keyLanguage)
	if err != nil {
		return fmt.Errorf("load language: %w", err)
	}
	if ok && models.ValidLanguage(lang) {
		s.language = lang
	}

	raw, ok, err := s.storage.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if ok {
		var user models.Profile
		if err := json.Unmarshal([]byte(raw), &user); err == nil && user.ID != "" {
			s.user = &user
		}
	}
	return nil
}

// State returns a copy of the current session state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{User: s.copyUser(), Language: s.language, IsLoading: s.loading}
}

// SetUser installs an authenticated profile as the current user and
// persists the snapshot.
func (s *Store) SetUser(ctx context.Context, user models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setUserLocked(ctx, user)
}

// Login establishes a session for the given role without credential
// verification. It exists for the development flow only; real sign-in goes
// through the auth service and SetUser.
func (s *Store) Login(ctx context.Context, role models.Role) (models.Profile, error) {
	if !models.ValidRole(role) {
		return models.Profile{}, fmt.Errorf("invalid role %q", role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := demoProfile(role)
	if err := s.setUserLocked(ctx, user); err != nil {
		return models.Profile{}, err
	}
	return user, nil
}

// Logout clears the current user from state and storage. The language
// preference is deliberately retained.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Remove(ctx, keyUser); err != nil {
		return fmt.Errorf("remove user snapshot: %w", err)
	}
	s.user = nil
	return nil
}

// SetLanguage updates and persists the language preference. It takes
// effect immediately for all consumers of State.
func (s *Store) SetLanguage(ctx context.Context, lang string) error {
	if !models.ValidLanguage(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, keyLanguage, lang); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}
	s.language = lang
	return nil
}

// ProfileUpdate carries the fields UpdateUser may merge. Nil fields are
// left untouched.
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Location  *string `json:"location,omitempty"`
}

// UpdateUser merges the given fields into the current user and persists
// the merged snapshot. A no-op when nobody is signed in.
func (s *Store) UpdateUser(ctx context.Context, update ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	merged := *s.user
	if update.FirstName != nil {
		merged.FirstName = update.FirstName
	}
	if update.LastName != nil {
		merged.LastName = update.LastName
	}
	if update.AvatarURL != nil {
		merged.AvatarURL = update.AvatarURL
	}
	if update.Phone != nil {
		merged.Phone = update.Phone
	}
	if update.Bio != nil {
		merged.Bio = update.Bio
	}
	if update.Location != nil {
		merged.Location = update.Location
	}
	return s.setUserLocked(ctx, merged)
}

func (s *Store) setUserLocked(ctx context.Context, user models.Profile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user snapshot: %w", err)
	}
	if err := s.storage.Set(ctx, keyUser, string(raw)); err != nil {
		return fmt.Errorf("persist user snapshot: %w", err)
	}
	s.user = &user
	return nil
}

func (s *Store) copyUser() *models.Profile {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func demoProfile(role models.Role) models.Profile {
	first, last := "John", "Doe"
	bio := "Cycling enthusiast exploring the world"
	if role == models.RoleHost {
		bio = "Passionate host welcoming cyclists"
	}
	location := "San Francisco, CA"
	return models.Profile{
		ID:        "demo-" + string(role),
		Email:     string(role) + "@bikeandbed.local",
		FirstName: &first,
		LastName:  &last,
		Bio:       &bio,
		Location:  &location,
		Role:      role,
		Language:  models.LanguageEN,
	}
}
