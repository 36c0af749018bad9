package session

import "bikeandbed-backend/models"

// EntryPoint is where mismatched or signed-out users are sent.
const EntryPoint = "/splash"

// Verdict tells a role-scoped screen area what to do with the current
// session.
type Verdict string

const (
	// VerdictWait means the store is still loading; render nothing yet.
	VerdictWait Verdict = "wait"
	// VerdictAllow means the current user matches the required role.
	VerdictAllow Verdict = "allow"
	// VerdictRedirect means the caller must replace the screen stack with
	// Decision.Redirect.
	VerdictRedirect Verdict = "redirect"
)

type Decision struct {
	Verdict  Verdict `json:"verdict"`
	Redirect string  `json:"redirect,omitempty"`
}

// Gate evaluates the role policy for a screen area. Re-evaluate whenever
// the session state changes.
func (s *Store) Gate(required models.Role) Decision {
	state := s.State()
	if state.IsLoading {
		return Decision{Verdict: VerdictWait}
	}
	if state.User == nil || state.User.Role != required {
		return Decision{Verdict: VerdictRedirect, Redirect: EntryPoint}
	}
	return Decision{Verdict: VerdictAllow}
}
