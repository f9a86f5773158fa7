// Package session holds the bearer token for API calls. The token is
// injected explicitly into every network-calling collaborator instead of
// being read from ambient storage; an absent token is tolerated and read
// paths degrade to mock data.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/atomic"
)

// ErrMissingCredentials is returned by the login stub when either field is
// empty.
var ErrMissingCredentials = errors.New("missing credentials")

// Session is safe for concurrent use; the token may be swapped while
// requests are in flight.
type Session struct {
	token atomic.String
	email atomic.String
}

// New returns a session primed with a token, possibly empty.
func New(token string) *Session {
	s := &Session{}
	s.token.Store(token)
	return s
}

// Login is the client-side authentication stub: any non-empty credential
// pair is accepted. No server round-trip happens here.
func (s *Session) Login(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	s.email.Store(email)
	if s.token.Load() == "" {
		s.token.Store("stub")
	}
	return nil
}

// Logout clears the session.
func (s *Session) Logout() {
	s.token.Store("")
	s.email.Store("")
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	return s.token.Load()
}

// Email returns the identity entered at login.
func (s *Session) Email() string {
	return s.email.Load()
}

// LoggedIn reports whether a token is present.
func (s *Session) LoggedIn() bool {
	return s.token.Load() != ""
}

// Claims is the displayable subset of a JWT's payload.
type Claims struct {
	Subject   string
	Roles     string
	ExpiresAt time.Time
}

// Claims decodes the token's claims WITHOUT verifying the signature. This
// is display-only information; the backend is the authority on validity.
func (s *Session) Claims() (Claims, bool) {
	raw := s.token.Load()
	if raw == "" || raw == "stub" {
		return Claims{}, false
	}

	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, false
	}

	var c Claims
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if roles, ok := mc["roles"].(string); ok {
		c.Roles = roles
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, true
}
