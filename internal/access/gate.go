// Package access guards the staff views behind a hashed access code.
package access

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL bounds how long a staff session stays unlocked.
const DefaultSessionTTL = 8 * time.Hour

var (
	// ErrDenied is returned for a wrong access code.
	ErrDenied = errors.New("access: denied")
	// ErrNotConfigured is returned when no access hash was provided.
	ErrNotConfigured = errors.New("access: staff access code is not configured")
)

// Session is an unlocked staff session.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// HashCode produces the bcrypt hash stored in configuration.
func HashCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("access: code is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("access: hash code: %w", err)
	}
	return string(hash), nil
}

// Gate verifies access codes and tracks issued sessions.
type Gate struct {
	mu       sync.Mutex
	hash     []byte
	ttl      time.Duration
	clock    func() time.Time
	sessions map[string]time.Time
}

// Option customizes the gate instance.
type Option func(*Gate)

// WithClock injects a deterministic clock (primarily for tests).
func WithClock(clock func() time.Time) Option {
	return func(g *Gate) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// WithSessionTTL overrides the session lifetime.
func WithSessionTTL(ttl time.Duration) Option {
	return func(g *Gate) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// NewGate builds a gate for the given bcrypt hash. An empty hash yields a
// gate that refuses every code.
func NewGate(hash string, opts ...Option) *Gate {
	g := &Gate{
		hash:     []byte(strings.TrimSpace(hash)),
		ttl:      DefaultSessionTTL,
		clock:    time.Now,
		sessions: map[string]time.Time{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Configured reports whether an access hash is set.
func (g *Gate) Configured() bool {
	return len(g.hash) > 0
}

// Authenticate checks code and opens a session.
func (g *Gate) Authenticate(code string) (Session, error) {
	if !g.Configured() {
		return Session{}, ErrNotConfigured
	}
	err := bcrypt.CompareHashAndPassword(g.hash, []byte(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return Session{}, ErrDenied
		}
		return Session{}, fmt.Errorf("access: verify code: %w", err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	session := Session{
		Token:     uuid.NewString(),
		ExpiresAt: g.clock().Add(g.ttl),
	}
	g.sessions[session.Token] = session.ExpiresAt
	return session, nil
}

// Valid reports whether token names a live session. Expired sessions are
// forgotten.
func (g *Gate) Valid(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	expires, ok := g.sessions[token]
	if !ok {
		return false
	}
	if !g.clock().Before(expires) {
		delete(g.sessions, token)
		return false
	}
	return true
}

// Revoke ends a session.
func (g *Gate) Revoke(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, token)
}
