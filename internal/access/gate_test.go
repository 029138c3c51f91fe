package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHash(t *testing.T, code string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthenticateIssuesSession(t *testing.T) {
	now := time.Date(2026, 3, 6, 18, 0, 0, 0, time.UTC)
	gate := NewGate(testHash(t, "kitchen-2026"), WithClock(func() time.Time { return now }), WithSessionTTL(time.Hour))

	session, err := gate.Authenticate(" kitchen-2026 ")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)
	assert.True(t, gate.Valid(session.Token))

	gate.Revoke(session.Token)
	assert.False(t, gate.Valid(session.Token))
}

func TestAuthenticateRejectsWrongCode(t *testing.T) {
	gate := NewGate(testHash(t, "kitchen-2026"))
	_, err := gate.Authenticate("admin")
	assert.ErrorIs(t, err, ErrDenied)
	assert.False(t, gate.Valid(""))
}

func TestUnconfiguredGateRefusesEverything(t *testing.T) {
	gate := NewGate("  ")
	assert.False(t, gate.Configured())
	_, err := gate.Authenticate("")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSessionsExpire(t *testing.T) {
	now := time.Date(2026, 3, 6, 18, 0, 0, 0, time.UTC)
	gate := NewGate(testHash(t, "pass"), WithClock(func() time.Time { return now }), WithSessionTTL(time.Minute))
	session, err := gate.Authenticate("pass")
	require.NoError(t, err)

	now = now.Add(59 * time.Second)
	assert.True(t, gate.Valid(session.Token))
	now = now.Add(time.Second)
	assert.False(t, gate.Valid(session.Token))
}

func TestHashCodeRoundTrip(t *testing.T) {
	hash, err := HashCode("estate-staff")
	require.NoError(t, err)
	gate := NewGate(hash)
	_, err = gate.Authenticate("estate-staff")
	assert.NoError(t, err)

	_, err = HashCode("   ")
	assert.Error(t, err)
}
