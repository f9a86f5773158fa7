package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginValidation(t *testing.T) {
	s := New("")

	assert.ErrorIs(t, s.Login("", "secret"), ErrMissingCredentials)
	assert.ErrorIs(t, s.Login("ana@geodatos.com.mx", ""), ErrMissingCredentials)
	assert.False(t, s.LoggedIn())

	require.NoError(t, s.Login("ana@geodatos.com.mx", "secret"))
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "ana@geodatos.com.mx", s.Email())
	assert.Equal(t, "stub", s.Token())
}

func TestLoginKeepsInjectedToken(t *testing.T) {
	s := New("real-token")
	require.NoError(t, s.Login("ana@geodatos.com.mx", "secret"))
	assert.Equal(t, "real-token", s.Token())
}

func TestLogout(t *testing.T) {
	s := New("tok")
	require.NoError(t, s.Login("ana@geodatos.com.mx", "secret"))

	s.Logout()
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Email())
}

func TestClaims(t *testing.T) {
	exp := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "ana@geodatos.com.mx",
		"roles": "admin",
		"exp":   exp.Unix(),
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	s := New(raw)
	claims, ok := s.Claims()
	require.True(t, ok)
	assert.Equal(t, "ana@geodatos.com.mx", claims.Subject)
	assert.Equal(t, "admin", claims.Roles)
	assert.Equal(t, exp, claims.ExpiresAt.UTC())
}

func TestClaimsUnavailable(t *testing.T) {
	_, ok := New("").Claims()
	assert.False(t, ok)

	_, ok = New("stub").Claims()
	assert.False(t, ok, "the stub token carries no claims")

	_, ok = New("not-a-jwt").Claims()
	assert.False(t, ok)
}
