package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", 24*time.Hour)

	tok, exp, err := m.GenerateAccessToken(42)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, 5*time.Second)

	claims, err := m.ParseAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, _, err := NewJWTManager("one", time.Hour).GenerateAccessToken(1)
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Hour).ParseAccessToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, _, err := m.GenerateAccessToken(1)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ParseAccessToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseRejectsMissingUserID(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	tok := signRaw(t, m, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

	_, err := m.ParseAccessToken(tok)
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestParseRejectsMissingExpiry(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	tok := signRaw(t, m, jwt.MapClaims{"user_id": 7})

	_, err := m.ParseAccessToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	raw := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	tok, err := raw.SignedString(m.Secret)
	require.NoError(t, err)

	_, err = m.ParseAccessToken(tok)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewJWTManager("secret", time.Hour).ParseAccessToken("not-a-token")
	assert.Error(t, err)
}

func signRaw(t *testing.T, m *JWTManager, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	require.NoError(t, err)
	return tok
}
