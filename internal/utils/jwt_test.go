package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestNewAccessTokenCarriesClaims(t *testing.T) {
	at, err := NewAccessToken("test-secret", 42, "ADMIN", 15)
	assert.NoError(t, err)
	assert.NotEmpty(t, at.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), at.Exp, 5*time.Second)

	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestNewAccessTokenRejectsWrongSecret(t *testing.T) {
	at, err := NewAccessToken("right-secret", 1, "STAFF", 15)
	assert.NoError(t, err)

	_, err = jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}

func TestRefreshTokenHashing(t *testing.T) {
	rt, err := NewRefreshToken(7)
	assert.NoError(t, err)
	assert.Len(t, rt.Raw, 96) // 48 random bytes hex-encoded

	// Hashing is deterministic and never echoes the raw token.
	h1 := HashRefreshRaw(rt.Raw)
	h2 := HashRefreshRaw(rt.Raw)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, rt.Raw, h1)
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("password", 4) // minimum cost keeps the test fast
	assert.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "password"))
	assert.False(t, VerifyPassword(hash, "not-the-password"))
}

func TestHashPasswordClampsBadCost(t *testing.T) {
	// Out-of-range costs must not error out; they fall back to the
	// bcrypt default and the hash still verifies.
	for _, cost := range []int{-1, 0, 3, 32, 1000} {
		hash, err := HashPassword("password", cost)
		assert.NoError(t, err, "cost %d", cost)
		assert.True(t, VerifyPassword(hash, "password"), "cost %d", cost)
	}
}
