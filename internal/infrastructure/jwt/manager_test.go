package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ireporter/api/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	token, err := manager.GenerateSessionToken("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestVerifySessionTokenRejectsTampering(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	token, err := manager.GenerateSessionToken("user-42")
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = manager.VerifySessionToken(tampered)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerifySessionTokenRejectsWrongSecret(t *testing.T) {
	issuer := jwt.NewManager("secret-one", time.Hour)
	verifier := jwt.NewManager("secret-two", time.Hour)

	token, err := issuer.GenerateSessionToken("user-42")
	require.NoError(t, err)

	_, err = verifier.VerifySessionToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerifySessionTokenRejectsExpired(t *testing.T) {
	manager := jwt.NewManager("test-secret", -time.Minute)

	token, err := manager.GenerateSessionToken("user-42")
	require.NoError(t, err)

	// Expired and tampered tokens fail with the same error.
	_, err = manager.VerifySessionToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerifySessionTokenRejectsGarbage(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		_, err := manager.VerifySessionToken(bad)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	}
}
