package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ireporter/api/internal/domain/entity"
	"github.com/ireporter/api/internal/usecase"
)

// ErrInvalidToken is returned for every verification failure. Tampered,
// malformed and expired tokens are deliberately indistinguishable to the
// caller.
var ErrInvalidToken = errors.New("invalid or expired session token")

// Manager issues and validates HMAC-signed session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

var _ usecase.SessionTokenService = (*Manager)(nil)

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// GenerateSessionToken issues a token carrying the principal id and the
// issuance timestamp, valid for the configured TTL.
func (m *Manager) GenerateSessionToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifySessionToken checks signature and expiry and returns the claims.
func (m *Manager) VerifySessionToken(tokenStr string) (*entity.SessionClaims, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	return &entity.SessionClaims{
		UserID:    claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
