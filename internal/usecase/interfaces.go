package usecase

import (
	"github.com/ireporter/api/internal/domain/entity"
)

// SessionTokenService signs and validates stateless session tokens. A session
// token binds a principal id and an issuance timestamp; validity is
// recomputed from signature and expiry on every request, never persisted.
type SessionTokenService interface {
	GenerateSessionToken(userID string) (string, error)
	// VerifySessionToken returns one uniform error for tampered and expired
	// tokens so callers cannot distinguish the failure reason.
	VerifySessionToken(token string) (*entity.SessionClaims, error)
}
