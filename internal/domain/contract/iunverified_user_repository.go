package contract

import (
	"context"

	"github.com/ireporter/api/internal/domain/entity"
)

// IUnverifiedUserRepository stores pending registrations awaiting email
// confirmation. Email is unique among pending registrations.
type IUnverifiedUserRepository interface {
	CreateUnverifiedUser(ctx context.Context, user *entity.UnverifiedUser) error
	GetUnverifiedUserByEmail(ctx context.Context, email string) (*entity.UnverifiedUser, error)
	// TakeByTokenHash atomically finds and deletes the pending registration
	// holding an unexpired verification token with the given hash. This makes
	// verification tokens single-use: a second redemption gets not-found.
	TakeByTokenHash(ctx context.Context, tokenHash string) (*entity.UnverifiedUser, error)
	DeleteUnverifiedUserByEmail(ctx context.Context, email string) error
}
