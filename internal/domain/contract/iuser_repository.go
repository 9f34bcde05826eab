package contract

import (
	"context"
	"time"

	"github.com/ireporter/api/internal/domain/entity"
)

// IUserRepository is the credential store for registered principals.
//
// Every read takes an explicit includeInactive flag: soft-deleted users
// (active=false) are excluded unless the caller opts in. Uniqueness of
// email/username/phoneNumber is enforced by the store's unique indexes and
// surfaces as a conflict error.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string, includeInactive bool) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string, includeInactive bool) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string, includeInactive bool) (*entity.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword replaces the password hash and stamps passwordChangedAt.
	UpdateUserPassword(ctx context.Context, id, hashedPassword string, changedAt time.Time) error
	// SetPasswordResetToken persists the hash and expiry of a freshly issued
	// reset token on the user.
	SetPasswordResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	// ClearPasswordResetToken removes any pending reset token fields. Used to
	// roll back when the reset notification cannot be dispatched.
	ClearPasswordResetToken(ctx context.Context, id string) error
	// RedeemPasswordResetToken atomically finds the user holding an unexpired
	// reset token with the given hash, replaces the password, stamps
	// passwordChangedAt and clears the token fields. Of two concurrent
	// redeemers exactly one receives the user; the other gets not-found.
	RedeemPasswordResetToken(ctx context.Context, tokenHash, newPasswordHash string, changedAt time.Time) (*entity.User, error)
	// DeactivateUser soft-deletes a user (active=false).
	DeactivateUser(ctx context.Context, id string) error
	// DeleteUser removes a user document entirely (admin operation).
	DeleteUser(ctx context.Context, id string) error
}
