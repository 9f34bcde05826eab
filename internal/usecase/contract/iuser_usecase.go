package usecasecontract

import (
	"context"

	"github.com/ireporter/api/internal/domain/entity"
)

// IUserUseCase covers profile management and the administrative user surface.
type IUserUseCase interface {
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
	// DeactivateUser soft-deletes the account; it disappears from all
	// non-administrative reads.
	DeactivateUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context, page, limit int) ([]*entity.User, error)
	// PromoteUser grants the admin role; the legacy isAdmin flag follows.
	PromoteUser(ctx context.Context, userID string) (*entity.User, error)
	DemoteUser(ctx context.Context, userID string) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error
}
