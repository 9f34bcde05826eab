package mocks

import (
	"context"

	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/domain/entity"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface.
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailGetByID    bool
	ShouldFailUpdate     bool
	ShouldFailDeactivate bool
	ShouldFailList       bool
	ShouldFailPromote    bool
	ShouldFailDemote     bool
	ShouldFailDelete     bool

	// Return values
	MockUser  entity.User
	MockUsers []*entity.User

	// Captured arguments
	LastUpdates map[string]interface{}
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	u := entity.User{
		ID:       "mock-user-id",
		Username: "testuser",
		Email:    "test@example.com",
		Role:     entity.UserRoleUser,
		Active:   true,
	}
	return &MockUserUsecase{
		MockUser:  u,
		MockUsers: []*entity.User{&u},
	}
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, apperror.NotFound("user not found")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	m.LastUpdates = updates
	if m.ShouldFailUpdate {
		return nil, apperror.Validation("this route is not for password updates, please use /updatepassword")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) DeactivateUser(ctx context.Context, userID string) error {
	if m.ShouldFailDeactivate {
		return apperror.NotFound("user not found")
	}
	return nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, error) {
	if m.ShouldFailList {
		return nil, apperror.Internal(nil)
	}
	return m.MockUsers, nil
}

func (m *MockUserUsecase) PromoteUser(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailPromote {
		return nil, apperror.NotFound("user not found")
	}
	promoted := m.MockUser
	promoted.Role = entity.UserRoleAdmin
	promoted.SyncLegacyAdminFlag()
	return &promoted, nil
}

func (m *MockUserUsecase) DemoteUser(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailDemote {
		return nil, apperror.NotFound("user not found")
	}
	demoted := m.MockUser
	demoted.Role = entity.UserRoleUser
	demoted.SyncLegacyAdminFlag()
	return &demoted, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if m.ShouldFailDelete {
		return apperror.NotFound("user not found")
	}
	return nil
}
