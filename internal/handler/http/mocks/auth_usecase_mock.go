package mocks

import (
	"context"

	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/domain/entity"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface.
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailSignup          bool
	ShouldFailCompleteSignup  bool
	ShouldFailLogin           bool
	ShouldFailLoginWithGoogle bool
	ShouldFailForgotPassword  bool
	ShouldFailResetPassword   bool
	ShouldFailUpdatePassword  bool

	// Return values
	MockUser  entity.User
	MockToken string

	// Captured arguments
	LastSignupEmail    string
	LastLoginIdentity  string
	LastRedeemedToken  string
	LastUpdatePassword string
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
			Active:   true,
		},
		MockToken: "mock_session_token",
	}
}

func (m *MockAuthUsecase) Signup(ctx context.Context, email, password, passwordConfirm string) error {
	m.LastSignupEmail = email
	if m.ShouldFailSignup {
		return apperror.Conflict("an account with this email already exists")
	}
	return nil
}

func (m *MockAuthUsecase) CompleteSignup(ctx context.Context, token string, input usecasecontract.CompleteSignupInput) (*entity.User, string, error) {
	m.LastRedeemedToken = token
	if m.ShouldFailCompleteSignup {
		return nil, "", apperror.Unauthorized("verification token is invalid or has expired")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	m.LastLoginIdentity = identifier
	if m.ShouldFailLogin {
		return nil, "", apperror.Unauthorized("incorrect email or password")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) LoginWithGoogle(ctx context.Context, firstname, lastname, email string) (*entity.User, string, error) {
	if m.ShouldFailLoginWithGoogle {
		return nil, "", apperror.Internal(nil)
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	if m.ShouldFailForgotPassword {
		return apperror.Dependency("there was an error sending the email, try again later", nil)
	}
	return nil
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, token, password, passwordConfirm string) (*entity.User, string, error) {
	m.LastRedeemedToken = token
	if m.ShouldFailResetPassword {
		return nil, "", apperror.Unauthorized("token is invalid or has expired")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) UpdatePassword(ctx context.Context, userID, currentPassword, password, passwordConfirm string) (*entity.User, string, error) {
	m.LastUpdatePassword = userID
	if m.ShouldFailUpdatePassword {
		return nil, "", apperror.Unauthorized("your current password is wrong")
	}
	return &m.MockUser, m.MockToken, nil
}
