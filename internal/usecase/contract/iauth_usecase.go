package usecasecontract

import (
	"context"

	"github.com/ireporter/api/internal/domain/entity"
)

// CompleteSignupInput carries the profile fields required to promote a
// pending registration into a principal.
type CompleteSignupInput struct {
	Username    string
	Firstname   string
	Lastname    string
	Othernames  string
	PhoneNumber string
}

// IAuthUseCase orchestrates the principal lifecycle: signup, verification,
// login, logout and the password reset flows.
type IAuthUseCase interface {
	// Signup validates the input, stores a pending registration and sends a
	// verification link. No principal exists until the link is redeemed.
	Signup(ctx context.Context, email, password, passwordConfirm string) error
	// CompleteSignup redeems a verification token (single-use), creates the
	// principal and returns it with a fresh session token.
	CompleteSignup(ctx context.Context, token string, input CompleteSignupInput) (*entity.User, string, error)
	// Login authenticates by email or username and returns a session token.
	Login(ctx context.Context, identifier, password string) (*entity.User, string, error)
	// LoginWithGoogle logs in (or first registers) a Google-authenticated user.
	LoginWithGoogle(ctx context.Context, firstname, lastname, email string) (*entity.User, string, error)
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword redeems a reset token and returns the user auto-logged-in
	// with a fresh session token.
	ResetPassword(ctx context.Context, token, password, passwordConfirm string) (*entity.User, string, error)
	// UpdatePassword changes the password of an authenticated principal after
	// verifying the current one, and reissues a session token.
	UpdatePassword(ctx context.Context, userID, currentPassword, password, passwordConfirm string) (*entity.User, string, error)
}
