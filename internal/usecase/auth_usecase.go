package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

const (
	// resetTokenBytes and verificationTokenBytes size the random tokens
	// embedded in emailed links.
	resetTokenBytes        = 32
	verificationTokenBytes = 32

	// invalidCredentials is the single message for every login failure.
	// Unknown identifier and wrong password must be indistinguishable.
	invalidCredentials = "incorrect email or password"

	// invalidResetToken covers mismatch and expiry alike.
	invalidResetToken = "token is invalid or has expired"
)

// AuthUsecase orchestrates the principal lifecycle: signup through pending
// verification, login/logout, and the password reset flows.
type AuthUsecase struct {
	userRepo       contract.IUserRepository
	unverifiedRepo contract.IUnverifiedUserRepository
	hasher         contract.IHasher
	sessionTokens  SessionTokenService
	mailService    contract.IEmailService
	random         contract.IRandomGenerator
	uuidGenerator  contract.IUUIDGenerator
	logger         usecasecontract.IAppLogger
	config         usecasecontract.IConfigProvider
	validator      usecasecontract.IValidator
}

var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(
	userRepo contract.IUserRepository,
	unverifiedRepo contract.IUnverifiedUserRepository,
	hasher contract.IHasher,
	sessionTokens SessionTokenService,
	mailService contract.IEmailService,
	random contract.IRandomGenerator,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		unverifiedRepo: unverifiedRepo,
		hasher:         hasher,
		sessionTokens:  sessionTokens,
		mailService:    mailService,
		random:         random,
		uuidGenerator:  uuidGenerator,
		logger:         logger,
		config:         cfg,
		validator:      validator,
	}
}

// Signup starts a registration: the credentials are captured as a pending
// registration and a verification link is emailed. No principal exists until
// the link is redeemed.
func (uc *AuthUsecase) Signup(ctx context.Context, email, password, passwordConfirm string) error {
	email = normalizeEmail(email)
	if err := uc.validator.ValidateEmail(email); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return apperror.Validation(err.Error())
	}
	if password != passwordConfirm {
		return apperror.Validation("passwords do not match")
	}

	// Email must be free among all principals, active or deactivated.
	if _, err := uc.userRepo.GetUserByEmail(ctx, email, true); err == nil {
		return apperror.Conflict("an account with this email already exists")
	} else if !apperror.IsKind(err, apperror.KindNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return err
	}
	if _, err := uc.unverifiedRepo.GetUnverifiedUserByEmail(ctx, email); err == nil {
		return apperror.Conflict("a signup for this email is already pending verification")
	} else if !apperror.IsKind(err, apperror.KindNotFound) {
		uc.logger.Errorf("failed to check for pending registration: %v", err)
		return err
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return apperror.Internal(err)
	}

	plainToken, err := uc.random.GenerateRandomToken(verificationTokenBytes)
	if err != nil {
		return apperror.Internal(err)
	}

	pending := &entity.UnverifiedUser{
		ID:           uc.uuidGenerator.NewUUID(),
		Email:        email,
		PasswordHash: hashedPassword,
		TokenHash:    uc.hasher.HashToken(plainToken),
		TokenExpires: time.Now().Add(uc.config.GetVerificationTokenExpiry()),
		CreatedAt:    time.Now(),
	}
	if err := uc.unverifiedRepo.CreateUnverifiedUser(ctx, pending); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v1/users/complete-signup/%s", uc.config.GetAppBaseURL(), plainToken)
	if err := uc.mailService.SendVerification(ctx, email, link); err != nil {
		uc.logger.Errorf("failed to send verification email to %s: %v", email, err)
		// Compensate so the user can simply sign up again.
		if delErr := uc.unverifiedRepo.DeleteUnverifiedUserByEmail(ctx, email); delErr != nil {
			uc.logger.Errorf("failed to roll back pending registration for %s: %v", email, delErr)
		}
		return apperror.Dependency("there was an error sending the email, try again later", err)
	}
	return nil
}

// CompleteSignup redeems the verification token and promotes the pending
// registration into a principal. The token is single-use: the lookup deletes
// the pending record atomically. If the promotion itself fails, the pending
// record is restored so the token can be retried with different details.
func (uc *AuthUsecase) CompleteSignup(ctx context.Context, token string, input usecasecontract.CompleteSignupInput) (*entity.User, string, error) {
	if err := uc.validator.ValidateUsername(input.Username); err != nil {
		return nil, "", apperror.Validation(err.Error())
	}
	if err := uc.validator.ValidatePhoneNumber(input.PhoneNumber); err != nil {
		return nil, "", apperror.Validation(err.Error())
	}
	if input.Firstname == "" || input.Lastname == "" {
		return nil, "", apperror.Validation("please tell us your name")
	}

	// Reject a taken username before consuming the token so the caller can
	// retry with a different one.
	if _, err := uc.userRepo.GetUserByUsername(ctx, input.Username, true); err == nil {
		return nil, "", apperror.Conflict("this username is already taken")
	} else if !apperror.IsKind(err, apperror.KindNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, "", err
	}

	pending, err := uc.unverifiedRepo.TakeByTokenHash(ctx, uc.hasher.HashToken(token))
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, "", apperror.Unauthorized("verification token is invalid or has expired")
		}
		return nil, "", err
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Firstname:    input.Firstname,
		Lastname:     input.Lastname,
		Othernames:   input.Othernames,
		PhoneNumber:  input.PhoneNumber,
		Email:        pending.Email,
		Username:     input.Username,
		Photo:        entity.DefaultPhotoURL,
		SignupMethod: entity.SignupMethodEmail,
		Role:         entity.DefaultRole(),
		PasswordHash: pending.PasswordHash,
		Active:       true,
		CreatedAt:    time.Now(),
		// PasswordChangedAt stays unset on creation: it marks changes, not
		// the initial hash.
	}
	user.SyncLegacyAdminFlag()

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		// Restore the pending registration so the token survives a creation
		// failure (a phone-number collision, a transient store error) and
		// the user does not have to re-verify their email.
		if putErr := uc.unverifiedRepo.CreateUnverifiedUser(ctx, pending); putErr != nil {
			uc.logger.Errorf("failed to restore pending registration for %s: %v", pending.Email, putErr)
		}
		return nil, "", err
	}

	sessionToken, err := uc.sessionTokens.GenerateSessionToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate session token for user %s: %v", user.ID, err)
		return nil, "", apperror.Internal(err)
	}
	return user, sessionToken, nil
}

// Login authenticates by email or username. Every failure path returns the
// same unauthorized error so account existence cannot be probed.
func (uc *AuthUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	if identifier == "" || password == "" {
		return nil, "", apperror.Validation("please provide email and password")
	}

	var user *entity.User
	var err error
	if uc.validator.ValidateEmail(identifier) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, normalizeEmail(identifier), false)
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, identifier, false)
	}
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, "", apperror.Unauthorized(invalidCredentials)
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", err
	}

	// OAuth accounts carry an empty hash; comparison fails uniformly.
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", apperror.Unauthorized(invalidCredentials)
	}

	sessionToken, err := uc.sessionTokens.GenerateSessionToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate session token for user %s: %v", user.ID, err)
		return nil, "", apperror.Internal(err)
	}
	return user, sessionToken, nil
}

// LoginWithGoogle logs a Google-authenticated user in, registering an
// immediately active principal on first contact. Email ownership was proven
// by Google, so no pending-verification step applies.
func (uc *AuthUsecase) LoginWithGoogle(ctx context.Context, firstname, lastname, email string) (*entity.User, string, error) {
	email = normalizeEmail(email)
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", apperror.Validation(err.Error())
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email, false)
	if err != nil {
		if !apperror.IsKind(err, apperror.KindNotFound) {
			uc.logger.Errorf("failed to check for existing user by email: %v", err)
			return nil, "", err
		}
		user, err = uc.registerGoogleUser(ctx, firstname, lastname, email)
		if err != nil {
			return nil, "", err
		}
	}

	sessionToken, err := uc.sessionTokens.GenerateSessionToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate session token for user %s: %v", user.ID, err)
		return nil, "", apperror.Internal(err)
	}
	return user, sessionToken, nil
}

func (uc *AuthUsecase) registerGoogleUser(ctx context.Context, firstname, lastname, email string) (*entity.User, error) {
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Firstname:    firstname,
		Lastname:     lastname,
		Email:        email,
		Username:     uc.usernameFromEmail(email),
		PhoneNumber:  "",
		Photo:        entity.DefaultPhotoURL,
		SignupMethod: entity.SignupMethodGoogle,
		Role:         entity.DefaultRole(),
		PasswordHash: "", // no password login for OAuth accounts
		Active:       true,
		CreatedAt:    time.Now(),
	}
	user.SyncLegacyAdminFlag()

	err := uc.userRepo.CreateUser(ctx, user)
	if apperror.IsKind(err, apperror.KindConflict) {
		// Username collision: retry once with a random suffix.
		user.Username = uc.usernameFromEmail(email)
		err = uc.userRepo.CreateUser(ctx, user)
	}
	if err != nil {
		uc.logger.Errorf("failed to register Google user: %v", err)
		return nil, err
	}
	return user, nil
}

// usernameFromEmail derives a 4-20 alphanumeric username from the email local
// part, padded with random digits for uniqueness.
func (uc *AuthUsecase) usernameFromEmail(email string) string {
	local := strings.SplitN(email, "@", 2)[0]
	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if len(name) > 14 {
		name = name[:14]
	}
	suffix, err := uc.random.GenerateRandomToken(3)
	if err != nil {
		suffix = fmt.Sprintf("%d", time.Now().UnixNano()%1000000)
	}
	return name + suffix
}

// ForgotPassword issues a reset token if (and only if) the email belongs to
// an active principal. The caller responds identically either way; only the
// dependency failure on the email dispatch surfaces as an error.
func (uc *AuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email), false)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			// Silently succeed so account existence cannot be probed.
			return nil
		}
		uc.logger.Errorf("failed to retrieve user for password reset: %v", err)
		return err
	}

	plainToken, err := uc.random.GenerateRandomToken(resetTokenBytes)
	if err != nil {
		return apperror.Internal(err)
	}
	expires := time.Now().Add(uc.config.GetPasswordResetTokenExpiry())
	if err := uc.userRepo.SetPasswordResetToken(ctx, user.ID, uc.hasher.HashToken(plainToken), expires); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v1/users/resetpassword/%s", uc.config.GetAppBaseURL(), plainToken)
	if err := uc.mailService.SendPasswordReset(ctx, user.Email, link); err != nil {
		uc.logger.Errorf("failed to send password reset email to %s: %v", user.Email, err)
		// Never leave a dangling token the user cannot use.
		if clearErr := uc.userRepo.ClearPasswordResetToken(ctx, user.ID); clearErr != nil {
			uc.logger.Errorf("failed to roll back reset token for user %s: %v", user.ID, clearErr)
		}
		return apperror.Dependency("there was an error sending the email, try again later", err)
	}
	return nil
}

// ResetPassword redeems the emailed token. Redemption is a single atomic
// find-and-clear in the store, so of two concurrent requests with the same
// token exactly one succeeds.
func (uc *AuthUsecase) ResetPassword(ctx context.Context, token, password, passwordConfirm string) (*entity.User, string, error) {
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, "", apperror.Validation(err.Error())
	}
	if password != passwordConfirm {
		return nil, "", apperror.Validation("passwords do not match")
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", apperror.Internal(err)
	}

	// Stamp the change one second in the past so the session token issued
	// below is strictly newer than passwordChangedAt.
	changedAt := time.Now().Add(-time.Second)
	user, err := uc.userRepo.RedeemPasswordResetToken(ctx, uc.hasher.HashToken(token), hashedPassword, changedAt)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, "", apperror.Unauthorized(invalidResetToken)
		}
		return nil, "", err
	}

	sessionToken, err := uc.sessionTokens.GenerateSessionToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate session token for user %s: %v", user.ID, err)
		return nil, "", apperror.Internal(err)
	}
	return user, sessionToken, nil
}

// UpdatePassword changes the password of an authenticated principal. All
// session tokens issued before the change become stale through the
// passwordChangedAt check in the auth middleware.
func (uc *AuthUsecase) UpdatePassword(ctx context.Context, userID, currentPassword, password, passwordConfirm string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID, false)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, "", apperror.Unauthorized("user no longer exists")
		}
		return nil, "", err
	}

	if err := uc.hasher.ComparePasswordHash(currentPassword, user.PasswordHash); err != nil {
		return nil, "", apperror.Unauthorized("your current password is wrong")
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, "", apperror.Validation(err.Error())
	}
	if password != passwordConfirm {
		return nil, "", apperror.Validation("passwords do not match")
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", apperror.Internal(err)
	}

	changedAt := time.Now().Add(-time.Second)
	if err := uc.userRepo.UpdateUserPassword(ctx, user.ID, hashedPassword, changedAt); err != nil {
		return nil, "", err
	}
	user.PasswordHash = hashedPassword
	user.PasswordChangedAt = &changedAt

	sessionToken, err := uc.sessionTokens.GenerateSessionToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate session token for user %s: %v", user.ID, err)
		return nil, "", apperror.Internal(err)
	}
	return user, sessionToken, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
