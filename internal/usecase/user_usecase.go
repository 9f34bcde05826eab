package usecase

import (
	"context"

	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

// profileFields are the only attributes a user may change on their own
// profile. Everything else (password, role, active) has a dedicated flow.
var profileFields = map[string]bool{
	"firstname":   true,
	"lastname":    true,
	"othernames":  true,
	"phoneNumber": true,
	"username":    true,
	"photo":       true,
}

// UserUsecase covers profile self-service and the administrative user surface.
type UserUsecase struct {
	userRepo  contract.IUserRepository
	logger    usecasecontract.IAppLogger
	validator usecasecontract.IValidator
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(userRepo contract.IUserRepository, logger usecasecontract.IAppLogger, validator usecasecontract.IValidator) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		logger:    logger,
		validator: validator,
	}
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID, false)
}

// UpdateProfile applies a partial update to the caller's own profile.
// Credential fields are rejected outright rather than ignored, so a client
// posting a password here learns about the dedicated endpoint.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	if _, ok := updates["password"]; ok {
		return nil, apperror.Validation("this route is not for password updates, please use /updatepassword")
	}
	if _, ok := updates["passwordConfirm"]; ok {
		return nil, apperror.Validation("this route is not for password updates, please use /updatepassword")
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	for field, value := range updates {
		if !profileFields[field] {
			continue
		}
		s, ok := value.(string)
		if !ok {
			return nil, apperror.Validation("invalid value for field " + field)
		}
		switch field {
		case "firstname":
			user.Firstname = s
		case "lastname":
			user.Lastname = s
		case "othernames":
			user.Othernames = s
		case "phoneNumber":
			if err := uc.validator.ValidatePhoneNumber(s); err != nil {
				return nil, apperror.Validation(err.Error())
			}
			user.PhoneNumber = s
		case "username":
			if err := uc.validator.ValidateUsername(s); err != nil {
				return nil, apperror.Validation(err.Error())
			}
			user.Username = s
		case "photo":
			user.Photo = s
		}
	}

	return uc.userRepo.UpdateUser(ctx, user)
}

// DeactivateUser soft-deletes the account. The document stays in the store
// but disappears from every non-administrative read.
func (uc *UserUsecase) DeactivateUser(ctx context.Context, userID string) error {
	return uc.userRepo.DeactivateUser(ctx, userID)
}

func (uc *UserUsecase) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, error) {
	return uc.userRepo.ListUsers(ctx, page, limit)
}

// PromoteUser grants the admin role. The legacy isAdmin flag is derived from
// the role and never consulted on its own.
func (uc *UserUsecase) PromoteUser(ctx context.Context, userID string) (*entity.User, error) {
	return uc.setRole(ctx, userID, entity.UserRoleAdmin)
}

func (uc *UserUsecase) DemoteUser(ctx context.Context, userID string) (*entity.User, error) {
	return uc.setRole(ctx, userID, entity.UserRoleUser)
}

func (uc *UserUsecase) setRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.SyncLegacyAdminFlag()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update role for user %s: %v", userID, err)
		return nil, err
	}
	return updated, nil
}

// DeleteUser permanently removes the account. Administrative only; regular
// users deactivate instead.
func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	return uc.userRepo.DeleteUser(ctx, userID)
}
