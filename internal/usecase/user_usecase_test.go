package usecase_test

import (
	"context"
	"testing"

	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/domain/entity"
	"github.com/ireporter/api/internal/infrastructure/validator"
	"github.com/ireporter/api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*usecase.UserUsecase, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return usecase.NewUserUsecase(repo, nopLogger{}, validator.NewValidator()), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, id string) *entity.User {
	t.Helper()
	user := &entity.User{
		ID:       id,
		Email:    id + "@example.com",
		Username: "user" + id,
		Role:     entity.UserRoleUser,
		Active:   true,
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func TestUpdateProfileRejectsPasswordFields(t *testing.T) {
	uc, repo := newUserFixture(t)
	user := seedUser(t, repo, "u1")
	ctx := context.Background()

	_, err := uc.UpdateProfile(ctx, user.ID, map[string]interface{}{"password": "sneaky123"})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Contains(t, apperror.MessageOf(err), "/updatepassword")

	_, err = uc.UpdateProfile(ctx, user.ID, map[string]interface{}{"passwordConfirm": "sneaky123"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestUpdateProfileIgnoresUnknownAndProtectedFields(t *testing.T) {
	uc, repo := newUserFixture(t)
	user := seedUser(t, repo, "u1")

	updated, err := uc.UpdateProfile(context.Background(), user.ID, map[string]interface{}{
		"firstname": "Ada",
		"role":      "admin",
		"active":    false,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", updated.Firstname)
	// Role and active never move through the profile route.
	assert.Equal(t, entity.UserRoleUser, updated.Role)
	assert.True(t, updated.Active)
}

func TestUpdateProfileValidatesUsername(t *testing.T) {
	uc, repo := newUserFixture(t)
	user := seedUser(t, repo, "u1")

	_, err := uc.UpdateProfile(context.Background(), user.ID, map[string]interface{}{"username": "ab"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestDeactivateHidesUserFromReads(t *testing.T) {
	uc, repo := newUserFixture(t)
	user := seedUser(t, repo, "u1")
	ctx := context.Background()

	require.NoError(t, uc.DeactivateUser(ctx, user.ID))

	_, err := uc.GetUserByID(ctx, user.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	// Administrative reads can still see the document.
	stored, err := repo.GetUserByID(ctx, user.ID, true)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestPromoteAndDemoteSyncLegacyFlag(t *testing.T) {
	uc, repo := newUserFixture(t)
	user := seedUser(t, repo, "u1")
	ctx := context.Background()

	promoted, err := uc.PromoteUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleAdmin, promoted.Role)
	assert.True(t, promoted.IsAdmin)

	demoted, err := uc.DemoteUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleUser, demoted.Role)
	assert.False(t, demoted.IsAdmin)
}

func TestDeleteUserRemovesDocument(t *testing.T) {
	uc, repo := newUserFixture(t)
	user := seedUser(t, repo, "u1")
	ctx := context.Background()

	require.NoError(t, uc.DeleteUser(ctx, user.ID))

	_, err := repo.GetUserByID(ctx, user.ID, true)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
