package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/stockpro/stockpro-api/internal/domain/entity"
	"github.com/stockpro/stockpro-api/pkg/apperror"
)

func newUserFixture(t *testing.T) (*entity.User, *UserService) {
	t.Helper()
	userRepo, authSvc := newAuthFixture()

	user, err := authSvc.Register(context.Background(), &RegisterInput{
		FirstName: "Ben", LastName: "Till",
		Email: "till@stockpro.test", Password: "secret123",
	})
	assert.NoError(t, err)

	return user, NewUserService(userRepo, userRepo.roles)
}

func TestSetUserRoles(t *testing.T) {
	user, svc := newUserFixture(t)

	updated, err := svc.SetUserRoles(context.Background(), user.ID, []string{"staff"})
	assert.NoError(t, err)
	assert.True(t, updated.HasRole("staff"))
	assert.False(t, updated.HasRole("admin"))

	updated, err = svc.SetUserRoles(context.Background(), user.ID, []string{"admin", "staff"})
	assert.NoError(t, err)
	assert.True(t, updated.HasRole("admin"))
	assert.True(t, updated.HasRole("staff"))
}

func TestSetUserRolesUnknownRole(t *testing.T) {
	user, svc := newUserFixture(t)

	_, err := svc.SetUserRoles(context.Background(), user.ID, []string{"janitor"})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Unknown role: janitor", appErr.Message)
}

func TestUpdateUserProfileFields(t *testing.T) {
	user, svc := newUserFixture(t)

	first := "Benjamin"
	updated, err := svc.UpdateUser(context.Background(), user.ID, &UpdateUserInput{FirstName: &first})

	assert.NoError(t, err)
	assert.Equal(t, "Benjamin", updated.FirstName)
	assert.Equal(t, "Till", updated.LastName)
}

func TestGetUnknownUser(t *testing.T) {
	_, svc := newUserFixture(t)

	_, err := svc.GetUser(context.Background(), uuid.New())

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestDeleteUser(t *testing.T) {
	user, svc := newUserFixture(t)

	err := svc.DeleteUser(context.Background(), user.ID)
	assert.NoError(t, err)

	err = svc.DeleteUser(context.Background(), user.ID)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}
