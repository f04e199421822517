package services

import (
	"testing"
	"time"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewAuthService(repo, "test-secret", time.Hour), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("Student@Uni.EDU", "s3cret", "Amal", "Perera", "0771234567", "UoC", entity.RoleFreelancer)
	require.NoError(t, err)
	assert.Equal(t, "student@uni.edu", user.Email)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.True(t, user.Active)

	token, logged, err := svc.Login("student@uni.edu", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterRejections(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("", "pw", "", "", "", "", entity.RoleClient)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Register("a@uni.edu", "pw", "", "", "", "", entity.RoleAdmin)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Register("a@uni.edu", "pw", "", "", "", "", entity.RoleClient)
	require.NoError(t, err)

	// same email, case-insensitive
	_, err = svc.Register("A@uni.edu", "pw", "", "", "", "", entity.RoleClient)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestLoginRejections(t *testing.T) {
	svc, repo := newAuthService(t)

	user, err := svc.Register("b@uni.edu", "pw", "", "", "", "", entity.RoleClient)
	require.NoError(t, err)

	_, _, err = svc.Login("b@uni.edu", "wrong")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	_, _, err = svc.Login("nobody@uni.edu", "pw")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	require.NoError(t, repo.Update(user.ID, map[string]any{"active": false}))
	_, _, err = svc.Login("b@uni.edu", "pw")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestUpdateProfileWhitelist(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("c@uni.edu", "pw", "Old", "Name", "", "", entity.RoleClient)
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, map[string]any{
		"first_name": "New",
		"role":       entity.RoleAdmin, // must be ignored
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.FirstName)
	assert.Equal(t, entity.RoleClient, updated.Role)

	_, err = svc.UpdateProfile(user.ID, map[string]any{"role": entity.RoleAdmin})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
