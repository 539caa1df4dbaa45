package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/baharkarakas/qa-backend/internal/auth"
	"github.com/baharkarakas/qa-backend/internal/repository"
	"github.com/baharkarakas/qa-backend/internal/repository/repotest"
)

func TestUserServiceRegisterHashesPassword(t *testing.T) {
	ctx := context.Background()
	h := auth.NewHasher(bcrypt.MinCost)
	svc := NewUserService(repotest.NewStore().Users(), h)

	u, err := svc.Register(ctx, UserInput{Email: "ada@example.com", Username: "ada", Password: "pass1234!"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "pass1234!", u.PasswordHash)
	assert.NoError(t, h.Verify("pass1234!", u.PasswordHash))

	_, err = svc.Register(ctx, UserInput{Email: "ada@example.com", Username: "other", Password: "pass1234!"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserServiceUpdateRehashes(t *testing.T) {
	ctx := context.Background()
	h := auth.NewHasher(bcrypt.MinCost)
	svc := NewUserService(repotest.NewStore().Users(), h)

	u, err := svc.Register(ctx, UserInput{Email: "ada@example.com", Username: "ada", Password: "pass1234!"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, u.ID, UserInput{Email: "lovelace@example.com", Username: "lovelace", Password: "pass1234!"}))

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "lovelace@example.com", got.Email)
	assert.Equal(t, "lovelace", got.Username)
	assert.NotEqual(t, u.PasswordHash, got.PasswordHash)
	assert.NoError(t, h.Verify("pass1234!", got.PasswordHash))
}

func TestUserServiceUpdateUnknownIDReportsSuccess(t *testing.T) {
	svc := NewUserService(repotest.NewStore().Users(), auth.NewHasher(bcrypt.MinCost))
	err := svc.Update(context.Background(), 999, UserInput{Email: "x@example.com", Username: "xyz", Password: "pass1234!"})
	assert.NoError(t, err)
}

func TestUserServiceDeleteUnknown(t *testing.T) {
	svc := NewUserService(repotest.NewStore().Users(), auth.NewHasher(bcrypt.MinCost))
	assert.ErrorIs(t, svc.Delete(context.Background(), 999), repository.ErrNotFound)
}
