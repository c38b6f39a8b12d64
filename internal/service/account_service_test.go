package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/sundaynet/internal/repository"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewAccountService(db, repository.NewUserRepository(db), "test-secret", time.Hour)

	profile, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret-pass", "hi", false)
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "hi", profile.Bio)

	_, err = svc.Register(ctx, "alice", "other@example.com", "whatever-pass", "", false)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	token, err := svc.Login(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, profile.ID, claims.Subject)

	_, err = svc.Login(ctx, "alice", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
