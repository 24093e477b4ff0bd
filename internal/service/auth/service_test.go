package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ezystaff/staffing-api/internal/config"
	"github.com/ezystaff/staffing-api/internal/model"
	"github.com/ezystaff/staffing-api/pkg/auth"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := config.AdminConfig{Email: "admin@ezystaff.it", PasswordHash: string(hash)}
	return NewService(admin, auth.NewJWTService("test-secret", time.Hour))
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@ezystaff.it",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	claims, err := auth.NewJWTService("test-secret", time.Hour).ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@ezystaff.it", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@ezystaff.it",
		Password: "wrong",
	})
	require.Error(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "intruder@example.com",
		Password: "s3cret",
	})
	require.Error(t, err)
}
