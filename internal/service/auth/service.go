package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ezystaff/staffing-api/internal/config"
	"github.com/ezystaff/staffing-api/internal/model"
	"github.com/ezystaff/staffing-api/pkg/auth"
	apperrors "github.com/ezystaff/staffing-api/pkg/errors"
)

const adminRole = "admin"

// Service authenticates the single back-office administrator configured at
// startup. There is no user table; the credential lives in config.
type Service struct {
	admin config.AdminConfig
	jwt   auth.JWTService
}

func NewService(admin config.AdminConfig, jwtSvc auth.JWTService) *Service {
	return &Service{admin: admin, jwt: jwtSvc}
}

// Login checks the credential against the configured admin account and
// issues a bearer token on success. Wrong email and wrong password return
// the same error so the response does not reveal which field failed.
func (s *Service) Login(_ context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req.Email != s.admin.Email {
		return nil, apperrors.Unauthorized(fmt.Errorf("unknown email"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized(fmt.Errorf("password mismatch"))
	}

	token, err := s.jwt.GenerateToken(req.Email, adminRole)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to issue token: %w", err))
	}

	return &model.LoginResponse{Token: token}, nil
}
