package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/jwt"
)

type ServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service) auth.Service {
	return &ServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.Service.
func (s *ServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(u.ID, string(u.Role), u.EmployeeCode)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	slog.Info("user logged in", "user_id", u.ID, "role", u.Role)

	return auth.LoginResponse{
		AccessToken:  token,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
		Name:         u.Name,
		Role:         string(u.Role),
		EmployeeCode: u.EmployeeCode,
	}, nil
}

// Register implements auth.Service.
func (s *ServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	u := user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         user.Role(req.Role),
		EmployeeCode: req.EmployeeCode,
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(created.ID, string(created.Role), created.EmployeeCode)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	slog.Info("user registered", "user_id", created.ID, "role", created.Role)

	return auth.LoginResponse{
		AccessToken:  token,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
		Name:         created.Name,
		Role:         string(created.Role),
		EmployeeCode: created.EmployeeCode,
	}, nil
}
