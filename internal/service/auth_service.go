package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"boxpoint-api/internal/apperror"
	"boxpoint-api/internal/model"
	"boxpoint-api/internal/repository"
	"boxpoint-api/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionReplaced    = errors.New("session expired (logged in on another device)")
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.User, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Manager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	// 1. Find user by email
	user, found, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 2. Verify password
	if !found || !user.CheckPassword(password) {
		return nil, apperror.Unauthorized(ErrInvalidCredentials.Error())
	}

	// 3. Single Session: Generate New Token Version
	newTokenVersion := uuid.New().String()
	if err := s.userRepo.UpdateTokenVersion(ctx, user.ID, newTokenVersion); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	user.TokenVersion = newTokenVersion

	// 4. Generate JWT token with TokenVersion
	token, err := s.tokens.GenerateToken(user.ID, user.Email, newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// ValidateToken checks the signature, then that the user still exists and
// that no newer login replaced this token.
func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*model.User, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, apperror.Unauthorized(err.Error())
	}

	user, found, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !found {
		return nil, apperror.Unauthorized("user not found")
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, apperror.Unauthorized(ErrSessionReplaced.Error())
	}
	return user, nil
}
