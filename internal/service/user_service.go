package service

import (
	"context"
	"errors"
	"fmt"

	"boxpoint-api/internal/apperror"
	"boxpoint-api/internal/model"
	"boxpoint-api/internal/repository"
	"boxpoint-api/pkg/validator"
)

type UserService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, req *UpdateUserRequest, userID uint) (*model.User, error)
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	DeleteUser(ctx context.Context, userID uint) error
	ConvertUserToDto(user *model.User) model.UserResponse
}

type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"notblank"`
	LastName  string `json:"last_name" validate:"notblank"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"notblank"`
	LastName  string `json:"last_name" validate:"notblank"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	// 1. Validate request
	if msg := validator.FirstError(req); msg != "" {
		return nil, apperror.Invalid("%s", msg)
	}

	// 2. Check if email already exists
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, apperror.AlreadyExists("Oops! " + req.Email + " already exists!")
	}

	// 3. Create user
	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	// 4. Save to database
	if err := s.userRepo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, apperror.AlreadyExists("Oops! " + req.Email + " already exists!")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, req *UpdateUserRequest, userID uint) (*model.User, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, apperror.Invalid("%s", msg)
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", userID, err)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	user, found, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}
	if !found {
		return nil, apperror.NotFound("User not found!")
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID uint) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}
	return nil
}

func (s *userService) ConvertUserToDto(user *model.User) model.UserResponse {
	return user.ToResponse()
}
