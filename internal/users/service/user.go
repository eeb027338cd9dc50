package service

import (
	"context"
	"errors"

	userserrors "resortly/internal/users/errors"
	"resortly/internal/users/repository"
	"resortly/internal/users/validator"
	"resortly/pkg/config"
	apperrors "resortly/pkg/errors"
	"resortly/pkg/model"
	"resortly/pkg/sanitizer"
)

type UserService interface {
	Register(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetAll(ctx context.Context) ([]*model.User, error)
	UpdateRole(ctx context.Context, update *model.UserRoleUpdate) error
	UpdateInfo(ctx context.Context, update *model.UserInfoUpdate) error
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.UserValidator
	cfg       *config.Config
}

func NewUserService(repo repository.UserRepository, v *validator.UserValidator, cfg *config.Config) UserService {
	return &userService{repo: repo, validator: v, cfg: cfg}
}

// Register creates a user with a unique email. The admin flag always
// starts false regardless of the payload.
func (s *userService) Register(ctx context.Context, user *model.User) error {
	user.Name = sanitizer.SanitizeText(user.Name)
	user.IsAdmin = false

	if err := s.validator.Validate(user); err != nil {
		s.cfg.Log.Warn("User validation failed", "error", err)
		return apperrors.Validation("Invalid user payload", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userserrors.ErrDuplicateEmail) {
			return apperrors.Conflict("User with this email already exists")
		}
		s.cfg.Log.Error("Failed to create user", "email", user.Email, "error", err)
		return apperrors.Internal("Failed to create user", err)
	}

	s.cfg.Log.Info("User registered", "email", user.Email)
	return nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("email query parameter is required")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.Internal("Failed to retrieve user", err)
	}

	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list users", "error", err)
		return nil, apperrors.Internal("Failed to retrieve users", err)
	}
	return users, nil
}

func (s *userService) UpdateRole(ctx context.Context, update *model.UserRoleUpdate) error {
	if err := s.validator.ValidateRoleUpdate(update); err != nil {
		s.cfg.Log.Warn("Role update validation failed", "error", err)
		return apperrors.Validation("Invalid role update payload", map[string]any{"error": err.Error()})
	}

	if err := s.repo.SetAdmin(ctx, update.Email, *update.IsAdmin); err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return apperrors.NotFound("User")
		}
		s.cfg.Log.Error("Failed to update user role", "email", update.Email, "error", err)
		return apperrors.Internal("Failed to update user role", err)
	}

	s.cfg.Log.Info("User role updated", "email", update.Email, "is_admin", *update.IsAdmin)
	return nil
}

func (s *userService) UpdateInfo(ctx context.Context, update *model.UserInfoUpdate) error {
	if err := s.validator.ValidateInfoUpdate(update); err != nil {
		s.cfg.Log.Warn("Info update validation failed", "error", err)
		return apperrors.Validation("Invalid info update payload", map[string]any{"error": err.Error()})
	}

	if err := s.repo.UpdateInfo(ctx, update); err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return apperrors.NotFound("User")
		}
		s.cfg.Log.Error("Failed to update user info", "email", update.Email, "error", err)
		return apperrors.Internal("Failed to update user info", err)
	}

	s.cfg.Log.Info("User info updated", "email", update.Email)
	return nil
}
