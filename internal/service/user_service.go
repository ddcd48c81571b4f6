package service

import (
	"context"
	"strings"
	"time"

	"nhaf/internal/models"
	"nhaf/internal/repository"
	"nhaf/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService manages staff accounts.
type UserService struct {
	userRepo repository.UserRepository
}

// CreateStaffInput describes a new staff account.
type CreateStaffInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// FindByLogin resolves a username or email. It returns nil when neither matches.
func (s *UserService) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	login = strings.TrimSpace(login)
	if strings.Contains(login, "@") {
		return s.userRepo.GetByEmail(ctx, strings.ToLower(login))
	}
	return s.userRepo.GetByUsername(ctx, login)
}

// CreateStaff creates a staff account with a hashed password.
func (s *UserService) CreateStaff(ctx context.Context, in CreateStaffInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Username already taken")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		IsAdmin:  in.IsAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin makes sure an admin account matching in.Email or in.Username
// exists. An existing account is promoted; its credentials are replaced only
// when resetCredentials is set.
func (s *UserService) EnsureAdmin(ctx context.Context, in CreateStaffInput, resetCredentials bool) (*models.User, bool, error) {
	in.IsAdmin = true
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, false, err
	}
	if user == nil {
		if user, err = s.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username)); err != nil {
			return nil, false, err
		}
	}
	if user == nil {
		created, err := s.CreateStaff(ctx, in)
		return created, created != nil, err
	}

	user.IsAdmin = true
	if resetCredentials {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, false, models.NewValidationError(err.Error())
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, false, models.NewInternalError(err)
		}
		user.Username = strings.TrimSpace(in.Username)
		user.Email = strings.ToLower(strings.TrimSpace(in.Email))
		user.Password = string(hash)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, false, err
	}
	return user, false, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)) != nil {
		return models.NewUnauthorizedError("Current password is incorrect")
	}
	if err := validation.ValidatePassword(next); err != nil {
		return models.NewValidationError(err.Error())
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = string(hash)
	return s.userRepo.Update(ctx, user)
}

// SetAdmin grants or revokes admin rights. The last admin cannot be demoted.
func (s *UserService) SetAdmin(ctx context.Context, targetID uint, isAdmin bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin == isAdmin {
		return user, nil
	}
	if !isAdmin {
		if err := s.keepOneAdmin(ctx); err != nil {
			return nil, err
		}
	}

	user.IsAdmin = isAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a staff account. The last admin cannot be removed.
func (s *UserService) DeleteUser(ctx context.Context, targetID uint) error {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		if err := s.keepOneAdmin(ctx); err != nil {
			return err
		}
	}
	return s.userRepo.Delete(ctx, targetID)
}

func (s *UserService) keepOneAdmin(ctx context.Context) error {
	admins, err := s.userRepo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return models.NewConflictError("At least one admin account must remain")
	}
	return nil
}

// RecordLogin stamps the account's last successful sign-in.
func (s *UserService) RecordLogin(ctx context.Context, user *models.User, at time.Time) error {
	user.LastLogin = &at
	return s.userRepo.Update(ctx, user)
}
