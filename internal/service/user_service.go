package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"blogicum/internal/errors"
	"blogicum/internal/model"
	"blogicum/internal/repository"
)

// ProfileInput carries the editable fields of a user's own profile.
type ProfileInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// UserService reads and edits user records. Edits always act on the acting
// user's own record; no cross-user edit exists. Delete cascades to the
// user's posts and comments and exists for platform use only.
type UserService interface {
	Get(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, input ProfileInput) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Get returns a user by id.
func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

// UpdateProfile edits the acting user's own record, keeping username and
// email unique across users.
func (s *userService) UpdateProfile(ctx context.Context, id uint, input ProfileInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}

	if input.Username != user.Username {
		existing, err := s.userRepo.FindByUsername(ctx, input.Username)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if existing != nil {
			return nil, errors.ErrUsernameTaken
		}
	}
	if input.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, input.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if existing != nil {
			return nil, errors.ErrEmailTaken
		}
	}

	user.Username = input.Username
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

// Delete removes a user and everything they own in one transaction.
func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find user %d: %w", id, err)
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
