package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/MohammedIhsaan28/Acquisition/internal/cache"
	apperrors "github.com/MohammedIhsaan28/Acquisition/internal/errors"
	"github.com/MohammedIhsaan28/Acquisition/internal/hash"
	"github.com/MohammedIhsaan28/Acquisition/internal/model"
	"github.com/MohammedIhsaan28/Acquisition/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserUpdate carries the optional fields of a partial user update. Nil fields
// are left untouched.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// UserService exposes user record operations.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, updates UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	hasher *hash.Hasher
	cache  *cache.Client
}

// NewUserService builds a UserService with repository, hasher and cache.
func NewUserService(repo repository.UserRepository, hasher *hash.Hasher, cache *cache.Client) UserService {
	return &userService{repo: repo, hasher: hasher, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// UpdateUser applies a partial update. An email change is checked against the
// existing rows first; the unique index remains the backstop for races.
func (s *userService) UpdateUser(ctx context.Context, id uint, updates UserUpdate) (*model.User, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Email != nil && *updates.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *updates.Email); err == nil {
			return nil, apperrors.ErrEmailExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email uniqueness: %w", err)
		}
		user.Email = *updates.Email
	}
	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Role != nil {
		user.Role = *updates.Role
	}
	if updates.Password != nil {
		passwordHash, err := s.hasher.Hash(*updates.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = passwordHash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// DeleteUser removes a user and returns the deleted row.
func (s *userService) DeleteUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) findUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
