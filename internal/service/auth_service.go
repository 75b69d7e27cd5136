package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/MohammedIhsaan28/Acquisition/internal/errors"
	"github.com/MohammedIhsaan28/Acquisition/internal/hash"
	"github.com/MohammedIhsaan28/Acquisition/internal/model"
	"github.com/MohammedIhsaan28/Acquisition/internal/repository"
)

// AuthService handles registration and credential verification. Token
// issuance and cookie handling stay in the handler layer so credential logic
// remains separable from transport.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   *hash.Hasher
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher *hash.Hasher) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Register creates a new user with a hashed password. Role defaults to "user"
// when empty. The up-front email check is an optimization; the unique index on
// email remains the guarantee against concurrent duplicate signups.
func (s *authService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies a user's credentials. A missing row and a failed
// password comparison stay distinct error kinds; the stored hash never leaves
// this layer.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	ok, err := s.hasher.Compare(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidPassword
	}

	return user, nil
}
