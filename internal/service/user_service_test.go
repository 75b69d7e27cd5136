package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MohammedIhsaan28/Acquisition/internal/cache"
	apperrors "github.com/MohammedIhsaan28/Acquisition/internal/errors"
	"github.com/MohammedIhsaan28/Acquisition/internal/hash"
	"github.com/MohammedIhsaan28/Acquisition/internal/model"
)

// noCache is a nil client; the cache is fail-safe and behaves as a constant miss.
var noCache *cache.Client

func strPtr(s string) *string { return &s }

func TestUserService_GetUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, hash.New(bcrypt.MinCost), noCache)

	user, err := svc.GetUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = svc.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		updates       UserUpdate
		setupMock     func(*MockUserRepository)
		expectedError error
		check         func(*testing.T, *model.User)
	}{
		{
			name:    "rename",
			id:      1,
			updates: UserUpdate{Name: strPtr("New Name")},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Name: "Old", Email: "a@x.com"}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, "New Name", u.Name)
				assert.Equal(t, "a@x.com", u.Email)
			},
		},
		{
			name:    "email change to taken address",
			id:      1,
			updates: UserUpdate{Email: strPtr("taken@x.com")},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
				m.On("FindByEmail", mock.Anything, "taken@x.com").Return(&model.User{ID: 2, Email: "taken@x.com"}, nil)
			},
			expectedError: apperrors.ErrEmailExists,
		},
		{
			name:    "email change to free address",
			id:      1,
			updates: UserUpdate{Email: strPtr("free@x.com")},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
				m.On("FindByEmail", mock.Anything, "free@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, "free@x.com", u.Email)
			},
		},
		{
			name:    "password change is re-hashed",
			id:      1,
			updates: UserUpdate{Password: strPtr("newsecret")},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "a@x.com", PasswordHash: "old-hash"}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.NotEqual(t, "old-hash", u.PasswordHash)
				assert.NotEqual(t, "newsecret", u.PasswordHash)
			},
		},
		{
			name:    "race on email caught by unique index",
			id:      1,
			updates: UserUpdate{Email: strPtr("raced@x.com")},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
				m.On("FindByEmail", mock.Anything, "raced@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrEmailExists,
		},
		{
			name:    "not found",
			id:      99,
			updates: UserUpdate{Name: strPtr("whatever")},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, hash.New(bcrypt.MinCost), noCache)
			user, err := svc.UpdateUser(context.Background(), tt.id, tt.updates)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, user)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
	mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, hash.New(bcrypt.MinCost), noCache)

	deleted, err := svc.DeleteUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", deleted.Email)

	_, err = svc.DeleteUser(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	mockRepo.AssertExpectations(t)
}
