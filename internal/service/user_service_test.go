package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"blogicum/internal/errors"
	"blogicum/internal/model"
)

func TestUserService_Get(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5, Username: "amontgomery"}, nil)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo)

	user, err := svc.Get(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "amontgomery", user.Username)

	user, err = svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_UpdateProfile(t *testing.T) {
	current := func() *model.User {
		return &model.User{ID: 5, Username: "amontgomery", Email: "a.montgomery@example.com"}
	}

	tests := []struct {
		name          string
		input         ProfileInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "rename to a free username",
			input: ProfileInput{Username: "alexm", Email: "a.montgomery@example.com", FirstName: "Alex"},
			setupMock: func(mockRepo *MockUserRepository) {
				mockRepo.On("FindByID", mock.Anything, uint(5)).Return(current(), nil)
				mockRepo.On("FindByUsername", mock.Anything, "alexm").Return(nil, gorm.ErrRecordNotFound)
				mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			// Keeping the current username and email skips both uniqueness
			// lookups entirely.
			name:  "unchanged identity fields skip uniqueness checks",
			input: ProfileInput{Username: "amontgomery", Email: "a.montgomery@example.com", LastName: "Montgomery"},
			setupMock: func(mockRepo *MockUserRepository) {
				mockRepo.On("FindByID", mock.Anything, uint(5)).Return(current(), nil)
				mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:  "username held by someone else",
			input: ProfileInput{Username: "taken", Email: "a.montgomery@example.com"},
			setupMock: func(mockRepo *MockUserRepository) {
				mockRepo.On("FindByID", mock.Anything, uint(5)).Return(current(), nil)
				mockRepo.On("FindByUsername", mock.Anything, "taken").
					Return(&model.User{ID: 8, Username: "taken"}, nil)
			},
			expectedError: errors.ErrUsernameTaken,
		},
		{
			name:  "email held by someone else",
			input: ProfileInput{Username: "amontgomery", Email: "other@example.com"},
			setupMock: func(mockRepo *MockUserRepository) {
				mockRepo.On("FindByID", mock.Anything, uint(5)).Return(current(), nil)
				mockRepo.On("FindByEmail", mock.Anything, "other@example.com").
					Return(&model.User{ID: 8, Email: "other@example.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name:  "missing user",
			input: ProfileInput{Username: "amontgomery", Email: "a.montgomery@example.com"},
			setupMock: func(mockRepo *MockUserRepository) {
				mockRepo.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.UpdateProfile(context.Background(), 5, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Username, user.Username)
				assert.Equal(t, tt.input.Email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5}, nil)
	mockRepo.On("Delete", mock.Anything, uint(5)).Return(nil)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo)

	assert.NoError(t, svc.Delete(context.Background(), 5))
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), errors.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}
