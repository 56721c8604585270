package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"blogicum/internal/errors"
	"blogicum/internal/model"
)

func TestPostService_Create(t *testing.T) {
	categoryID := uint(7)
	locationID := uint(3)
	pubDate := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		input         PostInput
		setupMock     func(*MockPostRepository, *MockCategoryRepository, *MockLocationRepository)
		expectedError error
	}{
		{
			name: "successful create with category and location",
			input: PostInput{
				Title:      "Harbour walk",
				Text:       "Out along the breakwater before sunrise.",
				PubDate:    pubDate,
				CategoryID: &categoryID,
				LocationID: &locationID,
			},
			setupMock: func(mPost *MockPostRepository, mCat *MockCategoryRepository, mLoc *MockLocationRepository) {
				mCat.On("FindByID", mock.Anything, categoryID).Return(&model.Category{ID: categoryID}, nil)
				mLoc.On("FindByID", mock.Anything, locationID).Return(&model.Location{ID: locationID}, nil)
				mPost.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)
			},
		},
		{
			name: "successful create without references",
			input: PostInput{
				Title:   "Untethered",
				Text:    "No place, no shelf.",
				PubDate: pubDate,
			},
			setupMock: func(mPost *MockPostRepository, mCat *MockCategoryRepository, mLoc *MockLocationRepository) {
				mPost.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)
			},
		},
		{
			name: "unknown category rejected before any write",
			input: PostInput{
				Title:      "Orphaned",
				Text:       "text",
				PubDate:    pubDate,
				CategoryID: &categoryID,
			},
			setupMock: func(mPost *MockPostRepository, mCat *MockCategoryRepository, mLoc *MockLocationRepository) {
				mCat.On("FindByID", mock.Anything, categoryID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrCategoryNotFound,
		},
		{
			name: "unknown location rejected before any write",
			input: PostInput{
				Title:      "Nowhere",
				Text:       "text",
				PubDate:    pubDate,
				LocationID: &locationID,
			},
			setupMock: func(mPost *MockPostRepository, mCat *MockCategoryRepository, mLoc *MockLocationRepository) {
				mLoc.On("FindByID", mock.Anything, locationID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrLocationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			categoryRepo := new(MockCategoryRepository)
			locationRepo := new(MockLocationRepository)
			tt.setupMock(postRepo, categoryRepo, locationRepo)

			svc := NewPostService(postRepo, categoryRepo, locationRepo)
			post, err := svc.Create(context.Background(), 5, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, post)
				postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(5), post.AuthorID)
				assert.True(t, post.IsPublished)
			}

			postRepo.AssertExpectations(t)
			categoryRepo.AssertExpectations(t)
			locationRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_Update(t *testing.T) {
	pubDate := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	input := PostInput{Title: "Revised", Text: "Edited body.", PubDate: pubDate}

	tests := []struct {
		name          string
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name: "owner edits own post",
			setupMock: func(mPost *MockPostRepository) {
				mPost.On("FindByIDAndAuthor", mock.Anything, uint(1), uint(5)).
					Return(&model.Post{ID: 1, AuthorID: 5, Title: "Original"}, nil)
				mPost.On("Update", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)
			},
		},
		{
			// The owner-scoped lookup makes a foreign post and a missing post
			// report the identical error.
			name: "non-owner masked as not found",
			setupMock: func(mPost *MockPostRepository) {
				mPost.On("FindByIDAndAuthor", mock.Anything, uint(1), uint(5)).
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			tt.setupMock(postRepo)

			svc := NewPostService(postRepo, new(MockCategoryRepository), new(MockLocationRepository))
			post, err := svc.Update(context.Background(), 1, 5, input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, post)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Revised", post.Title)
				assert.Equal(t, pubDate, post.PubDate)
			}

			postRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name: "owner deletes own post",
			setupMock: func(mPost *MockPostRepository) {
				mPost.On("DeleteByIDAndAuthor", mock.Anything, uint(1), uint(5)).Return(int64(1), nil)
			},
		},
		{
			name: "zero rows means absent or foreign",
			setupMock: func(mPost *MockPostRepository) {
				mPost.On("DeleteByIDAndAuthor", mock.Anything, uint(1), uint(5)).Return(int64(0), nil)
			},
			expectedError: errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			tt.setupMock(postRepo)

			svc := NewPostService(postRepo, new(MockCategoryRepository), new(MockLocationRepository))
			err := svc.Delete(context.Background(), 1, 5)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			postRepo.AssertExpectations(t)
		})
	}
}
