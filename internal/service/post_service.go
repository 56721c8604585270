package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"blogicum/internal/errors"
	"blogicum/internal/model"
	"blogicum/internal/repository"
)

// PostInput carries the editable fields of a post. The author is never part
// of the input: it is forced to the acting identity by the service.
type PostInput struct {
	Title      string
	Text       string
	PubDate    time.Time
	CategoryID *uint
	LocationID *uint
	ImageURL   string
}

// PostService gates post mutations. Edit and delete resolve the post scoped
// to the acting author, so a non-owner gets the same not-found outcome as a
// request for a nonexistent id.
type PostService interface {
	Create(ctx context.Context, authorID uint, input PostInput) (*model.Post, error)
	Update(ctx context.Context, id, authorID uint, input PostInput) (*model.Post, error)
	Delete(ctx context.Context, id, authorID uint) error
}

type postService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
}

// NewPostService creates a new post service.
func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
) PostService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// checkReferences verifies that the category and location referenced by the
// input exist before any write happens.
func (s *postService) checkReferences(ctx context.Context, input PostInput) error {
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrCategoryNotFound
			}
			return fmt.Errorf("find category: %w", err)
		}
	}
	if input.LocationID != nil {
		if _, err := s.locationRepo.FindByID(ctx, *input.LocationID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrLocationNotFound
			}
			return fmt.Errorf("find location: %w", err)
		}
	}
	return nil
}

// Create persists a new post owned by the acting user.
func (s *postService) Create(ctx context.Context, authorID uint, input PostInput) (*model.Post, error) {
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:       input.Title,
		Text:        input.Text,
		PubDate:     input.PubDate,
		IsPublished: true,
		ImageURL:    input.ImageURL,
		AuthorID:    authorID,
		CategoryID:  input.CategoryID,
		LocationID:  input.LocationID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Update edits a post the acting user owns.
func (s *postService) Update(ctx context.Context, id, authorID uint, input PostInput) (*model.Post, error) {
	post, err := s.postRepo.FindByIDAndAuthor(ctx, id, authorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}

	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Text = input.Text
	post.PubDate = input.PubDate
	post.ImageURL = input.ImageURL
	post.CategoryID = input.CategoryID
	post.LocationID = input.LocationID

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	return post, nil
}

// Delete removes a post the acting user owns, comments included.
func (s *postService) Delete(ctx context.Context, id, authorID uint) error {
	deleted, err := s.postRepo.DeleteByIDAndAuthor(ctx, id, authorID)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if deleted == 0 {
		return errors.ErrPostNotFound
	}
	return nil
}
