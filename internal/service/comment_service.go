package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"blogicum/internal/errors"
	"blogicum/internal/model"
	"blogicum/internal/repository"
)

// CommentService gates comment mutations with the same owner-scoped masking
// as posts. Adding a comment requires only that the target post exists; no
// visibility filter applies there.
type CommentService interface {
	Add(ctx context.Context, postID, authorID uint, text string) (*model.Comment, error)
	Update(ctx context.Context, postID, id, authorID uint, text string) (*model.Comment, error)
	Delete(ctx context.Context, postID, id, authorID uint) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Add attaches a new comment by the acting user to an existing post.
func (s *commentService) Add(ctx context.Context, postID, authorID uint, text string) (*model.Comment, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post %d: %w", postID, err)
	}

	comment := &model.Comment{
		Text:     text,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// Update edits a comment the acting user owns. The comment must belong to
// the post named in the route, otherwise it is treated as absent.
func (s *commentService) Update(ctx context.Context, postID, id, authorID uint, text string) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByIDAndAuthor(ctx, id, authorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment %d: %w", id, err)
	}
	if comment.PostID != postID {
		return nil, errors.ErrCommentNotFound
	}

	comment.Text = text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment %d: %w", id, err)
	}
	return comment, nil
}

// Delete removes a comment the acting user owns.
func (s *commentService) Delete(ctx context.Context, postID, id, authorID uint) error {
	comment, err := s.commentRepo.FindByIDAndAuthor(ctx, id, authorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCommentNotFound
		}
		return fmt.Errorf("find comment %d: %w", id, err)
	}
	if comment.PostID != postID {
		return errors.ErrCommentNotFound
	}

	deleted, err := s.commentRepo.DeleteByIDAndAuthor(ctx, id, authorID)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	if deleted == 0 {
		return errors.ErrCommentNotFound
	}
	return nil
}
