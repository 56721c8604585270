package repository

import (
	"context"

	"gorm.io/gorm"

	"blogicum/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	Update(ctx context.Context, comment *model.Comment) error
	FindByIDAndAuthor(ctx context.Context, id, authorID uint) (*model.Comment, error)
	DeleteByIDAndAuthor(ctx context.Context, id, authorID uint) (int64, error)
	ListByPost(ctx context.Context, postID uint) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment record.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Update updates an existing comment record.
func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// FindByIDAndAuthor finds a comment scoped to its owner.
func (r *commentRepository) FindByIDAndAuthor(ctx context.Context, id, authorID uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteByIDAndAuthor deletes a comment scoped to its owner and returns the
// number of rows removed.
func (r *commentRepository) DeleteByIDAndAuthor(ctx context.Context, id, authorID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).Delete(&model.Comment{})
	return res.RowsAffected, res.Error
}

// ListByPost lists a post's comments oldest first with authors preloaded.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
