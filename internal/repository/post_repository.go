package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"blogicum/internal/model"
)

// PostRepository defines post persistence operations. Listing methods that
// take now apply the public visibility rule: published, pub_date reached,
// and category either absent or itself published.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	FindByIDAndAuthor(ctx context.Context, id, authorID uint) (*model.Post, error)
	DeleteByIDAndAuthor(ctx context.Context, id, authorID uint) (int64, error)
	ListVisible(ctx context.Context, now time.Time, offset, limit int) ([]model.Post, error)
	CountVisible(ctx context.Context, now time.Time) (int64, error)
	ListVisibleByCategory(ctx context.Context, categoryID uint, now time.Time, offset, limit int) ([]model.Post, error)
	CountVisibleByCategory(ctx context.Context, categoryID uint, now time.Time) (int64, error)
	ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]model.Post, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	ListVisibleByAuthor(ctx context.Context, authorID uint, now time.Time, offset, limit int) ([]model.Post, error)
	CountVisibleByAuthor(ctx context.Context, authorID uint, now time.Time) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// visible scopes a query to publicly visible posts at the given instant.
// A LEFT JOIN keeps posts without a category: a null category never blocks
// visibility, only an unpublished one does.
func visible(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = ? AND posts.pub_date <= ?", true, now).
			Where("posts.category_id IS NULL OR categories.is_published = ?", true)
	}
}

// Create creates a new post record.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Update updates an existing post record.
func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// FindByID finds a post by ID with its category preloaded.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("Location").Preload("Author").
		Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByIDAndAuthor finds a post scoped to its owner. A non-owner gets the
// same ErrRecordNotFound as a nonexistent id.
func (r *postRepository) FindByIDAndAuthor(ctx context.Context, id, authorID uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteByIDAndAuthor deletes a post scoped to its owner and returns the
// number of rows removed. Comments go with the post in the same transaction.
func (r *postRepository) DeleteByIDAndAuthor(ctx context.Context, id, authorID uint) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND author_id = ?", id, authorID).Delete(&model.Post{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		if deleted == 0 {
			return nil
		}
		return tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error
	})
	return deleted, err
}

// ListVisible lists visible posts across all categories, newest first.
func (r *postRepository) ListVisible(ctx context.Context, now time.Time, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).Scopes(visible(now)).
		Preload("Category").Preload("Location").Preload("Author").
		Order("posts.pub_date DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// CountVisible counts visible posts across all categories.
func (r *postRepository) CountVisible(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Scopes(visible(now)).Count(&count).Error
	return count, err
}

// ListVisibleByCategory lists visible posts within one category, newest first.
func (r *postRepository) ListVisibleByCategory(ctx context.Context, categoryID uint, now time.Time, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).Scopes(visible(now)).
		Where("posts.category_id = ?", categoryID).
		Preload("Category").Preload("Location").Preload("Author").
		Order("posts.pub_date DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// CountVisibleByCategory counts visible posts within one category.
func (r *postRepository) CountVisibleByCategory(ctx context.Context, categoryID uint, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Scopes(visible(now)).
		Where("posts.category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// ListByAuthor lists all of an author's posts without any visibility filter,
// newest first. Used for the owner's view of their own profile.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Preload("Category").Preload("Location").
		Order("pub_date DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// CountByAuthor counts all of an author's posts.
func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// ListVisibleByAuthor lists an author's visible posts, newest first.
func (r *postRepository) ListVisibleByAuthor(ctx context.Context, authorID uint, now time.Time, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).Scopes(visible(now)).
		Where("posts.author_id = ?", authorID).
		Preload("Category").Preload("Location").
		Order("posts.pub_date DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// CountVisibleByAuthor counts an author's visible posts.
func (r *postRepository) CountVisibleByAuthor(ctx context.Context, authorID uint, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Scopes(visible(now)).
		Where("posts.author_id = ?", authorID).Count(&count).Error
	return count, err
}
