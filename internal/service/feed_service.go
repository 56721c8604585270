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

// PostPage is one page of the index listing.
type PostPage struct {
	Posts      []model.Post `json:"posts"`
	Pagination Pagination   `json:"pagination"`
}

// CategoryPage is one page of a category listing.
type CategoryPage struct {
	Category   *model.Category `json:"category"`
	Posts      []model.Post    `json:"posts"`
	Pagination Pagination      `json:"pagination"`
}

// ProfilePage is one page of an author's profile listing.
type ProfilePage struct {
	Profile    *model.User  `json:"profile"`
	Posts      []model.Post `json:"posts"`
	Pagination Pagination   `json:"pagination"`
}

// PostDetail is a single post with its rendered body and comments.
type PostDetail struct {
	Post     *model.Post     `json:"post"`
	HTML     string          `json:"html"`
	Comments []model.Comment `json:"comments"`
}

// FeedService builds the read-side listings. Every operation takes the
// viewing instant explicitly so scheduled posts flip visible exactly when
// their pub_date passes, with no caching in between.
type FeedService interface {
	ListIndex(ctx context.Context, now time.Time, page int) (*PostPage, error)
	ListByCategory(ctx context.Context, slug string, now time.Time, page int) (*CategoryPage, error)
	ListByAuthor(ctx context.Context, username string, viewerID uint, now time.Time, page int) (*ProfilePage, error)
	GetPostDetail(ctx context.Context, id uint, now time.Time) (*PostDetail, error)
}

type feedService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	commentRepo  repository.CommentRepository
	userRepo     repository.UserRepository
	pageSize     int
}

// NewFeedService creates a new feed service. A non-positive pageSize falls
// back to DefaultPageSize.
func NewFeedService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	pageSize int,
) FeedService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &feedService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		pageSize:     pageSize,
	}
}

// ListIndex returns one page of all publicly visible posts, newest first.
func (s *feedService) ListIndex(ctx context.Context, now time.Time, page int) (*PostPage, error) {
	total, err := s.postRepo.CountVisible(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("count visible posts: %w", err)
	}

	pagination, offset := paginate(page, s.pageSize, total)
	posts, err := s.postRepo.ListVisible(ctx, now, offset, pagination.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list visible posts: %w", err)
	}

	return &PostPage{Posts: posts, Pagination: pagination}, nil
}

// ListByCategory returns one page of a visible category's visible posts. An
// absent or unpublished category reports the same not-found outcome, as does
// a slug that could never name a stored category.
func (s *feedService) ListByCategory(ctx context.Context, slug string, now time.Time, page int) (*CategoryPage, error) {
	if !model.IsValidSlug(slug) {
		return nil, errors.ErrCategoryNotFound
	}

	category, err := s.categoryRepo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category %q: %w", slug, err)
	}

	total, err := s.postRepo.CountVisibleByCategory(ctx, category.ID, now)
	if err != nil {
		return nil, fmt.Errorf("count category posts: %w", err)
	}

	pagination, offset := paginate(page, s.pageSize, total)
	posts, err := s.postRepo.ListVisibleByCategory(ctx, category.ID, now, offset, pagination.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list category posts: %w", err)
	}

	return &CategoryPage{Category: category, Posts: posts, Pagination: pagination}, nil
}

// ListByAuthor returns one page of an author's posts. The owner viewing
// their own profile sees every post, drafts and scheduled ones included;
// everyone else gets the public visibility filter.
func (s *feedService) ListByAuthor(ctx context.Context, username string, viewerID uint, now time.Time, page int) (*ProfilePage, error) {
	profile, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}

	var (
		total int64
		posts []model.Post
	)

	if viewerID == profile.ID {
		total, err = s.postRepo.CountByAuthor(ctx, profile.ID)
		if err != nil {
			return nil, fmt.Errorf("count author posts: %w", err)
		}
		pagination, offset := paginate(page, s.pageSize, total)
		posts, err = s.postRepo.ListByAuthor(ctx, profile.ID, offset, pagination.PageSize)
		if err != nil {
			return nil, fmt.Errorf("list author posts: %w", err)
		}
		return &ProfilePage{Profile: profile, Posts: posts, Pagination: pagination}, nil
	}

	total, err = s.postRepo.CountVisibleByAuthor(ctx, profile.ID, now)
	if err != nil {
		return nil, fmt.Errorf("count author posts: %w", err)
	}
	pagination, offset := paginate(page, s.pageSize, total)
	posts, err = s.postRepo.ListVisibleByAuthor(ctx, profile.ID, now, offset, pagination.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list author posts: %w", err)
	}
	return &ProfilePage{Profile: profile, Posts: posts, Pagination: pagination}, nil
}

// GetPostDetail returns a post with comments oldest first. Detail access is
// gated by visibility for everyone, the author included; a hidden post is
// indistinguishable from an absent one.
func (s *feedService) GetPostDetail(ctx context.Context, id uint, now time.Time) (*PostDetail, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}

	if !IsPostVisible(post, now) {
		return nil, errors.ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &PostDetail{
		Post:     post,
		HTML:     RenderPostBody(post.Text),
		Comments: comments,
	}, nil
}
