package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blogicum/internal/model"
)

// newTestDB opens a fresh in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Location{},
		&model.Post{},
		&model.Comment{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, slug string, published bool) *model.Category {
	t.Helper()
	category := &model.Category{Title: slug, Slug: slug, IsPublished: published}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createPost(t *testing.T, db *gorm.DB, post *model.Post) *model.Post {
	t.Helper()
	if post.Title == "" {
		post.Title = "untitled"
	}
	if post.Text == "" {
		post.Text = "body"
	}
	if post.PubDate.IsZero() {
		post.PubDate = time.Now().Add(-time.Hour)
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestCategoryRepository_Delete_KeepsPostsWithNullReference(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createUser(t, db, "amontgomery")
	category := createCategory(t, db, "travel-notes", true)
	post := createPost(t, db, &model.Post{
		IsPublished: true,
		AuthorID:    author.ID,
		CategoryID:  &category.ID,
	})

	repo := NewCategoryRepository(db)
	require.NoError(t, repo.Delete(ctx, category.ID))

	_, err := repo.FindByID(ctx, category.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	var reloaded model.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Nil(t, reloaded.CategoryID)
}

func TestLocationRepository_Delete_KeepsPostsWithNullReference(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createUser(t, db, "amontgomery")
	location := &model.Location{Name: "Lisbon", IsPublished: true}
	require.NoError(t, db.Create(location).Error)
	post := createPost(t, db, &model.Post{
		IsPublished: true,
		AuthorID:    author.ID,
		LocationID:  &location.ID,
	})

	repo := NewLocationRepository(db)
	require.NoError(t, repo.Delete(ctx, location.ID))

	_, err := repo.FindByID(ctx, location.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	var reloaded model.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Nil(t, reloaded.LocationID)
}

func TestUserRepository_Delete_LeavesNoOwnedRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	alicePost := createPost(t, db, &model.Post{IsPublished: true, AuthorID: alice.ID})
	bobPost := createPost(t, db, &model.Post{IsPublished: true, AuthorID: bob.ID})

	// Bob comments on Alice's post; Alice comments on Bob's.
	require.NoError(t, db.Create(&model.Comment{Text: "nice", PostID: alicePost.ID, AuthorID: bob.ID}).Error)
	require.NoError(t, db.Create(&model.Comment{Text: "thanks", PostID: bobPost.ID, AuthorID: alice.ID}).Error)

	repo := NewUserRepository(db)
	require.NoError(t, repo.Delete(ctx, alice.ID))

	_, err := repo.FindByID(ctx, alice.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	var count int64
	require.NoError(t, db.Model(&model.Post{}).Where("author_id = ?", alice.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&model.Comment{}).Where("author_id = ?", alice.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Bob's comment went with Alice's post, not with Bob.
	require.NoError(t, db.Model(&model.Comment{}).Where("post_id = ?", alicePost.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Bob and his post are untouched.
	_, err = repo.FindByID(ctx, bob.ID)
	assert.NoError(t, err)
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", bobPost.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCommentRepository_ListByPost_OldestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createUser(t, db, "amontgomery")
	post := createPost(t, db, &model.Post{IsPublished: true, AuthorID: author.ID})

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	// Inserted newest first so the ordering cannot come from insertion order.
	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		require.NoError(t, db.Create(&model.Comment{
			Text:      "at +" + offset.String(),
			PostID:    post.ID,
			AuthorID:  author.ID,
			CreatedAt: base.Add(offset),
		}).Error)
	}

	repo := NewCommentRepository(db)
	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	for i := 1; i < len(comments); i++ {
		assert.True(t, !comments[i].CreatedAt.Before(comments[i-1].CreatedAt),
			"comment %d created before comment %d", i, i-1)
	}
	assert.Equal(t, author.Username, comments[0].Author.Username)
}

func TestCategoryRepository_Update_UnpublishHidesSlug(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	createCategory(t, db, "travel-notes", true)
	repo := NewCategoryRepository(db)

	found, err := repo.FindPublishedBySlug(ctx, "travel-notes")
	require.NoError(t, err)

	found.IsPublished = false
	require.NoError(t, repo.Update(ctx, found))

	_, err = repo.FindPublishedBySlug(ctx, "travel-notes")
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	// The record itself is still there for the unscoped lookup.
	_, err = repo.FindBySlug(ctx, "travel-notes")
	assert.NoError(t, err)
}

func TestPostRepository_DeleteByIDAndAuthor_TakesCommentsAlong(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := createUser(t, db, "owner")
	stranger := createUser(t, db, "stranger")
	post := createPost(t, db, &model.Post{IsPublished: true, AuthorID: owner.ID})
	require.NoError(t, db.Create(&model.Comment{Text: "hi", PostID: post.ID, AuthorID: stranger.ID}).Error)

	repo := NewPostRepository(db)

	// A non-owner removes nothing, comment included.
	deleted, err := repo.DeleteByIDAndAuthor(ctx, post.ID, stranger.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	var count int64
	require.NoError(t, db.Model(&model.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	deleted, err = repo.DeleteByIDAndAuthor(ctx, post.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.NoError(t, db.Model(&model.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPostRepository_ListVisible_AppliesCutoffAndCategoryRule(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	author := createUser(t, db, "amontgomery")
	published := createCategory(t, db, "travel-notes", true)
	hidden := createCategory(t, db, "drafts-desk", false)

	visiblePost := createPost(t, db, &model.Post{
		Title: "in published category", IsPublished: true,
		PubDate: now.Add(-time.Hour), AuthorID: author.ID, CategoryID: &published.ID,
	})
	uncategorized := createPost(t, db, &model.Post{
		Title: "no category", IsPublished: true,
		PubDate: now.Add(-2 * time.Hour), AuthorID: author.ID,
	})
	createPost(t, db, &model.Post{
		Title: "in hidden category", IsPublished: true,
		PubDate: now.Add(-time.Hour), AuthorID: author.ID, CategoryID: &hidden.ID,
	})
	createPost(t, db, &model.Post{
		Title: "scheduled", IsPublished: true,
		PubDate: now.Add(time.Hour), AuthorID: author.ID,
	})
	createPost(t, db, &model.Post{
		Title: "withdrawn", IsPublished: false,
		PubDate: now.Add(-time.Hour), AuthorID: author.ID,
	})

	repo := NewPostRepository(db)

	count, err := repo.CountVisible(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	posts, err := repo.ListVisible(ctx, now, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	// Newest first: the categorized post outranks the older uncategorized one.
	assert.Equal(t, visiblePost.ID, posts[0].ID)
	assert.Equal(t, uncategorized.ID, posts[1].ID)
}
