package service

import (
	"time"

	"blogicum/internal/model"
)

// IsPostVisible reports whether a post is publicly visible at the given
// instant: published, pub_date reached, and its category (when set) also
// published. A post without a category is not blocked by the category rule.
// The post's Category relation must be loaded when CategoryID is set.
func IsPostVisible(post *model.Post, now time.Time) bool {
	if !post.IsPublished || post.PubDate.After(now) {
		return false
	}
	if post.CategoryID == nil {
		return true
	}
	return post.Category != nil && post.Category.IsPublished
}

// IsCategoryVisible reports whether a category is publicly visible.
func IsCategoryVisible(category *model.Category) bool {
	return category.IsPublished
}
