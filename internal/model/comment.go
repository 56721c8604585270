package model

import "time"

// Comment belongs to a post and an author; created_at is set once on insert
// and drives the oldest-first ordering on the post detail page.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Relations
	Post   Post `json:"-" gorm:"foreignKey:PostID"`
	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
