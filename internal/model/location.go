package model

import "time"

// Location is an optional geographic attribute of a post.
type Location struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:256;not null"`
	IsPublished bool      `json:"is_published" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
}
