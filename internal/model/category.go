package model

import "time"

// Category groups posts under a unique slug used as the external identifier.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:256;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:64;not null"`
	IsPublished bool      `json:"is_published" gorm:"default:true;index"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}
