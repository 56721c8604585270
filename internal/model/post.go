package model

import "time"

// Post represents a blog publication. A pub_date in the future keeps the
// post hidden until that instant passes (scheduled publication).
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:256;not null"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	PubDate     time.Time `json:"pub_date" gorm:"not null;index"`
	IsPublished bool      `json:"is_published" gorm:"default:true;index"`
	ImageURL    string    `json:"image_url,omitempty" gorm:"size:512"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	CategoryID  *uint     `json:"category_id" gorm:"index"`
	LocationID  *uint     `json:"location_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Author   User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
