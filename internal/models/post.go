package models

import "time"

// DefaultImageName is assigned to every post until an image is uploaded.
const DefaultImageName = "default.png"

// Post represents a blog post written by a User under a Category.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:100;not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	ImageName  string    `gorm:"size:255" json:"image_name"`
	Date       time.Time `json:"date"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   Category  `gorm:"foreignKey:CategoryID" json:"category"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	// Comments are only loaded when a single post is fetched.
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
