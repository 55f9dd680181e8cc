package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post in the Quill application.
// AuthorID and PostID are system-assigned, never taken from request input.
// Comments are deleted together with their parent post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Created   time.Time `gorm:"not null;index" json:"created"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      *Post     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate stamps the creation time exactly once.
func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.Created.IsZero() {
		c.Created = time.Now().UTC()
	}
	return nil
}
