package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a published entry in the Quill application.
//
// AuthorID is assigned from the acting user's identity at creation and never
// from request input. PubDate is set once at creation and is immutable.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"not null;index" json:"pub_date"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	// GroupID is nullable: deleting the group clears the reference rather than
	// deleting the post.
	GroupID   *uint     `gorm:"index" json:"group_id,omitempty"`
	Group     *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate stamps the publication date exactly once.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.PubDate.IsZero() {
		p.PubDate = time.Now().UTC()
	}
	return nil
}
