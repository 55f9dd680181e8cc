// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an author identity in the Quill application. Accounts are
// provisioned by the external identity provider; this row only mirrors the
// identity referenced by posts, comments, and follow edges.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Bio       string    `json:"bio,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}
