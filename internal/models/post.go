package models

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a blog post authored by a user.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Published bool      `json:"published" db:"published"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreatePostRequest is the payload for POST /api/posts. Published defaults
// to false when omitted.
type CreatePostRequest struct {
	Title     string `json:"title" binding:"required,min=3,max=100"`
	Content   string `json:"content" binding:"required,min=10"`
	Published *bool  `json:"published"`
}

// UpdatePostRequest is the payload for PUT /api/posts/:id. Length bounds
// apply only to fields that are present.
type UpdatePostRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=3,max=100"`
	Content   *string `json:"content" binding:"omitempty,min=10"`
	Published *bool   `json:"published"`
}
