package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a blog entry. AuthorID references the User that created it and may
// be empty for posts created before authorship was recorded. Deletion is
// permanent; there is no soft-delete state.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"author_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
