package handler

import (
	"time"

	"github.com/openblog/blog-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createPostRequest struct {
	Title string `json:"title" form:"title" validate:"required"`
	Body  string `json:"body"  form:"body"  validate:"required"`
}

type updatePostRequest struct {
	Title string `json:"title" form:"title" validate:"required"`
	Body  string `json:"body"  form:"body"  validate:"required"`
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm" form:"searchTerm"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"author_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type postListResponse struct {
	Items       []postResponse `json:"items"`
	Page        int            `json:"page,omitempty"`
	HasNextPage bool           `json:"has_next_page"`
}

func toPostResponse(p domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPostResponses(posts []domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
