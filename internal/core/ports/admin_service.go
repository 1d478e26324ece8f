package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/domain"
)

type AdminService interface {
	AddPost(ctx context.Context, title, body, authorID string) (*domain.Post, error)
	EditPost(ctx context.Context, id, title, body string) (*domain.Post, error)
	DeletePost(ctx context.Context, id string) error
	ListDashboard(ctx context.Context) ([]domain.Post, error)
}
