package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/domain"
)

type PostService interface {
	ListPage(ctx context.Context, page int) ([]domain.Post, bool, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	Search(ctx context.Context, term string) ([]domain.Post, error)
}
