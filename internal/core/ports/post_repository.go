package ports

import (
	"context"
	"time"

	"github.com/openblog/blog-api/internal/core/domain"
)

// PostRepository defines the persistence boundary for blog posts. Listings are
// always ordered by creation time, newest first.
type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, id, title, body string, updatedAt time.Time) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, skip, limit int64) ([]domain.Post, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, term string) ([]domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
}
