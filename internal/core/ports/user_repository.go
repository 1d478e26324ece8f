package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/domain"
)

// UserRepository defines the persistence boundary for administrator accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
