package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	ValidateToken(token string) (string, error)
}

// TokenValidator is the slice of AuthService the auth middleware depends on.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}
