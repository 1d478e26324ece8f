package service

import (
	"context"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/core/ports"
)

const pageSize = 10

// searchSanitizer strips everything outside [A-Za-z0-9 ] so that user input
// can never smuggle pattern-matching metacharacters into the store query.
var searchSanitizer = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

// PostService serves the public read side: paginated listing, single-post
// fetch, and keyword search.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// ListPage returns one page of posts, newest first, and whether a further page
// exists. Non-positive page numbers are clamped to the first page.
func (s *PostService) ListPage(ctx context.Context, page int) ([]domain.Post, bool, error) {
	if page < 1 {
		page = 1
	}
	skip := int64(pageSize * (page - 1))

	items, err := s.repo.List(ctx, skip, pageSize)
	if err != nil {
		s.logger.Error().Err(err).Int("page", page).Msg("failed to list posts")
		return nil, false, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, false, err
	}

	return items, count > skip+pageSize, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Search returns all posts whose title or body contains the sanitized term,
// case-insensitively. An empty sanitized term matches every post; that is the
// defined behavior, not an accident.
func (s *PostService) Search(ctx context.Context, term string) ([]domain.Post, error) {
	clean := searchSanitizer.ReplaceAllString(term, "")

	posts, err := s.repo.Search(ctx, clean)
	if err != nil {
		s.logger.Error().Err(err).Str("term", clean).Msg("search failed")
		return nil, err
	}
	return posts, nil
}
