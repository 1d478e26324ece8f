package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/core/ports"
)

// AdminService orchestrates the authenticated write side of the blog. Route
// gating happens in the auth middleware; by the time a call lands here the
// caller has already proven a valid session.
type AdminService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewAdminService(repo ports.PostRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, logger: logger}
}

func (s *AdminService) AddPost(ctx context.Context, title, body, authorID string) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", authorID).Msg("post created")
	return created, nil
}

// EditPost replaces title and body wholesale and refreshes updated_at. Two
// concurrent edits apply last-write-wins; there is no conflict detection.
func (s *AdminService) EditPost(ctx context.Context, id, title, body string) (*domain.Post, error) {
	updated, err := s.repo.Update(ctx, id, title, body, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", id).Msg("post updated")
	return updated, nil
}

func (s *AdminService) DeletePost(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

// ListDashboard returns every post, newest first. The dashboard is not
// paginated; acceptable at current scale.
func (s *AdminService) ListDashboard(ctx context.Context) ([]domain.Post, error) {
	return s.repo.FindAll(ctx)
}
