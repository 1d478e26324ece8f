package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/openblog/blog-api/internal/api/middleware"
	"github.com/openblog/blog-api/internal/core/domain"
)

type stubAdminService struct {
	addFn    func(ctx context.Context, title, body, authorID string) (*domain.Post, error)
	editFn   func(ctx context.Context, id, title, body string) (*domain.Post, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context) ([]domain.Post, error)
}

func (s *stubAdminService) AddPost(ctx context.Context, title, body, authorID string) (*domain.Post, error) {
	return s.addFn(ctx, title, body, authorID)
}

func (s *stubAdminService) EditPost(ctx context.Context, id, title, body string) (*domain.Post, error) {
	return s.editFn(ctx, id, title, body)
}

func (s *stubAdminService) DeletePost(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubAdminService) ListDashboard(ctx context.Context) ([]domain.Post, error) {
	return s.listFn(ctx)
}

func TestAdminHandler_Dashboard(t *testing.T) {
	e := echo.New()
	stub := &stubAdminService{
		listFn: func(ctx context.Context) ([]domain.Post, error) {
			return []domain.Post{{ID: "p2", Title: "Newer"}, {ID: "p1", Title: "Older"}}, nil
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	c, rec := newTestContext(e, http.MethodGet, "/dashboard", "")
	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp postListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Items) != 2 || resp.Items[0].ID != "p2" {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
}

func TestAdminHandler_AddPost(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAdminService{
		addFn: func(ctx context.Context, title, body, authorID string) (*domain.Post, error) {
			if title != "Hello" || body != "World" {
				t.Fatalf("unexpected args: %q %q", title, body)
			}
			if authorID != "user-1" {
				t.Fatalf("expected author from session, got %q", authorID)
			}
			return &domain.Post{ID: "p1", Title: title, Body: body, AuthorID: authorID}, nil
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	c, rec := newTestContext(e, http.MethodPost, "/add-post", `{"title":"Hello","body":"World"}`)
	c.Set(middleware.UserIDKey, "user-1")
	if err := handler.AddPost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestAdminHandler_AddPost_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAdminService{
		addFn: func(ctx context.Context, title, body, authorID string) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	c, rec := newTestContext(e, http.MethodPost, "/add-post", `{"title":"Hello"}`)
	if err := handler.AddPost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminHandler_UpdatePost(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAdminService{
		editFn: func(ctx context.Context, id, title, body string) (*domain.Post, error) {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			return &domain.Post{ID: id, Title: title, Body: body}, nil
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	c, rec := newTestContext(e, http.MethodPut, "/edit-post/p1", `{"title":"New","body":"Text"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := handler.UpdatePost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/edit-post/p1" {
		t.Fatalf("expected redirect back to edit page, got %q", loc)
	}
}

func TestAdminHandler_UpdatePost_NotFound(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAdminService{
		editFn: func(ctx context.Context, id, title, body string) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	c, _ := newTestContext(e, http.MethodPut, "/edit-post/missing", `{"title":"New","body":"Text"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.UpdatePost(c)
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound to propagate, got %v", err)
	}
}

func TestAdminHandler_DeletePost(t *testing.T) {
	e := echo.New()
	stub := &stubAdminService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	handler := NewAdminHandler(stub, &stubPostService{})

	c, rec := newTestContext(e, http.MethodDelete, "/delete-post/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := handler.DeletePost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestAdminHandler_EditPostPage(t *testing.T) {
	e := echo.New()
	reader := &stubPostService{
		getFn: func(ctx context.Context, id string) (*domain.Post, error) {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			return &domain.Post{ID: "p1", Title: "Hello", Body: "World"}, nil
		},
	}
	handler := NewAdminHandler(&stubAdminService{}, reader)

	c, rec := newTestContext(e, http.MethodGet, "/edit-post/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := handler.EditPostPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp postResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "p1" || resp.Title != "Hello" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
