package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openblog/blog-api/internal/api/metrics"
	"github.com/openblog/blog-api/internal/api/middleware"
	"github.com/openblog/blog-api/internal/core/ports"
)

// AdminHandler serves the authenticated dashboard routes. Every route here
// sits behind the auth middleware; the user id it injects becomes the author
// of new posts.
type AdminHandler struct {
	service ports.AdminService
	reader  ports.PostService
}

func NewAdminHandler(service ports.AdminService, reader ports.PostService) *AdminHandler {
	return &AdminHandler{service: service, reader: reader}
}

// Dashboard handles GET /dashboard — every post, newest first, unpaginated.
//
// @Summary      Admin dashboard listing
// @Tags         admin
// @Produce      json
// @Success      200  {object}  postListResponse
// @Failure      401  {object}  errorResponse
// @Router       /dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	posts, err := h.service.ListDashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postListResponse{Items: toPostResponses(posts)})
}

// AddPostPage handles GET /add-post.
func (h *AdminHandler) AddPostPage(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Title: "Add Post", Route: "/add-post"})
}

// AddPost handles POST /add-post.
//
// @Summary      Create a post
// @Tags         admin
// @Accept       json
// @Success      303
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /add-post [post]
func (h *AdminHandler) AddPost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	authorID, _ := c.Get(middleware.UserIDKey).(string)
	if _, err := h.service.AddPost(c.Request().Context(), req.Title, req.Body, authorID); err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// EditPostPage handles GET /edit-post/:id — the current post payload for the
// edit form.
//
// @Summary      Post payload for the edit form
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  errorResponse
// @Router       /edit-post/{id} [get]
func (h *AdminHandler) EditPostPage(c echo.Context) error {
	post, err := h.reader.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(*post))
}

// UpdatePost handles PUT /edit-post/:id.
//
// @Summary      Update a post
// @Tags         admin
// @Accept       json
// @Success      303
// @Failure      404  {object}  errorResponse
// @Router       /edit-post/{id} [put]
func (h *AdminHandler) UpdatePost(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	id := c.Param("id")
	if _, err := h.service.EditPost(c.Request().Context(), id, req.Title, req.Body); err != nil {
		return err
	}

	metrics.PostsUpdatedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/edit-post/"+id)
}

// DeletePost handles DELETE /delete-post/:id. Deletion is permanent.
//
// @Summary      Delete a post
// @Tags         admin
// @Success      303
// @Failure      404  {object}  errorResponse
// @Router       /delete-post/{id} [delete]
func (h *AdminHandler) DeletePost(c echo.Context) error {
	if err := h.service.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.PostsDeletedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}
