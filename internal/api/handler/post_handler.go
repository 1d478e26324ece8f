package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openblog/blog-api/internal/api/metrics"
	"github.com/openblog/blog-api/internal/core/ports"
)

// PostHandler serves the public read side of the blog.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Home handles GET /?page=N — the paginated public listing.
//
// @Summary      Paginated post listing
// @Tags         posts
// @Produce      json
// @Param        page  query     int  false  "Page number, defaults to 1"
// @Success      200   {object}  postListResponse
// @Router       / [get]
func (h *PostHandler) Home(c echo.Context) error {
	page := parsePage(c.QueryParam("page"))

	items, hasNext, err := h.service.ListPage(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postListResponse{
		Items:       toPostResponses(items),
		Page:        page,
		HasNextPage: hasNext,
	})
}

// GetByID handles GET /post/:id.
//
// @Summary      Single post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  errorResponse
// @Router       /post/{id} [get]
func (h *PostHandler) GetByID(c echo.Context) error {
	post, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(*post))
}

// Search handles POST /search. The term is sanitized down to [A-Za-z0-9 ]
// before matching; an empty sanitized term matches every post.
//
// @Summary      Keyword search over title and body
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      searchRequest  true  "Search term"
// @Success      200   {object}  postListResponse
// @Router       /search [post]
func (h *PostHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	posts, err := h.service.Search(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return err
	}

	metrics.SearchesTotal.Inc()
	return c.JSON(http.StatusOK, postListResponse{Items: toPostResponses(posts)})
}

// About handles GET /about.
//
// @Summary      About page
// @Tags         posts
// @Produce      json
// @Success      200  {object}  pageResponse
// @Router       /about [get]
func (h *PostHandler) About(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{
		Title:       "About",
		Description: "A simple blog.",
		Route:       "/about",
	})
}

// parsePage clamps the page query parameter to a positive integer; anything
// unparsable falls back to the first page rather than reaching the store.
func parsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
