package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openblog/blog-api/internal/api/metrics"
	"github.com/openblog/blog-api/internal/api/middleware"
	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/core/ports"
)

// AuthHandler serves the login form, credential submission, registration, and
// logout. The session token travels in an HTTP-only cookie; the server keeps
// no session state of its own.
type AuthHandler struct {
	authService   ports.AuthService
	tokenTTL      time.Duration
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration, secureCookies bool) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL, secureCookies: secureCookies}
}

// LoginPage handles GET /admin.
//
// @Summary      Admin login page
// @Tags         auth
// @Produce      json
// @Success      200  {object}  pageResponse
// @Router       /admin [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{
		Title:       "Admin",
		Description: "Sign in to manage posts.",
		Route:       "/admin",
	})
}

// Login handles POST /admin. On success it sets the session cookie and
// redirects to the dashboard; on failure it re-renders the form descriptor
// with a uniform error message that never reveals whether the username exists.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      303
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  pageResponse
// @Router       /admin [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, pageResponse{
				Title: "Admin",
				Route: "/admin",
				Error: "invalid credentials",
			})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.setSessionCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Register handles POST /register.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: "username already in use"})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, registerResponse{ID: user.ID, Username: user.Username})
}

// Logout handles GET /logout. The cookie is cleared client-side; there is no
// server-side revocation, so a captured unexpired token would still validate.
//
// @Summary      Logout
// @Tags         auth
// @Success      303
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
