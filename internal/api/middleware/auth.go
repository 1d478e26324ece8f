package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openblog/blog-api/internal/core/ports"
)

// TokenCookie is the HTTP-only cookie carrying the session token.
const TokenCookie = "token"

// UserIDKey is the echo context key the middleware stores the caller's user
// id under after a successful validation.
const UserIDKey = "user_id"

// Auth gates admin routes on a valid session cookie. A missing, malformed,
// tampered, or expired token yields 401 before any service call, so an
// unauthenticated request never reaches the post store.
func Auth(tokens ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			userID, err := tokens.ValidateToken(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
