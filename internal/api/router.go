package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openblog/blog-api/internal/api/handler"
	"github.com/openblog/blog-api/internal/api/middleware"
	"github.com/openblog/blog-api/internal/core/service"
	"github.com/openblog/blog-api/internal/infrastructure/config"
	mongostore "github.com/openblog/blog-api/internal/infrastructure/db/mongo"
	"github.com/openblog/blog-api/internal/infrastructure/http/handlers"
)

const tokenTTL = time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	postRepo := mongostore.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)
	postService := service.NewPostService(postRepo, log)
	adminService := service.NewAdminService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService, tokenTTL, cfg.IsProduction())
	postHandler := handler.NewPostHandler(postService)
	adminHandler := handler.NewAdminHandler(adminService, postService)
	requireAuth := middleware.Auth(authService)

	// --- Public routes ---
	e.GET("/", postHandler.Home)
	e.GET("/post/:id", postHandler.GetByID)
	e.POST("/search", postHandler.Search)
	e.GET("/about", postHandler.About)

	// --- Auth routes ---
	e.GET("/admin", authHandler.LoginPage)
	e.POST("/admin", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.GET("/logout", authHandler.Logout)

	// --- Admin routes (session cookie required) ---
	e.GET("/dashboard", adminHandler.Dashboard, requireAuth)
	e.GET("/add-post", adminHandler.AddPostPage, requireAuth)
	e.POST("/add-post", adminHandler.AddPost, requireAuth)
	e.GET("/edit-post/:id", adminHandler.EditPostPage, requireAuth)
	e.PUT("/edit-post/:id", adminHandler.UpdatePost, requireAuth)
	e.DELETE("/delete-post/:id", adminHandler.DeletePost, requireAuth)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
