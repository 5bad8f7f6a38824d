package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"dessertbook/internal/config"
	"dessertbook/internal/domain/auth"
	"dessertbook/internal/domain/dessert"
	"dessertbook/internal/domain/ingredient"
	"dessertbook/internal/domain/instruction"
	"dessertbook/internal/domain/review"
	"dessertbook/internal/metrics"
	"dessertbook/internal/middleware"
	"dessertbook/internal/pkg/jwt"
	"dessertbook/internal/storage"
	"dessertbook/internal/web"
)

// Deps are the collaborators the router is built from. Redis may be nil, which
// disables rate limiting.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	JWT    *jwt.Service
	Images storage.ImageStore
	Redis  *redis.Client
}

// NewServices wires the domain services. The instruction service owns the
// dessert/ingredient links and the review service owns photo files.
func NewServices(db *gorm.DB, images storage.ImageStore, jwtService *jwt.Service) web.Services {
	instructions := instruction.NewService(db)
	reviews := review.NewService(db, images)
	return web.Services{
		Desserts:     dessert.NewService(db, instructions, reviews),
		Ingredients:  ingredient.NewService(db, instructions),
		Instructions: instructions,
		Reviews:      reviews,
		Auth:         auth.NewService(db, jwtService),
	}
}

func NewRouter(deps Deps) (*gin.Engine, error) {
	cfg := deps.Config
	svc := NewServices(deps.DB, deps.Images, deps.JWT)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	if local, ok := deps.Images.(*storage.LocalStore); ok {
		r.Static(storage.DefaultURLPrefix, local.Dir())
	}

	loginGuard, writeGuard := rateLimits(cfg, deps.Redis)

	cookie := auth.CookieSettings{
		Secure:   cfg.CookieSecure,
		SameSite: cfg.CookieSameSite,
		Path:     cfg.CookiePath,
		MaxAge:   cfg.CookieMaxAge(),
	}

	dessertHandler := dessert.NewHandler(svc.Desserts)
	ingredientHandler := ingredient.NewHandler(svc.Ingredients)
	instructionHandler := instruction.NewHandler(svc.Instructions)
	reviewHandler := review.NewHandler(svc.Reviews)
	authHandler := auth.NewHandler(svc.Auth, cookie)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1, loginGuard)
		dessert.RegisterPublicRoutes(v1, dessertHandler)
		ingredient.RegisterPublicRoutes(v1, ingredientHandler)
		instruction.RegisterPublicRoutes(v1, instructionHandler)
		review.RegisterPublicRoutes(v1, reviewHandler)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(deps.JWT))
		if writeGuard != nil {
			protected.Use(writeGuard)
		}
		{
			authHandler.RegisterProtectedRoutes(protected)
			dessert.RegisterProtectedRoutes(protected, dessertHandler)
			ingredient.RegisterProtectedRoutes(protected, ingredientHandler)
			instruction.RegisterProtectedRoutes(protected, instructionHandler)
			review.RegisterProtectedRoutes(protected, reviewHandler)
		}
	}

	pages := web.NewPages(svc, cookie)

	publicPages := r.Group("")
	publicPages.Use(middleware.OptionalAuth(deps.JWT))
	pages.RegisterPublicRoutes(publicPages)

	protectedPages := r.Group("")
	protectedPages.Use(middleware.PageAuth(deps.JWT, web.LoginPath))
	if writeGuard != nil {
		protectedPages.Use(writeGuard)
	}
	pages.RegisterProtectedRoutes(protectedPages)

	return r, nil
}

func rateLimits(cfg *config.Config, client *redis.Client) (login, writes gin.HandlerFunc) {
	if client == nil {
		return nil, nil
	}
	counter := middleware.NewRedisCounter(client)
	login = middleware.NewRateLimiter(counter, middleware.RateLimitConfig{
		Window:    cfg.RateLimitWindow,
		Limit:     cfg.LoginRateLimit,
		KeyPrefix: "dessertbook:login",
	}).Middleware()
	writes = middleware.NewRateLimiter(counter, middleware.RateLimitConfig{
		Window:    cfg.RateLimitWindow,
		Limit:     cfg.WriteRateLimit,
		KeyPrefix: "dessertbook:writes",
	}).Middleware()
	return login, writes
}
