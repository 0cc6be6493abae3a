package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/config"
	"github.com/stemsi/der-api/internal/handler"
	"github.com/stemsi/der-api/internal/middleware"
	"github.com/stemsi/der-api/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student     *handler.StudentHandler
	Institution *handler.InstitutionHandler
	Course      *handler.CourseHandler
	Discipline  *handler.DisciplineHandler
	Professor   *handler.ProfessorHandler
	Health      *handler.HealthHandler
}

// resource is the five-operation surface every entity exposes.
type resource interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// SetupRouter configures the middleware chain and mounts every resource
// both at the root and under /api/v1. limiter may be nil to disable rate limiting.
func SetupRouter(handlers *Handlers, cfg *config.Config, limiter middleware.LimitStore, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// Request ID first so recovery and access logs can reference it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.NoStore())
	router.Use(middleware.BrotliWithConfig(middleware.BrotliConfig{
		Quality:   middleware.DefaultBrotliConfig.Quality,
		MinLength: cfg.CompressionMinBytes,
	}))

	if limiter != nil {
		router.Use(middleware.RateLimit(limiter, log.With().Str("component", "ratelimit").Logger()))
	}

	router.GET("/health", handlers.Health.Check)

	registerResources(router.Group("/"), handlers)
	registerResources(router.Group("/api/v1"), handlers)

	return router
}

func registerResources(g *gin.RouterGroup, handlers *Handlers) {
	mount(g.Group("/alunos"), handlers.Student)
	mount(g.Group("/instituicoes"), handlers.Institution)
	mount(g.Group("/disciplinas"), handlers.Discipline)
	mount(g.Group("/professores"), handlers.Professor)

	cursos := g.Group("/cursos")
	mount(cursos, handlers.Course)
	cursos.GET("/:id/disciplinas", handlers.Discipline.ListByCourse)
}

func mount(g *gin.RouterGroup, h resource) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
