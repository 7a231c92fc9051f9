package app

import (
	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/auth"
	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/cache"
	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/config"
	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/handlers"
	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/repo"
	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	issuer := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL.Duration())

	userRepo := repo.NewPGUserRepo(db)
	todoRepo := repo.NewPGTodoRepo(db)

	var todoCache *cache.TodoCache
	if rdb != nil {
		todoCache = cache.NewTodoCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}

	userSvc := service.NewUserService(userRepo)
	todoSvc := service.NewTodoService(todoRepo, todoCache)

	authHandler := handlers.NewAuthHandler(issuer, userSvc)
	todoHandler := handlers.NewTodoHandler(todoSvc)

	RegisterAPI(r, issuer, authHandler, todoHandler)
}

// RegisterAPI mounts the /api surface. Split from Setup so tests can wire it
// against in-memory repos without Postgres or Redis.
func RegisterAPI(r *gin.Engine, issuer *auth.Issuer, authHandler *handlers.AuthHandler, todoHandler *handlers.TodoHandler) {
	api := r.Group("/api")

	api.GET("/ping", pingHandler)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", auth.RequireAuth(issuer))
	protected.GET("/me", authHandler.Me)
	protected.GET("/todos", todoHandler.List)
	protected.POST("/todos", todoHandler.Create)
	protected.PATCH("/todos/:id", todoHandler.Toggle)
	protected.DELETE("/todos/:id", todoHandler.Delete)
}

// Ping godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "pong"
// @Router       /ping [get]
func pingHandler(c *gin.Context) {
	c.String(200, "pong")
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "TodoFlow API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
