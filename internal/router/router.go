package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "cattery/docs"
	"cattery/internal/domain"
	"cattery/internal/handler"
	"cattery/internal/middleware"
	"cattery/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Cat       *handler.CatHandler
	CatBreed  *handler.CatBreedHandler
	CatStatus *handler.CatStatusHandler
	Store     *handler.StoreHandler
	Config    *handler.ConfigHandler
	Upload    *handler.UploadHandler
	AI        *handler.AIHandler
	Draft     *handler.DraftHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger("/healthz", "/readyz"))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", h.Auth.Me)

	ai := protected.Group("/ai")
	ai.POST("/form/fill", h.AI.Fill)
	ai.GET("/providers", h.AI.Providers)

	admin := protected.Group("/admin")
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// Static segments are registered before /:id.
	cats := admin.Group("/cats")
	cats.GET("", h.Cat.List)
	cats.GET("/export", h.Cat.Export)
	cats.POST("", h.Cat.Create)
	cats.DELETE("/bulk", adminOnly, h.Cat.BulkDelete)
	cats.GET("/:id", h.Cat.GetByID)
	cats.PUT("/:id", h.Cat.Update)
	cats.DELETE("/:id", adminOnly, h.Cat.Delete)

	drafts := admin.Group("/cat-drafts")
	drafts.POST("", h.Draft.Open)
	drafts.GET("/:id", h.Draft.Get)
	drafts.PATCH("/:id", h.Draft.Edit)
	drafts.POST("/:id/ai-fill", h.Draft.Fill)
	drafts.POST("/:id/reset", h.Draft.Reset)
	drafts.POST("/:id/commit", h.Draft.Commit)
	drafts.DELETE("/:id", h.Draft.Close)

	breeds := admin.Group("/cat-breeds")
	breeds.GET("", h.CatBreed.List)
	breeds.POST("", h.CatBreed.Create)
	breeds.PUT("/:id", h.CatBreed.Update)
	breeds.DELETE("/:id", adminOnly, h.CatBreed.Delete)

	statuses := admin.Group("/cat-statuses")
	statuses.GET("", h.CatStatus.List)
	statuses.POST("", h.CatStatus.Create)
	statuses.PUT("/:id", h.CatStatus.Update)
	statuses.DELETE("/:id", adminOnly, h.CatStatus.Delete)

	stores := admin.Group("/stores")
	stores.GET("", h.Store.List)
	stores.POST("", h.Store.Create)
	stores.DELETE("/bulk", adminOnly, h.Store.BulkDelete)
	stores.GET("/:id", h.Store.GetByID)
	stores.PUT("/:id", h.Store.Update)
	stores.DELETE("/:id", adminOnly, h.Store.Delete)

	configs := admin.Group("/configs")
	configs.GET("", h.Config.List)
	configs.GET("/:key", h.Config.Get)
	configs.PUT("/:key", adminOnly, h.Config.Set)

	admin.POST("/uploads/batch", h.Upload.Batch)

	return r
}
