package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mensahub/internal/additive"
	"mensahub/internal/auth"
	"mensahub/internal/menu"
	"mensahub/internal/middleware"
	"mensahub/internal/mirror"
	"mensahub/internal/provider"
	"mensahub/internal/realtime"
)

// Deps carries the wired handlers the route table needs.
type Deps struct {
	Auth      *auth.Handler
	Additives *additive.Handler
	Providers *provider.Handler
	Menus     *menu.Handler
	Sync      *mirror.Handler
	Realtime  *realtime.Handler
}

// NewRouter assembles the HTTP surface: public reads, auth, the WebSocket
// upgrade and the admin group.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
	}

	providers := r.Group("/providers")
	{
		providers.GET("", deps.Providers.List)
		providers.GET("/:id", deps.Providers.Get)
		providers.GET("/:id/menus", deps.Menus.ListForProvider)
	}

	r.GET("/additives", deps.Additives.List)

	likes := r.Group("/additives")
	likes.Use(middleware.AuthMiddleware())
	{
		likes.PUT("/:name/like", deps.Additives.UpdateLike)
	}

	r.GET("/ws", deps.Realtime.Serve)

	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/sync", deps.Sync.TriggerSync)
		admin.POST("/providers/:id/photo", deps.Providers.UploadPhoto)
	}

	return r
}
