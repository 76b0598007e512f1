package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ship_catalog/internal/app/handler/api"
	"ship_catalog/internal/app/handler/middleware"
	"ship_catalog/internal/app/repository"
)

type Options struct {
	// RequireModerator restricts ship writes to moderators.
	RequireModerator bool
	RateLimitRPS     float64
	RateLimitBurst   int
	// Registry receives the HTTP metrics; a fresh one is created when nil.
	Registry *prometheus.Registry
}

type Handler struct {
	Repository     *repository.Repository
	ShipAPIHandler *api.ShipHandler
	UserAPIHandler *api.UserHandler

	opts    Options
	metrics *middleware.Metrics
	limiter *middleware.RateLimiter
}

// NewHandler wires the API handlers. images may be nil when object storage
// is not configured; uploads then answer 503.
func NewHandler(rep *repository.Repository, catalog api.Catalog, images api.ImageStore, opts Options) *Handler {
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
		opts.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	h := &Handler{
		Repository:     rep,
		ShipAPIHandler: &api.ShipHandler{Catalog: catalog, Images: images},
		UserAPIHandler: &api.UserHandler{Repository: rep},
		opts:           opts,
		metrics:        middleware.NewMetrics(opts.Registry),
	}
	if opts.RateLimitRPS > 0 {
		h.limiter = middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	}
	return h
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestLogger(), h.metrics.Middleware())

	router.GET("/healthz", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.opts.Registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	rest := router.Group("/rest")
	if h.limiter != nil {
		rest.Use(h.limiter.Middleware())
	}
	rest.Use(middleware.AuthMiddleware(h.Repository))

	// Домен кораблей
	ships := rest.Group("/ships")
	{
		ships.GET("", h.ShipAPIHandler.GetShipsAPI)
		ships.GET("/count", h.ShipAPIHandler.CountShipsAPI)
		ships.GET("/:id", h.ShipAPIHandler.GetShipAPI)

		writes := ships.Group("")
		if h.opts.RequireModerator {
			writes.Use(middleware.ModeratorMiddleware())
		}
		writes.POST("", h.ShipAPIHandler.CreateShipAPI)
		writes.POST("/:id", h.ShipAPIHandler.UpdateShipAPI)
		writes.DELETE("/:id", h.ShipAPIHandler.DeleteShipAPI)
		writes.POST("/:id/image", h.ShipAPIHandler.AddShipImageAPI)
	}

	// Домен пользователя
	users := rest.Group("/users")
	{
		users.POST("/register", h.UserAPIHandler.RegisterUserAPI)
		users.POST("/login", h.UserAPIHandler.LoginUserAPI)

		authed := users.Group("", middleware.RequireUser())
		authed.POST("/logout", h.UserAPIHandler.LogoutUserAPI)
		authed.GET("/profile", h.UserAPIHandler.GetUserProfileAPI)
		authed.PUT("/profile", h.UserAPIHandler.UpdateUserProfileAPI)
	}
}

func (h *Handler) health(c *gin.Context) {
	sqlDB, err := h.Repository.DB().DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
