// README: API gateway; builds the engine, registers routes, delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"gameday/internal/config"
	"gameday/internal/http/handlers"
	"gameday/internal/http/middleware"
	"gameday/internal/modules/dispatch"
	"gameday/internal/modules/menu"
	"gameday/internal/modules/order"
	"gameday/internal/modules/runner"
)

type ServerDeps struct {
	Orders   *order.Service
	Runners  *runner.Service
	Dispatch *dispatch.Service
	Menu     *menu.Store
	Log      zerolog.Logger

	// Redis is optional; without it the rate limiter is a pass-through.
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
}

func NewRouter(deps ServerDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.RateLimit(deps.RateLimit, deps.Redis))

	orderHandler := handlers.NewOrderHandler(deps.Orders)
	dispatchHandler := handlers.NewDispatchHandler(deps.Dispatch, deps.Orders)
	r.POST("/api/orders", orderHandler.Create)
	r.GET("/api/orders/nearby", dispatchHandler.Nearby)
	r.GET("/api/orders/:id", orderHandler.Get)
	r.PATCH("/api/orders/:id/status", orderHandler.Advance)
	r.GET("/api/orders/:id/messages", orderHandler.Messages)
	r.POST("/api/orders/:id/messages", orderHandler.PostMessage)

	runnerHandler := handlers.NewRunnerHandler(deps.Runners)
	r.POST("/api/runner/login", runnerHandler.Login)
	r.PATCH("/api/runner/status", runnerHandler.Status)
	r.GET("/api/runner/me", runnerHandler.Me)

	r.POST("/api/runner/claim", dispatchHandler.Claim)
	r.POST("/api/runner/release", dispatchHandler.Release)
	r.POST("/api/runner/batches", dispatchHandler.CreateBatch)
	r.GET("/api/runner/batches", dispatchHandler.ListBatches)
	r.PATCH("/api/runner/batches/:id", dispatchHandler.SetBatchStatus)

	menuHandler := handlers.NewMenuHandler(deps.Menu)
	r.GET("/api/menu", menuHandler.List)
	r.GET("/api/menu/:id", menuHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
