// Package api HTTP surface of the shop
package api

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/customer"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/health"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/middleware"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/order"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/product"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/config"

	"github.com/gin-gonic/gin"
)

// Controller registers its routes under the API group
type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// Router Route configuration
type Router struct {
	engine      *gin.Engine
	config      *config.Config
	controllers []Controller
}

func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	customerController *customer.Controller,
	productController *product.Controller,
	orderController *order.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// order matters: the request id must exist before anything logs
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))

	return &Router{
		engine: engine,
		config: cfg,
		controllers: []Controller{
			healthController,
			customerController,
			productController,
			orderController,
		},
	}
}

// SetupRoutes Set up all routes
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	for _, c := range r.controllers {
		c.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

// GetEngine Get Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
