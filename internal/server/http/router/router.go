package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/buyout/internal/metrics"
	"github.com/polkiloo/buyout/internal/server/http/handlers"
	"github.com/polkiloo/buyout/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BuyoutFacade, m *metrics.Metrics, logger *slog.Logger) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	engine.GET("/healthz", handlers.NewDashboardHandler(facade).Health)
	engine.GET("/metrics", gin.WrapH(m.Handler()))
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	registerAPI(engine.Group("/api"), facade)
	return engine, nil
}

func registerAPI(api *gin.RouterGroup, facade handlers.BuyoutFacade) {
	dashboardHandler := handlers.NewDashboardHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	marketplaceHandler := handlers.NewMarketplaceHandler(facade)
	purchaseHandler := handlers.NewPurchaseHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api.GET("/dashboard", dashboardHandler.Overview)

	customers := api.Group("/customers")
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.GET("/:id", customerHandler.Get)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)
	customers.GET("/:id/purchases/:purchaseID", customerHandler.Purchase)
	customers.POST("/:id/purchases/:purchaseID/orders", customerHandler.CreateOrder)
	customers.GET("/:id/purchases/:purchaseID/export.xlsx", customerHandler.Export)

	marketplaces := api.Group("/marketplaces")
	marketplaces.GET("", marketplaceHandler.List)
	marketplaces.POST("", marketplaceHandler.Create)
	marketplaces.GET("/:id", marketplaceHandler.Get)
	marketplaces.PUT("/:id", marketplaceHandler.Update)
	marketplaces.DELETE("/:id", marketplaceHandler.Delete)

	purchases := api.Group("/purchases")
	purchases.GET("", purchaseHandler.List)
	purchases.POST("", purchaseHandler.Create)
	purchases.GET("/:id", purchaseHandler.Get)
	purchases.PUT("/:id", purchaseHandler.Update)
	purchases.DELETE("/:id", purchaseHandler.Delete)
	purchases.POST("/:id/close", purchaseHandler.Close)
	purchases.POST("/:id/open", purchaseHandler.Open)
	purchases.POST("/:id/orders", purchaseHandler.CreateOrder)
	purchases.GET("/:id/export.xlsx", purchaseHandler.Export)
	purchases.GET("/:id/cargo.xlsx", purchaseHandler.Cargo)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)
	orders.GET("/:id/siblings", orderHandler.Siblings)
	orders.POST("/:id/buy", orderHandler.Buy)
	orders.POST("/:id/track", orderHandler.Track)
	orders.POST("/:id/delivered", orderHandler.Delivered)
	orders.POST("/:id/arrived", orderHandler.Arrived)
	orders.POST("/:id/cancel", orderHandler.Cancel)
}
