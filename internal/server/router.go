// Package server wires the store, services and controllers into a gin router.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// ServiceName is reported by the health check
const ServiceName = "gin-restaurant-api"

// SetupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func SetupRouter(db *gorm.DB, paging controllers.Paging, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	s := store.New(db)
	setupRoutes(router, s, paging)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, s *store.Store, paging controllers.Paging) {
	menuController := controllers.NewMenuController(services.NewMenuService(s), paging)
	productController := controllers.NewProductController(services.NewProductService(s), paging)
	pricingController := controllers.NewPricingController(services.NewPricingService(s), paging)
	offerController := controllers.NewOfferController(services.NewOfferService(s), paging)
	orderController := controllers.NewOrderController(services.NewOrderService(s), paging)

	router.GET("/health", healthCheckHandler(s))

	menus := router.Group("/menus")
	{
		menus.GET("", menuController.ListMenus)
		menus.POST("", menuController.CreateMenu)
	}

	products := router.Group("/products")
	{
		products.GET("", productController.ListProducts)
		products.POST("", productController.CreateProduct)
		products.PATCH("/:id", productController.UpdateProduct)

		products.GET("/category", menuController.ListCategories)
		products.POST("/category", menuController.CreateCategory)

		products.GET("/tag", productController.ListTags)
		products.POST("/tag", productController.CreateTag)
		products.PATCH("/:id/tag", productController.AssignTag)

		products.GET("/option", productController.ListOptions)
		products.POST("/option", productController.CreateOption)
		products.PATCH("/:id/option", productController.AssignOption)
	}

	pricing := router.Group("/pricing")
	{
		pricing.GET("", pricingController.ListPrices)
		pricing.POST("", pricingController.CreatePrice)
	}

	offers := router.Group("/offers")
	{
		offers.GET("", offerController.ListOffers)
		offers.POST("", offerController.CreateOffer)
	}

	orders := router.Group("/orders")
	{
		orders.GET("", orderController.ListOrders)
		orders.POST("/order", orderController.CreateOrder)
		orders.POST("/order/:id/item", orderController.AddItem)
		orders.PATCH("/item/:id/option", orderController.AssignItemOption)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running and the database answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := ping(c.Request.Context(), s.DB()); err != nil {
			_ = c.Error(err)
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   ServiceName,
		})
	}
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
