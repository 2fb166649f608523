package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mireles/storefront/internal/server/http/handlers"
	"github.com/mireles/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	categoryHandler := handlers.NewCategoryHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	stockAlertHandler := handlers.NewStockAlertHandler(facade)

	api := engine.Group("/api/v1")

	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)

	usersAuth := users.Group("")
	usersAuth.Use(middleware.AuthRequired(facade))
	usersAuth.PUT("/profile", userHandler.UpdateProfile)
	usersAuth.POST("/push-token", userHandler.SavePushToken)
	usersAuth.GET("/:id", userHandler.Get)

	categories := api.Group("/categories")
	categories.GET("", categoryHandler.List)

	categoriesAdmin := categories.Group("")
	categoriesAdmin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	categoriesAdmin.POST("", categoryHandler.Create)
	categoriesAdmin.PUT("/:id", categoryHandler.Update)
	categoriesAdmin.DELETE("/:id", categoryHandler.Delete)

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)

	productsAdmin := products.Group("")
	productsAdmin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	productsAdmin.POST("", productHandler.Create)
	productsAdmin.PUT("/:id", productHandler.Update)
	productsAdmin.DELETE("/:id", productHandler.Delete)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.UpdateStatus)

	stockAlerts := api.Group("/stock-alerts")
	stockAlerts.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	stockAlerts.GET("", stockAlertHandler.List)

	return engine
}
