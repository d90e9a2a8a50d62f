package main

import (
	"context"
	"log"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/redis"
	"storefront/internal/repository"
	"storefront/internal/services"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	colorRepo := repository.NewColorRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	salesRepo := repository.NewSalesRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	paymentRepo := repository.NewPaymentMethodRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, adminRepo, cfg.JWTSecret, cfg.BcryptCost)
	adminService := services.NewAdminService(adminRepo, cfg.BcryptCost)
	categoryService := services.NewCategoryService(categoryRepo)
	colorService := services.NewColorService(colorRepo)
	productService := services.NewProductService(productRepo, categoryRepo, redisClient, time.Duration(cfg.CatalogCacheTTL)*time.Second)
	settingsService := services.NewSettingsService(settingsRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	analyticsService := services.NewAnalyticsService(salesRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, settingsService, time.Duration(cfg.PurgeDelayMins)*time.Minute)

	// Background sweep for delivered orders past their purge due time
	cleanup := services.NewCleanupService(orderRepo, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cleanup.Run(ctx)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService, cfg.UploadDir)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	colorHandler := handlers.NewColorHandler(colorService)
	productHandler := handlers.NewProductHandler(productService, cfg.UploadDir)
	orderHandler := handlers.NewOrderHandler(orderService, cfg.UploadDir)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Setup routes
	router := gin.Default()
	router.Static("/uploads", cfg.UploadDir)

	authed := handlers.Authenticate(authService)
	adminOnly := handlers.RequireAdmin()

	api := router.Group("/api")
	{
		// Customer auth
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", authed, authHandler.Me)
		api.POST("/auth/logout", authed, authHandler.Logout)

		// Admin auth and management
		api.POST("/admins/login", authHandler.AdminLogin)
		api.GET("/admins/me", authed, adminOnly, adminHandler.Profile)
		api.PUT("/admins/profile", authed, adminOnly, adminHandler.UpdateProfile)
		api.POST("/admins/logout", authed, adminOnly, authHandler.Logout)
		api.GET("/admins", authed, adminOnly, adminHandler.List)
		api.POST("/admins", authed, adminOnly, adminHandler.Create)
		api.PUT("/admins/:id", authed, adminOnly, adminHandler.Update)
		api.DELETE("/admins/:id", authed, adminOnly, adminHandler.Delete)

		// Catalog
		api.GET("/products", productHandler.List)
		api.GET("/products/page/:page", productHandler.Page)
		api.GET("/products/:id", productHandler.Get)
		api.POST("/products", authed, adminOnly, productHandler.Create)
		api.PUT("/products/:id", authed, adminOnly, productHandler.Update)
		api.DELETE("/products/:id", authed, adminOnly, productHandler.Delete)
		api.DELETE("/products/:id/images/:imageId", authed, adminOnly, productHandler.DeleteImage)

		api.GET("/categories", categoryHandler.List)
		api.GET("/categories/:id", categoryHandler.Get)
		api.POST("/categories", authed, adminOnly, categoryHandler.Create)
		api.PUT("/categories/:id", authed, adminOnly, categoryHandler.Update)
		api.DELETE("/categories/:id", authed, adminOnly, categoryHandler.Delete)
		api.DELETE("/categories", authed, adminOnly, categoryHandler.DeleteMany)

		api.GET("/colors", colorHandler.List)
		api.GET("/colors/:id", colorHandler.Get)
		api.POST("/colors", authed, adminOnly, colorHandler.Create)
		api.PUT("/colors/:id", authed, adminOnly, colorHandler.Update)
		api.DELETE("/colors/:id", authed, adminOnly, colorHandler.Delete)

		// Settings and payment configuration
		api.GET("/settings/shipping", settingsHandler.GetShipping)
		api.PUT("/settings/shipping", authed, adminOnly, settingsHandler.UpdateShipping)
		api.GET("/payment-methods", paymentHandler.List)
		api.PUT("/payment-methods/:method_name", authed, adminOnly, paymentHandler.Update)

		// Orders
		api.POST("/orders", authed, orderHandler.Create)
		api.GET("/orders", authed, adminOnly, orderHandler.List)
		api.GET("/orders/:id", authed, adminOnly, orderHandler.Get)
		api.PUT("/orders/:id/status", authed, adminOnly, orderHandler.UpdateStatus)
		api.DELETE("/orders/:id", authed, adminOnly, orderHandler.Delete)

		// Analytics
		api.GET("/analytics/sales", authed, adminOnly, analyticsHandler.SalesReport)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
