package main

import (
	"net/http"
	"os"

	"resto-pos-api/config"
	"resto-pos-api/middleware"
	"resto-pos-api/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize logger and database
	config.InitLogger()
	defer config.Log.Sync()
	config.InitDB()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(config.Log))
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware for the ordering/cashier frontend
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant POS Transaction API",
			"version": "1.0.0",
		})
	})

	// Prometheus metrics
	r.GET("/metrics", middleware.PrometheusHandler())

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Log.Info("Server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
