package routes

import (
	"resto-pos-api/handlers"
	"resto-pos-api/middleware"
	"resto-pos-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog (no auth needed — the ordering UI browses it)
		public.GET("/menus", handlers.ListMenus)
		public.GET("/menus/:id", handlers.GetMenu)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/me", handlers.Me)

		// Table registry
		auth.GET("/tables", handlers.ListTables)
		auth.GET("/tables/:id", handlers.GetTable)

		// Transactions: the cashier/ordering flow
		auth.POST("/transactions", handlers.CreateTransaction)
		auth.GET("/transactions", handlers.ListTransactions)
		auth.GET("/transactions/:id", handlers.GetTransaction)
		auth.PUT("/transactions/:id", handlers.SettleTransaction)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		// Catalog management (incl. stock replenishment)
		admin.POST("/menus", handlers.CreateMenu)
		admin.PUT("/menus/:id", handlers.UpdateMenu)

		// Table management
		admin.POST("/tables", handlers.CreateTable)
		admin.PUT("/tables/:id", handlers.UpdateTable)
	}
}
