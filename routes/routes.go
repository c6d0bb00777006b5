package routes

import (
	"foodie-api/handlers"
	"foodie-api/middleware"
	"foodie-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/foods", handlers.GetRestaurantFoods)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/profile", handlers.GetProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.GET("/cart", handlers.GetCart)
		customer.POST("/cart/add", handlers.AddToCart)
		customer.DELETE("/cart/remove/:foodId", handlers.RemoveFromCart)
		customer.DELETE("/cart/clear", handlers.ClearCart)

		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders/user", handlers.GetMyOrders)
		customer.PUT("/orders/:id/cancel", handlers.CancelOrder)
		customer.POST("/orders/:id/feedback", handlers.SubmitFeedback)
	}

	// ── Owner/admin management routes ──────────────────────────────
	manage := r.Group("/api")
	manage.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleOwner, models.RoleAdmin))
	{
		manage.GET("/manage/restaurants", handlers.ListManagedRestaurants)
		manage.POST("/restaurants", handlers.CreateRestaurant)
		manage.PUT("/restaurants/:id", handlers.UpdateRestaurant)
		manage.DELETE("/restaurants/:id", handlers.DeleteRestaurant)

		manage.GET("/foods/:restaurantId", handlers.ListManagedFoods)
		manage.POST("/foods/:restaurantId", handlers.CreateFoodItem)
		manage.PUT("/foods/item/:id", handlers.UpdateFoodItem)
		manage.DELETE("/foods/item/:id", handlers.DeleteFoodItem)

		manage.GET("/orders/admin", handlers.ListOrders)
		manage.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		manage.GET("/admin/stats", handlers.GetStats)
	}
}
