package routes

import (
	"food-delivery-app/handlers"
	"food-delivery-app/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Session bootstrap
		public.POST("/session", handlers.StartSession)

		// Restaurants, menus & search (no session needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/menu", handlers.GetMenu)
		public.GET("/search", handlers.SearchCatalog)

		// Delivery progression info (great for docs/Postman)
		public.GET("/delivery-stages", handlers.GetDeliveryStages)
	}

	// ── Session routes (cart & orders) ─────────────────────────────
	session := r.Group("/api")
	session.Use(middleware.SessionRequired())
	{
		session.GET("/cart", handlers.GetCart)
		session.POST("/cart/items", handlers.AddItem)
		session.PUT("/cart/items/:index/increase", handlers.IncreaseItem)
		session.PUT("/cart/items/:index/decrease", handlers.DecreaseItem)
		session.DELETE("/cart/items/:index", handlers.RemoveItem)

		session.POST("/orders", handlers.PlaceOrder)
		session.GET("/orders/track", handlers.TrackOrder)
	}
}
