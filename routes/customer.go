package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/cart"
	deliveryControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/delivery"
	favoritesControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/favorites"
	orderControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/order"
	userControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/user"
	"github.com/Evan-Joseph/hospital-delivery-system/middleware"
)

// SetupCustomerRoutes registers all "/customer/*" endpoints. Requires JWT.
func SetupCustomerRoutes(r *gin.Engine, db *gorm.DB) {
	customer := r.Group("/customer")
	customer.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		customer.GET("/profile", userControllers.GetUser(db))
		customer.PUT("/profile", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cart := customer.Group("/cart")
		{
			cart.GET("", cartControllers.GetCart(db))
			cart.POST("", cartControllers.AddItemHandler(db))
			cart.PUT("/:menu_item_id", cartControllers.UpdateQuantityHandler(db))
			cart.DELETE("/:menu_item_id", cartControllers.DeleteItemHandler(db))
			cart.DELETE("", cartControllers.ClearCartHandler(db))
			cart.POST("/reorder/:order_id", cartControllers.ReorderHandler(db))
		}

		// ──────────────── Orders ────────────────
		orders := customer.Group("/orders")
		{
			orders.POST("", orderControllers.PlaceOrderHandler(db))
			orders.GET("", orderControllers.GetMyOrdersHandler(db))
			orders.GET("/:order_id", orderControllers.GetMyOrderHandler(db))
			orders.POST("/:order_id/confirm-delivery", orderControllers.ConfirmDeliveryHandler(db))
			orders.POST("/:order_id/rating", orderControllers.RateOrderHandler(db))
		}

		// ──────────────── Delivery Location ────────────────
		customer.POST("/delivery-location/scan", deliveryControllers.ScanBedCode(db))
		customer.PUT("/delivery-location", deliveryControllers.SetLocation(db))
		customer.GET("/delivery-location", deliveryControllers.GetLocation(db))

		// ──────────────── Favorites ────────────────
		favorites := customer.Group("/favorites")
		{
			favorites.GET("", favoritesControllers.ListFavorites(db))
			favorites.POST("", favoritesControllers.AddFavorite(db))
			favorites.DELETE("/:menu_item_id", favoritesControllers.RemoveFavorite(db))
		}
	}
}
