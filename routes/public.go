package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/order"
	restaurantControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/restaurant"
)

// SetupPublicRoutes registers the unauthenticated browse surface.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", restaurantControllers.ListApproved(db))
		restaurants.GET("/:restaurant_id", restaurantControllers.GetByID(db))
	}

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}
