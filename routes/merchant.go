package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	merchantControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/merchant"
	uploadControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/upload"
	"github.com/Evan-Joseph/hospital-delivery-system/middleware"
	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

// SetupMerchantRoutes registers all "/merchant/*" endpoints. Requires JWT
// with the merchant role.
func SetupMerchantRoutes(r *gin.Engine, db *gorm.DB, cfg Config) {
	merchant := r.Group("/merchant")
	merchant.Use(middleware.ValidateToken, middleware.RequireRole(string(models.RoleMerchant)))
	{
		// ──────────────── Restaurant Profile ────────────────
		merchant.GET("/restaurant", merchantControllers.GetRestaurant(db))
		merchant.PUT("/restaurant", merchantControllers.UpdateRestaurant(db))

		// ──────────────── Menu Management ────────────────
		menu := merchant.Group("/menu")
		{
			menu.GET("", merchantControllers.GetMenu(db))
			menu.POST("", merchantControllers.CreateMenuItem(db))
			menu.PUT("/:item_id", merchantControllers.UpdateMenuItem(db))
			menu.DELETE("/:item_id", merchantControllers.DeleteMenuItem(db))
			menu.GET("/export-excel", merchantControllers.ExportMenuToExcel(db))
			menu.POST("/import-excel", merchantControllers.ImportMenuFromExcel(db))
		}

		// ──────────────── Promotions ────────────────
		promotions := merchant.Group("/promotions")
		{
			promotions.GET("", merchantControllers.GetPromotions(db))
			promotions.POST("", merchantControllers.CreatePromotion(db))
			promotions.PUT("/:promo_id", merchantControllers.UpdatePromotion(db))
			promotions.DELETE("/:promo_id", merchantControllers.DeletePromotion(db))
		}

		// ──────────────── Payment QR Codes ────────────────
		payments := merchant.Group("/payment-methods")
		{
			payments.GET("", merchantControllers.GetPaymentMethods(db))
			payments.POST("", merchantControllers.AddPaymentMethod(db))
			payments.DELETE("/:method_id", merchantControllers.DeletePaymentMethod(db))
		}

		// ──────────────── Incoming Orders ────────────────
		orders := merchant.Group("/orders")
		{
			orders.GET("", merchantControllers.GetOrders(db))
			orders.POST("/:order_id/advance", merchantControllers.AdvanceOrder(db))
			orders.POST("/:order_id/cancel", merchantControllers.CancelOrder(db))
		}

		// ──────────────── Image Uploads ────────────────
		merchant.POST("/upload", uploadControllers.HandleImageUpload(cfg.UploadDir, cfg.PublicBaseURL))
	}
}
