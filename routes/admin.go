package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/Evan-Joseph/hospital-delivery-system/controllers/admin"
	orderControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/order"
	userControllers "github.com/Evan-Joseph/hospital-delivery-system/controllers/user"
	"github.com/Evan-Joseph/hospital-delivery-system/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the
// operations API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Merchant Approval Workflow ───────────
		merchants := adminGroup.Group("/merchants")
		{
			merchants.GET("", adminController.ListMerchants(db))
			merchants.GET("/pending", adminController.ListPendingMerchants(db))
			merchants.POST("/approve", adminController.ApproveMerchant(db))
			merchants.POST("/reject", adminController.RejectMerchant(db))
			merchants.POST("/suspend", adminController.SuspendMerchant(db))
		}

		// ─────────── Bed QR Code Management ───────────
		bedQR := adminGroup.Group("/bed-qrcodes")
		{
			bedQR.GET("", adminController.ListBedQRCodes(db))
			bedQR.POST("", adminController.CreateBedQRCode(db, cfg.UploadDir, cfg.PublicBaseURL))
			bedQR.PUT("/:id", adminController.UpdateBedQRCode(db))
			bedQR.DELETE("/:id", adminController.DeleteBedQRCode(db))
		}

		// ─────────── Oversight ───────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
	}
}
