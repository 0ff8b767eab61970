package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Config carries the deployment settings route handlers need.
type Config struct {
	UploadDir     string
	PublicBaseURL string
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg Config) {
	// Public routes (no middleware)
	SetupAuthRoutes(r, db)
	SetupPublicRoutes(r, db)

	// Customer routes (JWT-protected)
	SetupCustomerRoutes(r, db)

	// Merchant routes (JWT + merchant role)
	SetupMerchantRoutes(r, db, cfg)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, cfg)
}
