package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/auth"
)

// SetupAuthRoutes registers the identity endpoints. Tokens come from the
// external identity provider; these exchange them for app sessions.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(db))
		authGroup.POST("/merchant/register", auth.MerchantRegisterHandler(db))
	}
}
