package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Role-scoped groups (JWT-protected)
	SetupShopperRoutes(r, db)
	SetupSellerRoutes(r, db)
	SetupAdminRoutes(r, db)
}
