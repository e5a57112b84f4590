package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/praveenkumar11901/marketplace-api/auth"
	userControllers "github.com/praveenkumar11901/marketplace-api/controllers/user"
	"github.com/praveenkumar11901/marketplace-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints plus the profile lookup.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db)) // POST /auth/register
		authGroup.POST("/login", auth.LoginHandler(db))       // POST /auth/login
	}

	// Any authenticated role can read its own profile.
	r.GET("/user", middleware.ValidateToken, userControllers.GetCurrentUser(db))
}
