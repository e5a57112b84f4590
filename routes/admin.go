package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/praveenkumar11901/marketplace-api/controllers/admin"
	orderControllers "github.com/praveenkumar11901/marketplace-api/controllers/order"
	"github.com/praveenkumar11901/marketplace-api/middleware"
	"github.com/praveenkumar11901/marketplace-api/models"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an ADMIN
// token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/dashboard-stats", adminControllers.GetDashboardStats(db)) // GET /admin/dashboard-stats

		userGroup := adminGroup.Group("/users")
		{
			userGroup.GET("", adminControllers.GetAllUsers(db))       // GET /admin/users
			userGroup.POST("", adminControllers.CreateUser(db))       // POST /admin/users
			userGroup.DELETE("/:id", adminControllers.DeleteUser(db)) // DELETE /admin/users/:id
		}

		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(db)) // GET /admin/orders/export
	}
}
