package adminControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praveenkumar11901/marketplace-api/services"
	"gorm.io/gorm"
)

// GET /admin/dashboard-stats
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := services.DashboardStats(db)
		if err != nil {
			log.Println("admin: dashboard stats failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
