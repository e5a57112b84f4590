package userControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praveenkumar11901/marketplace-api/middleware"
	"github.com/praveenkumar11901/marketplace-api/models"
	"github.com/praveenkumar11901/marketplace-api/services"
	"gorm.io/gorm"
)

// GET /user — the authenticated caller's own profile, any role.
func GetCurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		})
	}
}

// GET /shopper/stats
func GetShopperStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		stats, err := services.ShopperDashboardStats(db, userID)
		if err != nil {
			log.Println("stats: shopper query failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shopper statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
