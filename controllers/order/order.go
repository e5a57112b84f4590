package orderControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/praveenkumar11901/marketplace-api/middleware"
	"github.com/praveenkumar11901/marketplace-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GET /shopper/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			log.Println("orders: list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

type recentOrder struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Total  decimal.Decimal `json:"total"`
	Status string          `json:"status"`
}

// GET /shopper/orders/recent — the five most recent orders with a computed
// line total. Orders are completed the moment checkout commits, hence the
// fixed status.
func GetRecentOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Product").
			Order("created_at DESC").
			Limit(5).
			Find(&orders).Error; err != nil {
			log.Println("orders: recent failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent orders"})
			return
		}

		recent := make([]recentOrder, 0, len(orders))
		for _, o := range orders {
			total := decimal.Zero
			if o.Product != nil {
				total = o.Product.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
			}
			recent = append(recent, recentOrder{
				ID:     o.ID,
				Date:   o.CreatedAt,
				Total:  total,
				Status: "Completed",
			})
		}
		c.JSON(http.StatusOK, recent)
	}
}

// GET /seller/orders — every order touching one of the seller's products.
func GetSellerOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetString(middleware.CtxUserID)

		var orders []models.Order
		if err := db.
			Joins("JOIN products ON products.id = orders.product_id").
			Where("products.seller_id = ?", sellerID).
			Preload("Product").
			Order("orders.created_at DESC").
			Find(&orders).Error; err != nil {
			log.Println("orders: seller list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
