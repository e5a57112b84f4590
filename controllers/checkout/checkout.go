package checkoutControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praveenkumar11901/marketplace-api/middleware"
	"github.com/praveenkumar11901/marketplace-api/services"
	"gorm.io/gorm"
)

// POST /shopper/checkout
//
// All-or-nothing: either every cart line becomes an order and the cart is
// cleared, or nothing changes and the response names each rejected line.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		orders, err := services.Checkout(db, userID)
		if err != nil {
			var checkoutErr *services.CheckoutError
			switch {
			case errors.As(err, &checkoutErr):
				c.JSON(http.StatusConflict, gin.H{
					"error":    "Checkout rejected",
					"failures": checkoutErr.Failures,
				})
			case errors.Is(err, services.ErrCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			default:
				log.Println("checkout: storage error:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Checkout successful",
			"orders":  orders,
		})
	}
}
