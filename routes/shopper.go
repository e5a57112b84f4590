package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/praveenkumar11901/marketplace-api/controllers/cart"
	checkoutControllers "github.com/praveenkumar11901/marketplace-api/controllers/checkout"
	orderControllers "github.com/praveenkumar11901/marketplace-api/controllers/order"
	productControllers "github.com/praveenkumar11901/marketplace-api/controllers/product"
	userControllers "github.com/praveenkumar11901/marketplace-api/controllers/user"
	"github.com/praveenkumar11901/marketplace-api/middleware"
	"github.com/praveenkumar11901/marketplace-api/models"
	"gorm.io/gorm"
)

// SetupShopperRoutes registers all "/shopper/*" endpoints. Requires a
// SHOPPER token.
func SetupShopperRoutes(r *gin.Engine, db *gorm.DB) {
	shopperGroup := r.Group("/shopper")
	shopperGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleShopper))
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := shopperGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))                   // GET /shopper/cart
			cartGroup.POST("", cartControllers.AddToCart(db))                // POST /shopper/cart
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItem(db))   // PUT /shopper/cart/:item_id
			cartGroup.DELETE("/:item_id", cartControllers.RemoveCartItem(db)) // DELETE /shopper/cart/:item_id
		}

		// ──────────────── Checkout ────────────────
		shopperGroup.POST("/checkout", checkoutControllers.Checkout(db)) // POST /shopper/checkout

		// ──────────────── Orders & Stats ────────────────
		shopperGroup.GET("/orders", orderControllers.GetUserOrders(db))         // GET /shopper/orders
		shopperGroup.GET("/orders/recent", orderControllers.GetRecentOrders(db)) // GET /shopper/orders/recent
		shopperGroup.GET("/stats", userControllers.GetShopperStats(db))         // GET /shopper/stats

		// ──────────────── Browse Products ────────────────
		shopperGroup.GET("/products", productControllers.GetAllProducts(db)) // GET /shopper/products
	}
}
