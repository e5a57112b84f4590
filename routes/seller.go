package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/praveenkumar11901/marketplace-api/controllers/order"
	productControllers "github.com/praveenkumar11901/marketplace-api/controllers/product"
	"github.com/praveenkumar11901/marketplace-api/middleware"
	"github.com/praveenkumar11901/marketplace-api/models"
	"gorm.io/gorm"
)

// SetupSellerRoutes registers all "/seller/*" endpoints. Requires a SELLER
// token; every product operation is additionally scoped by ownership.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB) {
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleSeller))
	{
		productGroup := sellerGroup.Group("/products")
		{
			productGroup.GET("", productControllers.GetSellerProducts(db))   // GET /seller/products
			productGroup.POST("", productControllers.CreateProduct(db))      // POST /seller/products
			productGroup.GET("/:id", productControllers.GetProductByID(db))  // GET /seller/products/:id
			productGroup.PUT("/:id", productControllers.UpdateProduct(db))   // PUT /seller/products/:id
			productGroup.DELETE("/:id", productControllers.DeleteProduct(db)) // DELETE /seller/products/:id
		}

		sellerGroup.GET("/orders", orderControllers.GetSellerOrders(db)) // GET /seller/orders
	}
}
