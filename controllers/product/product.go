package productControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praveenkumar11901/marketplace-api/middleware"
	"github.com/praveenkumar11901/marketplace-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductInput struct {
	Title    string          `json:"title" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" binding:"min=0"`
}

func (in *ProductInput) validate() string {
	if in.Price.IsNegative() {
		return "Price must not be negative"
	}
	return ""
}

// fetchOwnedProduct loads a product and checks that the caller owns it.
// A product owned by someone else is reported as not found, same as a
// missing row, so sellers cannot probe each other's catalogs.
func fetchOwnedProduct(db *gorm.DB, c *gin.Context, productID string) (*models.Product, bool) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or unauthorized"})
		} else {
			log.Println("product: lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		}
		return nil, false
	}
	if product.SellerID != c.GetString(middleware.CtxUserID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or unauthorized"})
		return nil, false
	}
	return &product, true
}

// GET /seller/products
func GetSellerProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetString(middleware.CtxUserID)

		var products []models.Product
		if err := db.Where("seller_id = ?", sellerID).Order("created_at desc").Find(&products).Error; err != nil {
			log.Println("product: list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /seller/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetString(middleware.CtxUserID)

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product := models.Product{
			Title:    input.Title,
			Price:    input.Price,
			Quantity: input.Quantity,
			SellerID: sellerID,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Println("product: create failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// GET /seller/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := fetchOwnedProduct(db, c, c.Param("id"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// PUT /seller/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := fetchOwnedProduct(db, c, c.Param("id"))
		if !ok {
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		updates := map[string]interface{}{
			"title":    input.Title,
			"price":    input.Price,
			"quantity": input.Quantity,
		}
		if err := db.Model(product).Updates(updates).Error; err != nil {
			log.Println("product: update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /seller/products/:id
//
// Cart lines referencing the product are left in place on purpose: they
// become stale lines that cart reads and checkout handle as not-found.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := fetchOwnedProduct(db, c, c.Param("id"))
		if !ok {
			return
		}

		if err := db.Delete(product).Error; err != nil {
			log.Println("product: delete failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

// GET /shopper/products — the storefront listing, all sellers.
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at desc").Find(&products).Error; err != nil {
			log.Println("product: list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
