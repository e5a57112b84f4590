package services

import (
	"errors"
	"time"

	"github.com/praveenkumar11901/marketplace-api/models"
	"gorm.io/gorm"
)

// AddItem puts quantity units of a product into the shopper's cart, creating
// the cart on first use and merging with an existing line for the same
// product. The stock check here is advisory only — it rejects obviously
// invalid carts but reserves nothing; checkout re-validates every line.
func AddItem(db *gorm.DB, userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if quantity > product.Quantity {
		return nil, ErrInsufficientStock
	}

	var cart models.Cart
	if err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
		return nil, err
	}

	var item models.CartItem
	err := db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		merged := item.Quantity + quantity
		if merged > product.Quantity {
			return nil, ErrInsufficientStock
		}
		item.Quantity = merged
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
	}

	item.Product = &product
	return &item, nil
}

// UpdateItem overwrites a cart line's quantity after re-checking the
// referenced product's current stock.
func UpdateItem(db *gorm.DB, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var item models.CartItem
	if err := db.Preload("Product").First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	// Stale line: the product was deleted after this item was added.
	if item.Product == nil {
		return nil, ErrProductNotFound
	}
	if quantity > item.Product.Quantity {
		return nil, ErrInsufficientStock
	}

	if err := db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes a cart line. A line that is already gone reports
// ErrCartItemNotFound, consistently, so callers can tell the outcomes apart.
func RemoveItem(db *gorm.DB, itemID string) error {
	res := db.Delete(&models.CartItem{}, "id = ?", itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ListItems returns the shopper's cart lines joined with the products'
// current price and stock, oldest first. A missing cart or an empty cart is
// an empty list, not an error. Lines whose product has been deleted come
// back with a nil Product.
func ListItems(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := db.Preload("Product").
		Where("cart_id = ?", cart.ID).
		Order("added_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
