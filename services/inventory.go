package services

import (
	"errors"

	"github.com/praveenkumar11901/marketplace-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetAvailable returns the live stock count for a product.
func GetAvailable(db *gorm.DB, productID string) (int, error) {
	var product models.Product
	err := db.Select("quantity").First(&product, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}
	return product.Quantity, nil
}

// TryReserve decrements a product's stock by quantity iff enough remains,
// as a single conditional UPDATE. There is no separate read-then-write step,
// so concurrent reservations for the same product cannot over-sell: the
// losing statement matches zero rows once stock runs out.
//
// Returns the remaining stock on success. Callers that need the decrement
// tied to other writes pass their transaction handle as db.
func TryReserve(db *gorm.DB, productID string, quantity int) (int, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}

	var product models.Product
	res := db.Model(&product).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "quantity"}}}).
		Where("id = ? AND quantity >= ?", productID, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// Zero rows means the product is gone or the stock ran out.
		var count int64
		if err := db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, ErrProductNotFound
		}
		return 0, ErrInsufficientStock
	}
	return product.Quantity, nil
}
