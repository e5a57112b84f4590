package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/praveenkumar11901/marketplace-api/models"
	"gorm.io/gorm"
)

// Line failure reasons reported by Checkout.
const (
	ReasonNotFound          = "product no longer available"
	ReasonInsufficientStock = "insufficient stock"
)

// LineFailure names one cart line Checkout could not fulfill and why.
type LineFailure struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title,omitempty"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// CheckoutError reports every failing line of a rejected checkout. The
// transaction has been rolled back: no stock was taken and the cart is
// untouched.
type CheckoutError struct {
	Failures []LineFailure
}

func (e *CheckoutError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		name := f.Title
		if name == "" {
			name = f.ProductID
		}
		parts = append(parts, fmt.Sprintf("%s for %q", f.Reason, name))
	}
	return "checkout rejected: " + strings.Join(parts, "; ")
}

// Checkout converts the shopper's current cart lines into Order rows and
// stock decrements, then clears the cart, all inside one transaction.
//
// Policy: all-or-nothing. Every line is re-validated against live stock via
// TryReserve inside the transaction; if any line fails (stale product, stock
// shortfall) the whole checkout aborts, nothing is decremented, and the cart
// keeps all its lines. The returned CheckoutError lists every failing line.
//
// The server-side cart is the authoritative snapshot; no client-supplied
// line list is accepted.
func Checkout(db *gorm.DB, userID string) ([]models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartEmpty
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	var orders []models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var failures []LineFailure
		for _, item := range cart.Items {
			var title string
			if item.Product != nil {
				title = item.Product.Title
			}

			_, err := TryReserve(tx, item.ProductID, item.Quantity)
			switch {
			case errors.Is(err, ErrProductNotFound):
				failures = append(failures, LineFailure{
					ProductID: item.ProductID,
					Title:     title,
					Quantity:  item.Quantity,
					Reason:    ReasonNotFound,
				})
				continue
			case errors.Is(err, ErrInsufficientStock):
				failures = append(failures, LineFailure{
					ProductID: item.ProductID,
					Title:     title,
					Quantity:  item.Quantity,
					Reason:    ReasonInsufficientStock,
				})
				continue
			case err != nil:
				return err
			}

			order := models.Order{
				UserID:    userID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			orders = append(orders, order)
		}

		if len(failures) > 0 {
			// Rolls back every reservation and order row made above.
			return &CheckoutError{Failures: failures}
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}
