package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is one row per checkout-time cart line, immutable once created.
// Its quantity permanently represents stock removed from the product.
type Order struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	ProductID string    `gorm:"index;not null" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
