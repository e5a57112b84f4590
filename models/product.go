package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	Title     string          `gorm:"not null" json:"title"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity  int             `gorm:"not null;check:quantity >= 0" json:"quantity"` // authoritative stock count
	SellerID  string          `gorm:"index;not null" json:"seller_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
