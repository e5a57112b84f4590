package services

import (
	"github.com/praveenkumar11901/marketplace-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminStats struct {
	TotalUsers    int64           `json:"total_users"`
	TotalProducts int64           `json:"total_products"`
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type ShopperStats struct {
	TotalOrders int64           `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	CartItems   int64           `json:"cart_items"`
}

// DashboardStats aggregates the admin dashboard counters. Revenue is summed
// at the product's current price; orders whose product was deleted
// contribute nothing.
func DashboardStats(db *gorm.DB) (*AdminStats, error) {
	stats := &AdminStats{TotalRevenue: decimal.Zero}

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := db.Preload("Product").Find(&orders).Error; err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Product == nil {
			continue
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(
			o.Product.Price.Mul(decimal.NewFromInt(int64(o.Quantity))))
	}
	return stats, nil
}

// ShopperDashboardStats aggregates one shopper's order history and pending
// cart size.
func ShopperDashboardStats(db *gorm.DB, userID string) (*ShopperStats, error) {
	stats := &ShopperStats{TotalSpent: decimal.Zero}

	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Product == nil {
			continue
		}
		stats.TotalSpent = stats.TotalSpent.Add(
			o.Product.Price.Mul(decimal.NewFromInt(int64(o.Quantity))))
	}

	if err := db.Model(&models.CartItem{}).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts.user_id = ?", userID).
		Count(&stats.CartItems).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
