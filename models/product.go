package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Inactive products are retained, never deleted,
// so historical order items keep a valid reference.
type Product struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category  string          `json:"category" gorm:"not null"`
	IsActive  bool            `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
