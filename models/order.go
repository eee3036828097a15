package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the order's position in its fulfillment lifecycle
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
)

// PaymentMode represents how the order was settled
type PaymentMode string

const (
	PaymentCash PaymentMode = "CASH"
	PaymentUPI  PaymentMode = "UPI"
	PaymentCard PaymentMode = "CARD"
)

// Valid reports whether m is one of the recognized payment modes.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard:
		return true
	}
	return false
}

type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderNumber string          `json:"orderNumber" gorm:"uniqueIndex;not null"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2);not null"`
	PaymentMode PaymentMode     `json:"paymentMode" gorm:"not null"`
	Status      OrderStatus     `json:"status" gorm:"not null;default:'PENDING'"`
	Items       []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"orderId" gorm:"not null;index"`
	ProductID uint            `json:"productId" gorm:"not null"`
	Product   Product         `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"` // snapshot price at time of order
}
