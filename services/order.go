package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService owns order creation and status transitions.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderItemInput struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

type CreateOrderInput struct {
	Items       []OrderItemInput
	TotalAmount decimal.Decimal
	PaymentMode models.PaymentMode
}

// Create validates the cart, generates an order number and persists the order
// together with its line items as a single transaction. The item price sent by
// the cashier terminal is snapshotted; later catalog price changes never touch
// historical orders.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ValidationError("Order must have at least one item")
	}
	if !in.TotalAmount.IsPositive() {
		return nil, ValidationError("Total amount must be greater than 0")
	}
	if in.PaymentMode == "" {
		return nil, ValidationError("Payment mode is required")
	}
	if !in.PaymentMode.Valid() {
		return nil, ValidationError("Invalid payment mode. Must be: CASH, UPI or CARD")
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, ValidationError("Item quantity must be at least 1")
		}
		var product models.Product
		if err := s.db.WithContext(ctx).First(&product, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ValidationError(fmt.Sprintf("Product %d not found", item.ProductID))
			}
			return nil, err
		}
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := models.Order{
		OrderNumber: generateOrderNumber(),
		TotalAmount: in.TotalAmount,
		PaymentMode: in.PaymentMode,
		Status:      models.StatusPending,
		Items:       items,
	}

	// Association create writes the order and all items in one transaction,
	// so a failure can never leave a parent-less item or an item-less order.
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}

	return s.Get(ctx, order.ID)
}

// generateOrderNumber builds a human-readable, best-effort-unique order
// number; the unique index on orders.order_number is the backstop.
func generateOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items.Product").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List returns orders newest first, optionally filtered by status.
func (s *OrderService) List(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	query := s.db.WithContext(ctx).Preload("Items.Product")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	orders := make([]models.Order, 0)
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus advances an order through its lifecycle. The status value must
// be recognized and the move must go forward in the sequence; COMPLETED is
// terminal.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	if status == "" {
		return nil, ValidationError("Status is required")
	}
	if !statemachine.IsValid(status) {
		return nil, ValidationError("Invalid status value")
	}

	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := statemachine.CanTransition(order.Status, status); err != nil {
		return nil, &TransitionError{From: order.Status, To: status, Err: err}
	}

	if err := s.db.WithContext(ctx).Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}
