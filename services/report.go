package services

import (
	"context"
	"sort"
	"time"

	"restaurant-pos-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportService derives aggregate views from persisted orders. All reports are
// pure reads; nothing here mutates state.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// DailySalesReport summarizes one calendar day of orders. Grouping maps only
// carry keys observed in the window; an absent key means zero occurrences.
type DailySalesReport struct {
	Date                string                     `json:"date"`
	TotalOrders         int                        `json:"totalOrders"`
	TotalRevenue        decimal.Decimal            `json:"totalRevenue"`
	OrdersByStatus      map[models.OrderStatus]int `json:"ordersByStatus"`
	OrdersByPaymentMode map[models.PaymentMode]int `json:"ordersByPaymentMode"`
}

// ItemSalesRow aggregates one product's sales using the snapshot price stored
// on each order item, not the current catalog price.
type ItemSalesRow struct {
	ProductID    uint            `json:"productId"`
	ProductName  string          `json:"productName"`
	Category     string          `json:"category"`
	QuantitySold int             `json:"quantitySold"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

type PaymentSummaryRow struct {
	PaymentMode models.PaymentMode `json:"paymentMode"`
	Count       int                `json:"count"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
}

// DailySales reports on all orders created within the given local-time day.
// Revenue counts every order in the window regardless of status.
func (s *ReportService) DailySales(ctx context.Context, date time.Time) (*DailySalesReport, error) {
	start := startOfDay(date)
	end := endOfDay(date)

	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	report := &DailySalesReport{
		Date:                start.Format("2006-01-02"),
		TotalOrders:         len(orders),
		TotalRevenue:        decimal.Zero,
		OrdersByStatus:      map[models.OrderStatus]int{},
		OrdersByPaymentMode: map[models.PaymentMode]int{},
	}
	for _, order := range orders {
		report.TotalRevenue = report.TotalRevenue.Add(order.TotalAmount)
		report.OrdersByStatus[order.Status]++
		if order.PaymentMode != "" {
			report.OrdersByPaymentMode[order.PaymentMode]++
		}
	}
	report.TotalRevenue = report.TotalRevenue.Round(2)
	return report, nil
}

// ItemSales returns one row per distinct product sold in the window, sorted by
// revenue descending. Both bounds are optional; an omitted bound leaves the
// window open on that side.
func (s *ReportService) ItemSales(ctx context.Context, startDate, endDate *time.Time) ([]ItemSalesRow, error) {
	query := s.db.WithContext(ctx).Preload("Product").
		Joins("JOIN orders ON orders.id = order_items.order_id")
	if startDate != nil {
		query = query.Where("orders.created_at >= ?", startOfDay(*startDate))
	}
	if endDate != nil {
		query = query.Where("orders.created_at <= ?", endOfDay(*endDate))
	}

	var items []models.OrderItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}

	byProduct := map[uint]*ItemSalesRow{}
	for _, item := range items {
		row, ok := byProduct[item.ProductID]
		if !ok {
			row = &ItemSalesRow{
				ProductID:    item.ProductID,
				ProductName:  item.Product.Name,
				Category:     item.Product.Category,
				TotalRevenue: decimal.Zero,
			}
			byProduct[item.ProductID] = row
		}
		row.QuantitySold += item.Quantity
		revenue := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		row.TotalRevenue = row.TotalRevenue.Add(revenue)
	}

	rows := make([]ItemSalesRow, 0, len(byProduct))
	for _, row := range byProduct {
		row.TotalRevenue = row.TotalRevenue.Round(2)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})
	return rows, nil
}

// PaymentSummary returns one row per payment mode observed in the window.
// Orders without a payment mode are excluded entirely.
func (s *ReportService) PaymentSummary(ctx context.Context, startDate, endDate *time.Time) ([]PaymentSummaryRow, error) {
	query := s.db.WithContext(ctx)
	if startDate != nil {
		query = query.Where("created_at >= ?", startOfDay(*startDate))
	}
	if endDate != nil {
		query = query.Where("created_at <= ?", endOfDay(*endDate))
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}

	byMode := map[models.PaymentMode]*PaymentSummaryRow{}
	for _, order := range orders {
		if order.PaymentMode == "" {
			continue
		}
		row, ok := byMode[order.PaymentMode]
		if !ok {
			row = &PaymentSummaryRow{PaymentMode: order.PaymentMode, TotalAmount: decimal.Zero}
			byMode[order.PaymentMode] = row
		}
		row.Count++
		row.TotalAmount = row.TotalAmount.Add(order.TotalAmount)
	}

	rows := make([]PaymentSummaryRow, 0, len(byMode))
	for _, row := range byMode {
		row.TotalAmount = row.TotalAmount.Round(2)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TotalAmount.GreaterThan(rows[j].TotalAmount)
	})
	return rows, nil
}

// startOfDay and endOfDay bound a reporting window in local time, matching how
// the cashier and kitchen stations read the clock.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}
