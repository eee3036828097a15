package services

import (
	"testing"
	"time"

	"restaurant-pos-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// insertOrder writes an order with a fixed creation time, bypassing the
// service so report fixtures can live on any date.
func insertOrder(t *testing.T, db *gorm.DB, createdAt time.Time, total int64,
	status models.OrderStatus, mode models.PaymentMode, items ...models.OrderItem) models.Order {
	t.Helper()
	order := models.Order{
		OrderNumber: "ORD-TEST-" + time.Now().Format("150405.000000000"),
		TotalAmount: decimal.NewFromInt(total),
		PaymentMode: mode,
		Status:      status,
		Items:       items,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to insert order: %v", err)
	}
	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("failed to backdate order: %v", err)
	}
	return order
}

func TestDailySales_TotalsAndGrouping(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	today := time.Now()

	insertOrder(t, db, today, 100, models.StatusCompleted, models.PaymentCash)
	insertOrder(t, db, today, 50, models.StatusPending, models.PaymentUPI)

	report, err := svc.DailySales(ctx(), today)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	if report.TotalOrders != 2 {
		t.Errorf("expected 2 orders, got %d", report.TotalOrders)
	}
	if !report.TotalRevenue.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected revenue 150, got %s", report.TotalRevenue)
	}
	if report.OrdersByStatus[models.StatusCompleted] != 1 || report.OrdersByStatus[models.StatusPending] != 1 {
		t.Errorf("unexpected status grouping: %v", report.OrdersByStatus)
	}
	if report.OrdersByPaymentMode[models.PaymentCash] != 1 || report.OrdersByPaymentMode[models.PaymentUPI] != 1 {
		t.Errorf("unexpected payment grouping: %v", report.OrdersByPaymentMode)
	}

	// Absent values are omitted, not zero-filled
	if _, ok := report.OrdersByStatus[models.StatusPreparing]; ok {
		t.Error("expected PREPARING to be absent from the grouping")
	}
	if _, ok := report.OrdersByPaymentMode[models.PaymentCard]; ok {
		t.Error("expected CARD to be absent from the grouping")
	}
}

func TestDailySales_WindowExcludesOtherDays(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	today := time.Now()

	insertOrder(t, db, today, 100, models.StatusCompleted, models.PaymentCash)
	insertOrder(t, db, today.AddDate(0, 0, -1), 70, models.StatusCompleted, models.PaymentCash)
	insertOrder(t, db, today.AddDate(0, 0, 1), 30, models.StatusCompleted, models.PaymentCash)

	report, err := svc.DailySales(ctx(), today)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if report.TotalOrders != 1 {
		t.Errorf("expected only today's order, got %d", report.TotalOrders)
	}
	if !report.TotalRevenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected revenue 100, got %s", report.TotalRevenue)
	}
}

func TestItemSales_MergesProductAcrossOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	tea := mustCreateProduct(t, db, "Masala Tea", 20, "Beverages")
	dosa := mustCreateProduct(t, db, "Dosa", 50, "Main Course")
	now := time.Now()

	insertOrder(t, db, now, 90, models.StatusCompleted, models.PaymentCash,
		models.OrderItem{ProductID: tea.ID, Quantity: 2, Price: tea.Price},
		models.OrderItem{ProductID: dosa.ID, Quantity: 1, Price: dosa.Price},
	)
	insertOrder(t, db, now, 60, models.StatusCompleted, models.PaymentUPI,
		models.OrderItem{ProductID: tea.ID, Quantity: 3, Price: tea.Price},
	)

	rows, err := svc.ItemSales(ctx(), nil, nil)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected one row per product, got %d rows", len(rows))
	}

	// 5x tea at 20 = 100 beats 1x dosa at 50, so tea sorts first
	if rows[0].ProductID != tea.ID {
		t.Fatalf("expected tea first by revenue, got product %d", rows[0].ProductID)
	}
	if rows[0].QuantitySold != 5 {
		t.Errorf("expected 5 teas sold, got %d", rows[0].QuantitySold)
	}
	if !rows[0].TotalRevenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected tea revenue 100, got %s", rows[0].TotalRevenue)
	}
	if rows[0].ProductName != "Masala Tea" || rows[0].Category != "Beverages" {
		t.Errorf("expected product details attached, got %+v", rows[0])
	}
	if !rows[1].TotalRevenue.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected dosa revenue 50, got %s", rows[1].TotalRevenue)
	}
}

func TestItemSales_SnapshotPriceSurvivesCatalogChange(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	products := NewProductService(db)
	tea := mustCreateProduct(t, db, "Masala Tea", 20, "Beverages")

	insertOrder(t, db, time.Now(), 40, models.StatusCompleted, models.PaymentCash,
		models.OrderItem{ProductID: tea.ID, Quantity: 2, Price: tea.Price},
	)

	// Catalog price change after the sale must not rewrite history
	_, err := products.Update(ctx(), tea.ID, ProductInput{
		Name: "Masala Tea", Price: decimal.NewFromInt(99), Category: "Beverages", IsActive: true,
	})
	if err != nil {
		t.Fatalf("catalog update failed: %v", err)
	}

	rows, err := reports.ItemSales(ctx(), nil, nil)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !rows[0].TotalRevenue.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected snapshot revenue 40, got %s", rows[0].TotalRevenue)
	}
}

func TestItemSales_DateWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	tea := mustCreateProduct(t, db, "Masala Tea", 20, "Beverages")
	today := time.Now()
	lastWeek := today.AddDate(0, 0, -7)

	insertOrder(t, db, today, 20, models.StatusCompleted, models.PaymentCash,
		models.OrderItem{ProductID: tea.ID, Quantity: 1, Price: tea.Price},
	)
	insertOrder(t, db, lastWeek, 40, models.StatusCompleted, models.PaymentCash,
		models.OrderItem{ProductID: tea.ID, Quantity: 2, Price: tea.Price},
	)

	yesterday := today.AddDate(0, 0, -1)
	rows, err := svc.ItemSales(ctx(), &yesterday, nil)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(rows) != 1 || rows[0].QuantitySold != 1 {
		t.Errorf("expected only today's sale in window, got %+v", rows)
	}

	// Open-ended window covers everything
	all, err := svc.ItemSales(ctx(), nil, nil)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(all) != 1 || all[0].QuantitySold != 3 {
		t.Errorf("expected merged quantity 3 without bounds, got %+v", all)
	}
}

func TestPaymentSummary_GroupsAndExcludesMissingMode(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	now := time.Now()

	insertOrder(t, db, now, 100, models.StatusCompleted, models.PaymentCash)
	insertOrder(t, db, now, 60, models.StatusPending, models.PaymentCash)
	insertOrder(t, db, now, 50, models.StatusCompleted, models.PaymentUPI)
	insertOrder(t, db, now, 30, models.StatusCompleted, "")

	rows, err := svc.PaymentSummary(ctx(), nil, nil)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 payment modes, got %d", len(rows))
	}

	byMode := map[models.PaymentMode]PaymentSummaryRow{}
	for _, row := range rows {
		byMode[row.PaymentMode] = row
	}
	cash := byMode[models.PaymentCash]
	if cash.Count != 2 || !cash.TotalAmount.Equal(decimal.NewFromInt(160)) {
		t.Errorf("unexpected CASH row: %+v", cash)
	}
	upi := byMode[models.PaymentUPI]
	if upi.Count != 1 || !upi.TotalAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("unexpected UPI row: %+v", upi)
	}
}
