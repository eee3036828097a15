package services

import (
	"context"
	"testing"

	"restaurant-pos-api/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

// mustCreateProduct inserts a catalog entry directly, bypassing validation.
func mustCreateProduct(t *testing.T, db *gorm.DB, name string, price int64, category string) models.Product {
	t.Helper()
	product := models.Product{
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Category: category,
		IsActive: true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to create product %q: %v", name, err)
	}
	return product
}

func ctx() context.Context {
	return context.Background()
}
