package seed

import (
	"testing"

	"restaurant-pos-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRun_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	if err := Run(db); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := Run(db); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	var users, products, orders int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Order{}).Count(&orders)

	if users != 2 {
		t.Errorf("expected 2 users, got %d", users)
	}
	if products != 15 {
		t.Errorf("expected 15 products, got %d", products)
	}
	if orders != 1 {
		t.Errorf("expected 1 sample order, got %d", orders)
	}
}
