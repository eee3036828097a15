package seed

import (
	"fmt"
	"log"
	"time"

	"restaurant-pos-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run loads the station users, the starter catalog and one historical order
// so reports have data out of the box. Safe to run repeatedly.
func Run(db *gorm.DB) error {
	users := []models.User{
		{Name: "Cashier User", Role: models.RoleCashier},
		{Name: "Kitchen Staff", Role: models.RoleKitchen},
	}
	for i := range users {
		err := db.Where("name = ? AND role = ?", users[i].Name, users[i].Role).
			FirstOrCreate(&users[i]).Error
		if err != nil {
			return err
		}
	}

	products := []models.Product{
		// Beverages
		{Name: "Masala Tea", Price: decimal.NewFromInt(20), Category: "Beverages", IsActive: true},
		{Name: "Coffee", Price: decimal.NewFromInt(30), Category: "Beverages", IsActive: true},
		{Name: "Cold Coffee", Price: decimal.NewFromInt(50), Category: "Beverages", IsActive: true},
		{Name: "Fresh Lime Soda", Price: decimal.NewFromInt(40), Category: "Beverages", IsActive: true},

		// Snacks
		{Name: "Samosa", Price: decimal.NewFromInt(15), Category: "Snacks", IsActive: true},
		{Name: "Vada Pav", Price: decimal.NewFromInt(25), Category: "Snacks", IsActive: true},
		{Name: "Pav Bhaji", Price: decimal.NewFromInt(80), Category: "Snacks", IsActive: true},
		{Name: "Spring Roll", Price: decimal.NewFromInt(60), Category: "Snacks", IsActive: true},

		// Main Course
		{Name: "Dosa", Price: decimal.NewFromInt(50), Category: "Main Course", IsActive: true},
		{Name: "Idli (2 pcs)", Price: decimal.NewFromInt(40), Category: "Main Course", IsActive: true},
		{Name: "Uttapam", Price: decimal.NewFromInt(60), Category: "Main Course", IsActive: true},
		{Name: "Paneer Sandwich", Price: decimal.NewFromInt(70), Category: "Main Course", IsActive: true},
		{Name: "Veg Fried Rice", Price: decimal.NewFromInt(90), Category: "Main Course", IsActive: true},

		// Desserts
		{Name: "Gulab Jamun", Price: decimal.NewFromInt(30), Category: "Desserts", IsActive: true},
		{Name: "Ice Cream", Price: decimal.NewFromInt(40), Category: "Desserts", IsActive: true},
	}
	for i := range products {
		err := db.Where("name = ?", products[i].Name).FirstOrCreate(&products[i]).Error
		if err != nil {
			return err
		}
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		return err
	}
	if orderCount == 0 {
		order := models.Order{
			OrderNumber: fmt.Sprintf("ORD-%d-SEED", time.Now().UnixMilli()),
			TotalAmount: decimal.NewFromInt(170),
			PaymentMode: models.PaymentCash,
			Status:      models.StatusCompleted,
			Items: []models.OrderItem{
				{ProductID: products[0].ID, Quantity: 2, Price: products[0].Price}, // 2x Masala Tea
				{ProductID: products[4].ID, Quantity: 2, Price: products[4].Price}, // 2x Samosa
				{ProductID: products[8].ID, Quantity: 2, Price: products[8].Price}, // 2x Dosa
			},
		}
		if err := db.Create(&order).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d users and %d products", len(users), len(products))
	return nil
}
