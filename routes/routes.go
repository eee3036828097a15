package routes

import (
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires every endpoint to its handler. The database handle is
// passed down explicitly so tests can substitute an in-memory store.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	products := handlers.NewProductHandler(services.NewProductService(db))
	orders := handlers.NewOrderHandler(services.NewOrderService(db))
	reports := handlers.NewReportHandler(services.NewReportService(db))

	// ── Catalog (cashier admin) ────────────────────────────────────
	r.GET("/products", products.List)
	r.POST("/products", products.Create)
	r.GET("/products/:id", products.Get)
	r.PUT("/products/:id", products.Update)
	r.PATCH("/products/:id", products.Toggle)

	// ── Orders (cashier terminal + kitchen board) ──────────────────
	r.GET("/orders", orders.List)
	r.POST("/orders", orders.Create)
	r.GET("/orders/:id", orders.Get)
	r.PATCH("/orders/:id", orders.UpdateStatus)

	// ── Reports ────────────────────────────────────────────────────
	reportGroup := r.Group("/reports")
	{
		reportGroup.GET("/daily-sales", reports.DailySales)
		reportGroup.GET("/item-sales", reports.ItemSales)
		reportGroup.GET("/payment-summary", reports.PaymentSummary)
	}

	// Lifecycle documentation (great for docs/Postman)
	r.GET("/state-machine", orders.StateMachineInfo)
}
