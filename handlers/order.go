package handlers

import (
	"net/http"

	"restaurant-pos-api/models"
	"restaurant-pos-api/services"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type CreateOrderRequest struct {
	Items []struct {
		ProductID uint            `json:"productId"`
		Quantity  int             `json:"quantity"`
		Price     decimal.Decimal `json:"price"`
	} `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	PaymentMode models.PaymentMode `json:"paymentMode"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// List returns orders newest first, with items and products nested.
// ?status= applies an equality filter; the kitchen board polls this endpoint.
func (h *OrderHandler) List(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	orders, err := h.orders.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.CreateOrderInput{
		TotalAmount: req.TotalAmount,
		PaymentMode: req.PaymentMode,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.orders.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateStatus moves an order through its lifecycle from the kitchen board or
// the cashier terminal.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// StateMachineInfo documents the order lifecycle for clients.
func (h *OrderHandler) StateMachineInfo(c *gin.Context) {
	transitions := make([]gin.H, 0)
	for _, from := range statemachine.Sequence() {
		for _, to := range statemachine.ValidTransitionsFrom(from) {
			transitions = append(transitions, gin.H{"from": from, "to": to})
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"sequence":        statemachine.Sequence(),
		"transitions":     transitions,
		"terminal_states": []models.OrderStatus{models.StatusCompleted},
		"description":     "Order fulfillment lifecycle; transitions only move forward",
	})
}
