package handlers

import (
	"net/http"

	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// ProductRequest is the body of POST and PUT /products. IsActive defaults to
// true when omitted on create.
type ProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	IsActive *bool           `json:"isActive"`
}

func (r ProductRequest) toInput() services.ProductInput {
	in := services.ProductInput{
		Name:     r.Name,
		Price:    r.Price,
		Category: r.Category,
		IsActive: true,
	}
	if r.IsActive != nil {
		in.IsActive = *r.IsActive
	}
	return in
}

// List returns the catalog; ?active=true restricts to orderable products.
func (h *ProductHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	products, err := h.products.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.products.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Update replaces all mutable fields of a product.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.products.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

type ToggleStatusRequest struct {
	IsActive bool `json:"isActive"`
}

// Toggle flips the active flag without touching other fields.
func (h *ProductHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ToggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.products.ToggleStatus(c.Request.Context(), id, req.IsActive)
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}
