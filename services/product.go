package services

import (
	"context"
	"errors"
	"strings"

	"restaurant-pos-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductService owns catalog CRUD and the active/inactive toggle.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ProductInput carries the mutable fields of a product.
type ProductInput struct {
	Name     string
	Price    decimal.Decimal
	Category string
	IsActive bool
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return ValidationError("Name, price, and category are required")
	}
	if !in.Price.IsPositive() {
		return ValidationError("Price must be greater than 0")
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product := models.Product{
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
		IsActive: in.IsActive,
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Update replaces all mutable fields of the product.
func (s *ProductService) Update(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Price = in.Price
	product.Category = in.Category
	product.IsActive = in.IsActive
	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// ToggleStatus flips the orderable flag; no validation beyond existence.
func (s *ProductService) ToggleStatus(ctx context.Context, id uint, active bool) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(product).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// List returns the catalog ordered by category then name.
func (s *ProductService) List(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	query := s.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	products := make([]models.Product, 0)
	if err := query.Order("category asc, name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
