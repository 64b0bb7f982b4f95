package service

import (
	"context"
	"strings"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/pkg/apperror"
	"github.com/TemiKayode/wumikay-ventures/pkg/pagination"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput represents the create/update product input. Prices are
// decimal; they are converted to minor units for storage.
type ProductInput struct {
	Name              string
	Description       string
	Price             float64
	Quantity          int
	Category          string
	Barcode           *string
	LowStockThreshold int
	CostPrice         float64
	SellingPrice      float64
	Brand             string
}

func (in *ProductInput) validate() error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Product name is required"})
	}
	if in.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price cannot be negative"})
	}
	if in.Quantity < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "Quantity cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (in *ProductInput) apply(p *entity.Product) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = int64(in.Price * 100)
	p.Quantity = in.Quantity
	p.Category = in.Category
	p.Barcode = in.Barcode
	p.LowStockThreshold = in.LowStockThreshold
	p.CostPrice = int64(in.CostPrice * 100)
	p.SellingPrice = int64(in.SellingPrice * 100)
	p.Brand = in.Brand
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	product := &entity.Product{}
	input.apply(product)
	if product.LowStockThreshold <= 0 {
		product.LowStockThreshold = 10
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input *ProductInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	input.apply(product)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}
