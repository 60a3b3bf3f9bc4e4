package services

import (
	"context"

	"storefront-api/internal/models"
)

// CatalogStore is the catalog persistence surface.
type CatalogStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByName(ctx context.Context, name string) ([]models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindActive(ctx context.Context) ([]models.Product, error)
	FindByPriceRange(ctx context.Context, min, max float64) ([]models.Product, error)
	Update(ctx context.Context, id, name, description string, price float64) (*models.Product, error)
	SetActive(ctx context.Context, id string, active bool) (*models.Product, error)
}

// PriceRangeInput is the search-by-price request body. Pointers distinguish
// missing bounds from zero.
type PriceRangeInput struct {
	MinPrice *float64 `json:"minPrice"`
	MaxPrice *float64 `json:"maxPrice"`
}

// ProductService implements catalog management: CRUD, activation state and
// search.
type ProductService struct {
	products CatalogStore
}

func NewProductService(products CatalogStore) *ProductService {
	return &ProductService{products: products}
}

// Create adds a product. Names must be unique; the price must be present and
// non-negative.
func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	if in.Name == "" || in.Description == "" || in.Price == nil {
		return nil, models.ErrInvalidInput
	}
	if *in.Price < 0 {
		return nil, models.ErrInvalidPrice
	}

	existing, err := s.products.FindByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, models.ErrDuplicateName
	}

	product := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) ListActive(ctx context.Context) ([]models.Product, error) {
	return s.products.FindActive(ctx)
}

// Update overwrites the writable fields of a product.
func (s *ProductService) Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	if in.Name == "" || in.Description == "" || in.Price == nil {
		return nil, models.ErrInvalidInput
	}
	if *in.Price < 0 {
		return nil, models.ErrInvalidPrice
	}
	return s.products.Update(ctx, id, in.Name, in.Description, *in.Price)
}

// Archive deactivates a product. Archiving an archived product is a conflict;
// the operation pair is otherwise idempotent-guarded.
func (s *ProductService) Archive(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, models.ErrAlreadyArchived
	}
	return s.products.SetActive(ctx, id, false)
}

// Activate re-enables an archived product.
func (s *ProductService) Activate(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.IsActive {
		return nil, models.ErrAlreadyActivated
	}
	return s.products.SetActive(ctx, id, true)
}

// SearchByName returns products whose name matches exactly, case sensitive.
func (s *ProductService) SearchByName(ctx context.Context, name string) ([]models.Product, error) {
	if name == "" {
		return nil, models.ErrInvalidInput
	}

	products, err := s.products.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, models.ErrProductNotFound
	}
	return products, nil
}

// SearchByPrice returns products priced within [min, max] inclusive.
func (s *ProductService) SearchByPrice(ctx context.Context, in PriceRangeInput) ([]models.Product, error) {
	if in.MinPrice == nil || in.MaxPrice == nil {
		return nil, models.ErrInvalidInput
	}
	if *in.MinPrice > *in.MaxPrice {
		return nil, models.ErrInvalidInput
	}

	products, err := s.products.FindByPriceRange(ctx, *in.MinPrice, *in.MaxPrice)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, models.ErrNoProductsFound
	}
	return products, nil
}
