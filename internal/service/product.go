package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"changelog/internal/domain/models"
	"changelog/internal/domain/repositories"
	"changelog/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxProductNameLength = 255
	maxProductPrice      = 999999
)

// productService implements the ProductService interface.
// Products are the chain root: the owner filter lives in the repository
// queries themselves, so no separate authorization step is needed here.
type productService struct {
	products repositories.ProductRepository
	logger   *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(
	products repositories.ProductRepository,
	logger *slog.Logger,
) services.ProductService {
	return &productService{
		products: products,
		logger:   logger,
	}
}

// Create creates a product owned by the caller. The owner comes from the
// authenticated identity, never from the request body.
func (s *productService) Create(ctx context.Context, identity models.Identity, req *services.CreateProductRequest) (*models.Product, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:   strings.TrimSpace(req.Name),
		Price:  req.Price,
		UserID: identity.ID,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		"id", product.ID,
		"name", product.Name,
		"user_id", identity.ID,
	)

	return product, nil
}

// List retrieves the caller's products
func (s *productService) List(ctx context.Context, identity models.Identity) ([]models.Product, error) {
	return s.products.List(ctx, identity.ID)
}

// Get retrieves one of the caller's products
func (s *productService) Get(ctx context.Context, id string, identity models.Identity) (*models.Product, error) {
	return s.products.GetByID(ctx, id, identity.ID)
}

// Update applies mutable fields (name, price) via a compound id+owner filter
func (s *productService) Update(ctx context.Context, id string, identity models.Identity, req *services.UpdateProductRequest) (*models.Product, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, id, identity.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", "id", product.ID, "user_id", identity.ID)

	return product, nil
}

// Delete removes one of the caller's products
func (s *productService) Delete(ctx context.Context, id string, identity models.Identity) error {
	if err := s.products.Delete(ctx, id, identity.ID); err != nil {
		return err
	}

	s.logger.Info("product deleted", "id", id, "user_id", identity.ID)

	return nil
}

// validateCreateRequest validates a create product request
func (s *productService) validateCreateRequest(req *services.CreateProductRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required.Error("Name is required"),
			validation.Length(2, maxProductNameLength).Error("Name must be between 2 and 255 characters"),
		),
		validation.Field(&req.Price,
			validation.Required.Error("Price is required"),
			validation.Min(1).Error("Price must be between 1 and 999999"),
			validation.Max(maxProductPrice).Error("Price must be between 1 and 999999"),
		),
	)
}

// validateUpdateRequest validates an update product request
func (s *productService) validateUpdateRequest(req *services.UpdateProductRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.NilOrNotEmpty,
			validation.Length(2, maxProductNameLength).Error("Name must be between 2 and 255 characters"),
		),
		validation.Field(&req.Price, validation.By(checkPriceRange)),
	)
}

// checkPriceRange bounds an optional price. Min/Max treat a zero value as
// absent, so a pointer to 0 needs an explicit check.
func checkPriceRange(value interface{}) error {
	price, _ := value.(*int)
	if price == nil {
		return nil
	}
	if *price < 1 || *price > maxProductPrice {
		return errors.New("Price must be between 1 and 999999")
	}
	return nil
}
