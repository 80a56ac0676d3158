package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homazon/homazon-backend/pkg/db/models"
	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
	"github.com/homazon/homazon-backend/pkg/money"
	"github.com/homazon/homazon-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes catalog management and lookup operations.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDTO, error)
	ListProducts(ctx context.Context, params pagination.Params) (*ProductListDTO, error)
	AddVariant(ctx context.Context, productID uuid.UUID, input VariantInput) (*VariantDTO, error)
	UpdateVariant(ctx context.Context, variantID uuid.UUID, input UpdateVariantInput) (*VariantDTO, error)
	DeleteVariant(ctx context.Context, variantID uuid.UUID) error
	GetVariantDetail(ctx context.Context, variantID uuid.UUID) (*VariantDetail, error)
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Title       string
	Description *string
	ImageURI    *string
	Variants    []VariantInput
}

// VariantInput captures a purchasable unit under a product.
type VariantInput struct {
	Title      string
	PriceCents int
	Stock      int
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	Title       *string
	Description *string
	ImageURI    *string
}

// UpdateVariantInput holds optional mutation values for a variant. Stock is
// absent on purpose: stock only moves through the inventory ledger.
type UpdateVariantInput struct {
	Title      *string
	PriceCents *int
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService constructs a catalog service instance.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product title required")
	}
	for i, variant := range input.Variants {
		if err := validateVariantInput(variant); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("variant %d", i))
		}
	}

	product := &models.Product{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		ImageURI:    input.ImageURI,
	}
	for _, variant := range input.Variants {
		product.Variants = append(product.Variants, models.ProductVariant{
			ID:         uuid.New(),
			ProductID:  product.ID,
			Title:      strings.TrimSpace(variant.Title),
			PriceCents: variant.PriceCents,
			Stock:      variant.Stock,
		})
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).CreateProduct(ctx, product)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating product")
	}
	return NewProductDTO(product), nil
}

func (s *service) UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product title required")
		}
		product.Title = title
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.ImageURI != nil {
		product.ImageURI = input.ImageURI
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating product")
	}
	return NewProductDTO(product), nil
}

func (s *service) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return err
	}
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).DeleteProduct(ctx, productID)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting product")
	}
	return nil
}

func (s *service) GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDTO, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return NewProductDTO(product), nil
}

func (s *service) ListProducts(ctx context.Context, params pagination.Params) (*ProductListDTO, error) {
	page, err := s.repo.ListProducts(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing products")
	}

	result := &ProductListDTO{
		Products:   make([]ProductDTO, 0, len(page.Products)),
		NextCursor: page.NextCursor,
	}
	for i := range page.Products {
		result.Products = append(result.Products, *NewProductDTO(&page.Products[i]))
	}
	return result, nil
}

func (s *service) AddVariant(ctx context.Context, productID uuid.UUID, input VariantInput) (*VariantDTO, error) {
	if err := validateVariantInput(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "variant")
	}
	if _, err := s.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	variant := &models.ProductVariant{
		ID:         uuid.New(),
		ProductID:  productID,
		Title:      strings.TrimSpace(input.Title),
		PriceCents: input.PriceCents,
		Stock:      input.Stock,
	}
	if err := s.repo.CreateVariant(ctx, variant); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating variant")
	}
	dto := NewVariantDTO(variant)
	return &dto, nil
}

func (s *service) UpdateVariant(ctx context.Context, variantID uuid.UUID, input UpdateVariantInput) (*VariantDTO, error) {
	variant, err := s.findVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant title required")
		}
		variant.Title = title
	}
	if input.PriceCents != nil {
		if *input.PriceCents < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant price must not be negative")
		}
		variant.PriceCents = *input.PriceCents
	}

	if err := s.repo.UpdateVariant(ctx, variant); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating variant")
	}
	dto := NewVariantDTO(variant)
	return &dto, nil
}

func (s *service) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	if _, err := s.findVariant(ctx, variantID); err != nil {
		return err
	}
	if err := s.repo.DeleteVariant(ctx, variantID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting variant")
	}
	return nil
}

func (s *service) GetVariantDetail(ctx context.Context, variantID uuid.UUID) (*VariantDetail, error) {
	variant, err := s.findVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}
	product, err := s.findProduct(ctx, variant.ProductID)
	if err != nil {
		return nil, err
	}
	return &VariantDetail{
		Variant:      *variant,
		ProductTitle: product.Title,
		DisplayPrice: money.DisplayPrice(variant.PriceCents),
	}, nil
}

func (s *service) findProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
	}
	return product, nil
}

func (s *service) findVariant(ctx context.Context, variantID uuid.UUID) (*models.ProductVariant, error) {
	if variantID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant id required")
	}
	variant, err := s.repo.FindVariantByID(ctx, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading variant")
	}
	return variant, nil
}

func validateVariantInput(input VariantInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("title required")
	}
	if input.PriceCents < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if input.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	return nil
}
