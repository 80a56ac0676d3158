package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/homazon/homazon-backend/pkg/db/models"
	"github.com/homazon/homazon-backend/pkg/money"
)

// ProductDTO is the catalog payload returned to clients.
type ProductDTO struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	ImageURI    *string      `json:"image_uri,omitempty"`
	Variants    []VariantDTO `json:"variants"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// VariantDTO is a purchasable unit with its formatted price.
type VariantDTO struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	Title        string    `json:"title"`
	PriceCents   int       `json:"price_cents"`
	DisplayPrice string    `json:"display_price"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VariantDetail pairs a variant with its parent product's title; the cart
// snapshots these fields at add time.
type VariantDetail struct {
	Variant      models.ProductVariant
	ProductTitle string
	DisplayPrice string
}

// ProductListDTO is one page of catalog products.
type ProductListDTO struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		ImageURI:    product.ImageURI,
		Variants:    make([]VariantDTO, 0, len(product.Variants)),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	for _, variant := range product.Variants {
		dto.Variants = append(dto.Variants, NewVariantDTO(&variant))
	}
	return dto
}

// NewVariantDTO builds a variant DTO with its display price.
func NewVariantDTO(variant *models.ProductVariant) VariantDTO {
	return VariantDTO{
		ID:           variant.ID,
		ProductID:    variant.ProductID,
		Title:        variant.Title,
		PriceCents:   variant.PriceCents,
		DisplayPrice: money.DisplayPrice(variant.PriceCents),
		Stock:        variant.Stock,
		CreatedAt:    variant.CreatedAt,
		UpdatedAt:    variant.UpdatedAt,
	}
}
