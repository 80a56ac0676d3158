package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/homazon/homazon-backend/internal/catalog"
	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
)

type variantReader interface {
	GetVariantDetail(ctx context.Context, variantID uuid.UUID) (*catalog.VariantDetail, error)
}

// Service exposes session cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string) (*CartDTO, error)
	Add(ctx context.Context, sessionID string, variantID uuid.UUID, quantity int) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, sessionID string, variantID uuid.UUID, quantity int) (*CartDTO, error)
	Remove(ctx context.Context, sessionID string, variantID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, sessionID string) error
	Lines(ctx context.Context, sessionID string) ([]Line, error)
}

type service struct {
	store   Store
	catalog variantReader
}

// NewService wires a cart service with its store and catalog reader.
func NewService(store Store, catalogSvc variantReader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog reader required")
	}
	return &service{store: store, catalog: catalogSvc}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*CartDTO, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewCartDTO(cart), nil
}

func (s *service) Add(ctx context.Context, sessionID string, variantID uuid.UUID, quantity int) (*CartDTO, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if idx := cart.lineIndex(variantID); idx >= 0 {
		cart.Lines[idx].Quantity += quantity
	} else {
		detail, err := s.catalog.GetVariantDetail(ctx, variantID)
		if err != nil {
			return nil, err
		}
		cart.Lines = append(cart.Lines, Line{
			VariantID:      detail.Variant.ID,
			ProductID:      detail.Variant.ProductID,
			Title:          detail.Variant.Title,
			ProductTitle:   detail.ProductTitle,
			UnitPriceCents: detail.Variant.PriceCents,
			DisplayPrice:   detail.DisplayPrice,
			Quantity:       quantity,
		})
	}

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return NewCartDTO(cart), nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, variantID uuid.UUID, quantity int) (*CartDTO, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := cart.lineIndex(variantID)
	if idx < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not in cart")
	}
	if quantity == 0 {
		cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
	} else {
		cart.Lines[idx].Quantity = quantity
	}

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return NewCartDTO(cart), nil
}

func (s *service) Remove(ctx context.Context, sessionID string, variantID uuid.UUID) (*CartDTO, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := cart.lineIndex(variantID)
	if idx < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not in cart")
	}
	cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return NewCartDTO(cart), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	return s.store.Delete(ctx, sessionID)
}

func (s *service) Lines(ctx context.Context, sessionID string) ([]Line, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return cart.Lines, nil
}

func (s *service) load(ctx context.Context, sessionID string) (*Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	return s.store.Load(ctx, sessionID)
}
