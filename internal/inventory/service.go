package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
)

// Service is the inventory ledger: every stock mutation in the system goes
// through Adjust. Negative results are returned, not rejected, because the
// same call compensates failed checkouts with a positive delta.
type Service interface {
	Adjust(ctx context.Context, variantID uuid.UUID, delta int) (int, error)
	Stock(ctx context.Context, variantID uuid.UUID) (int, error)
}

type service struct {
	repo Repository
}

// NewService wires an inventory ledger with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Adjust(ctx context.Context, variantID uuid.UUID, delta int) (int, error) {
	if variantID == uuid.Nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "variant id required")
	}

	stock, err := s.repo.Adjust(ctx, variantID, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("stock record %s missing", variantID))
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adjusting stock")
	}
	return stock, nil
}

func (s *service) Stock(ctx context.Context, variantID uuid.UUID) (int, error) {
	if variantID == uuid.Nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "variant id required")
	}

	stock, err := s.repo.Stock(ctx, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("stock record %s missing", variantID))
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading stock")
	}
	return stock, nil
}
