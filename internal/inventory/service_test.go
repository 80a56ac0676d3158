package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
)

type stubRepo struct {
	stock map[uuid.UUID]int
	fail  error
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) Adjust(ctx context.Context, variantID uuid.UUID, delta int) (int, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	current, ok := s.stock[variantID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	s.stock[variantID] = current + delta
	return current + delta, nil
}

func (s *stubRepo) Stock(ctx context.Context, variantID uuid.UUID) (int, error) {
	current, ok := s.stock[variantID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return current, nil
}

func TestServiceAdjustMapsMissingRecordToDependency(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubRepo{stock: map[uuid.UUID]int{}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Adjust(context.Background(), uuid.New(), -1)
	if !pkgerrors.Is(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestServiceAdjustMapsWriteFailureToDependency(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubRepo{fail: fmt.Errorf("connection reset")})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Adjust(context.Background(), uuid.New(), -1)
	if !pkgerrors.Is(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestServiceAdjustRejectsNilVariant(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubRepo{stock: map[uuid.UUID]int{}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Adjust(context.Background(), uuid.Nil, -1)
	if !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceAdjustPassesThroughNegativeStock(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc, err := NewService(&stubRepo{stock: map[uuid.UUID]int{id: 2}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	stock, err := svc.Adjust(context.Background(), id, -3)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if stock != -1 {
		t.Fatalf("expected stock -1, got %d", stock)
	}
}

func TestNewServiceRequiresRepository(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil repository")
	}
}
