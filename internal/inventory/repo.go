package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes the single atomic primitive the stock ledger offers:
// delta-adjust-and-return for one variant row. No cross-row atomicity.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Adjust(ctx context.Context, variantID uuid.UUID, delta int) (int, error)
	Stock(ctx context.Context, variantID uuid.UUID) (int, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an inventory repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// Adjust applies delta to the variant's stock and returns the resulting value.
// The read-modify-write happens in a single UPDATE so concurrent adjusts on the
// same row serialize at the database; callers own any non-negativity policy.
func (r *repository) Adjust(ctx context.Context, variantID uuid.UUID, delta int) (int, error) {
	var stock int
	res := r.db.WithContext(ctx).Raw(
		`UPDATE product_variants SET stock = stock + ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? RETURNING stock`,
		delta, variantID,
	).Scan(&stock)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return stock, nil
}

func (r *repository) Stock(ctx context.Context, variantID uuid.UUID) (int, error) {
	var stock int
	res := r.db.WithContext(ctx).Raw(
		`SELECT stock FROM product_variants WHERE id = ?`, variantID,
	).Scan(&stock)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return stock, nil
}
