package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentProfile is an opaque reference to an externally tokenized
// payment method. No card data lives here.
type PaymentProfile struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null"`
	Label       string    `gorm:"column:label;not null"`
	ProviderRef string    `gorm:"column:provider_ref;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
