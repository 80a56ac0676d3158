package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/homazon/homazon-backend/pkg/enums"
)

// Order is the immutable record of a completed purchase. The embedded
// line items are snapshot copies taken at commit time and stay
// independent of later catalog or stock changes.
type Order struct {
	ID                  uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID              uuid.UUID         `gorm:"column:user_id;type:uuid;not null"`
	Status              enums.OrderStatus `gorm:"column:status;not null;default:'placed'"`
	ChargeSubtotalCents int               `gorm:"column:charge_subtotal_cents;not null"`
	ChargeTaxCents      int               `gorm:"column:charge_tax_cents;not null;default:0"`
	ChargeShippingCents int               `gorm:"column:charge_shipping_cents;not null;default:0"`
	ChargeTotalCents    int               `gorm:"column:charge_total_cents;not null"`
	ShippingProfileID   uuid.UUID         `gorm:"column:shipping_profile_id;type:uuid;not null"`
	PaymentProfileID    uuid.UUID         `gorm:"column:payment_profile_id;type:uuid;not null"`
	PlacedAt            time.Time         `gorm:"column:placed_at;not null"`
	Items               []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
