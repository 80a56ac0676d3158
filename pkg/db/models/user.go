package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to shop once registration is complete
// (a default shipping and payment profile both set).
type User struct {
	ID                uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email             string     `gorm:"column:email;uniqueIndex;not null"`
	Username          string     `gorm:"column:username;not null"`
	PasswordHash      string     `gorm:"column:password_hash;not null"`
	DefaultShippingID *uuid.UUID `gorm:"column:default_shipping_id;type:uuid"`
	DefaultPaymentID  *uuid.UUID `gorm:"column:default_payment_id;type:uuid"`
	IsAdmin           bool       `gorm:"column:is_admin;not null;default:false"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
