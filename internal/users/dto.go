package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/homazon/homazon-backend/pkg/db/models"
)

// UserDTO is the account payload returned to clients.
type UserDTO struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	Username          string     `json:"username"`
	DefaultShippingID *uuid.UUID `json:"default_shipping_id,omitempty"`
	DefaultPaymentID  *uuid.UUID `json:"default_payment_id,omitempty"`
	IsAdmin           bool       `json:"is_admin"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ShippingProfileDTO is a delivery address owned by the user.
type ShippingProfileDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Line1      string    `json:"line1"`
	Line2      *string   `json:"line2,omitempty"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"is_default"`
}

// PaymentProfileDTO is an opaque tokenized payment method.
type PaymentProfileDTO struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	IsDefault bool      `json:"is_default"`
}

// NewUserDTO builds a DTO from the persisted model.
func NewUserDTO(user *models.User) *UserDTO {
	return &UserDTO{
		ID:                user.ID,
		Email:             user.Email,
		Username:          user.Username,
		DefaultShippingID: user.DefaultShippingID,
		DefaultPaymentID:  user.DefaultPaymentID,
		IsAdmin:           user.IsAdmin,
		CreatedAt:         user.CreatedAt,
	}
}

// NewShippingProfileDTO builds a DTO, flagging the user's default.
func NewShippingProfileDTO(profile *models.ShippingProfile, user *models.User) ShippingProfileDTO {
	return ShippingProfileDTO{
		ID:         profile.ID,
		Name:       profile.Name,
		Line1:      profile.Line1,
		Line2:      profile.Line2,
		City:       profile.City,
		State:      profile.State,
		PostalCode: profile.PostalCode,
		Country:    profile.Country,
		IsDefault:  user.DefaultShippingID != nil && *user.DefaultShippingID == profile.ID,
	}
}

// NewPaymentProfileDTO builds a DTO, flagging the user's default.
func NewPaymentProfileDTO(profile *models.PaymentProfile, user *models.User) PaymentProfileDTO {
	return PaymentProfileDTO{
		ID:        profile.ID,
		Label:     profile.Label,
		IsDefault: user.DefaultPaymentID != nil && *user.DefaultPaymentID == profile.ID,
	}
}
