package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/homazon/homazon-backend/pkg/db/models"
	"github.com/homazon/homazon-backend/pkg/money"
)

// OrderDTO is the order payload returned to clients.
type OrderDTO struct {
	ID                uuid.UUID     `json:"id"`
	Status            string        `json:"status"`
	SubtotalCents     int           `json:"subtotal_cents"`
	TaxCents          int           `json:"tax_cents"`
	ShippingCents     int           `json:"shipping_cents"`
	TotalCents        int           `json:"total_cents"`
	DisplayTotal      string        `json:"display_total"`
	ShippingProfileID uuid.UUID     `json:"shipping_profile_id"`
	PaymentProfileID  uuid.UUID     `json:"payment_profile_id"`
	Items             []LineItemDTO `json:"items"`
	PlacedAt          time.Time     `json:"placed_at"`
}

// LineItemDTO is one snapshot line inside an order.
type LineItemDTO struct {
	ID             uuid.UUID `json:"id"`
	VariantID      uuid.UUID `json:"variant_id"`
	ProductID      uuid.UUID `json:"product_id"`
	Title          string    `json:"title"`
	UnitPriceCents int       `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	LineTotalCents int       `json:"line_total_cents"`
}

// OrderListDTO is one page of a user's order history.
type OrderListDTO struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// NewOrderDTO builds a DTO from the persisted model.
func NewOrderDTO(order *models.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:                order.ID,
		Status:            order.Status.String(),
		SubtotalCents:     order.ChargeSubtotalCents,
		TaxCents:          order.ChargeTaxCents,
		ShippingCents:     order.ChargeShippingCents,
		TotalCents:        order.ChargeTotalCents,
		DisplayTotal:      money.DisplayPrice(order.ChargeTotalCents),
		ShippingProfileID: order.ShippingProfileID,
		PaymentProfileID:  order.PaymentProfileID,
		Items:             make([]LineItemDTO, 0, len(order.Items)),
		PlacedAt:          order.PlacedAt,
	}
	for _, item := range order.Items {
		dto.Items = append(dto.Items, LineItemDTO{
			ID:             item.ID,
			VariantID:      item.VariantID,
			ProductID:      item.ProductID,
			Title:          item.Title,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
			LineTotalCents: item.LineTotalCents,
		})
	}
	return dto
}
