package cart

import (
	"time"

	"github.com/homazon/homazon-backend/pkg/money"
)

// CartDTO is the cart payload returned to clients.
type CartDTO struct {
	SessionID       string    `json:"session_id"`
	Lines           []Line    `json:"lines"`
	TotalItems      int       `json:"total_items"`
	SubtotalCents   int       `json:"subtotal_cents"`
	DisplaySubtotal string    `json:"display_subtotal"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewCartDTO builds a DTO with derived totals.
func NewCartDTO(cart *Cart) *CartDTO {
	lines := cart.Lines
	if lines == nil {
		lines = []Line{}
	}
	return &CartDTO{
		SessionID:       cart.SessionID,
		Lines:           lines,
		TotalItems:      cart.Count(),
		SubtotalCents:   cart.SubtotalCents(),
		DisplaySubtotal: money.DisplayPrice(cart.SubtotalCents()),
		UpdatedAt:       cart.UpdatedAt,
	}
}
