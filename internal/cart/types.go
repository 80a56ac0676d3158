package cart

import (
	"time"

	"github.com/google/uuid"
)

// Line is a value snapshot of a variant taken when it was added; later
// catalog edits do not reach into open carts.
type Line struct {
	VariantID      uuid.UUID `json:"variant_id"`
	ProductID      uuid.UUID `json:"product_id"`
	Title          string    `json:"title"`
	ProductTitle   string    `json:"product_title"`
	UnitPriceCents int       `json:"unit_price_cents"`
	DisplayPrice   string    `json:"display_price"`
	Quantity       int       `json:"quantity"`
}

// Cart is the session-scoped working set of lines.
type Cart struct {
	SessionID string    `json:"session_id"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Count returns the total quantity across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// SubtotalCents returns the sum of unit price times quantity over all lines.
func (c *Cart) SubtotalCents() int {
	total := 0
	for _, line := range c.Lines {
		total += line.UnitPriceCents * line.Quantity
	}
	return total
}

func (c *Cart) lineIndex(variantID uuid.UUID) int {
	for i, line := range c.Lines {
		if line.VariantID == variantID {
			return i
		}
	}
	return -1
}
