// internal/core/domain/sku.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sku is a unique product group. Items are physical units belonging to a Sku.
type Sku struct {
	ID          uuid.UUID       `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	BasePrice   decimal.Decimal `json:"base_price"`
	ActualPrice decimal.Decimal `json:"actual_price"`
	Count       int             `json:"count"`
	IsHidden    bool            `json:"is_hidden"`
	DiscountID  *uuid.UUID      `json:"discount_id,omitempty"`
}

// NewSku creates a Sku with zero prices. Used when an acceptance references a
// sku id that does not exist yet.
func NewSku(id uuid.UUID) *Sku {
	zero := decimal.NewFromInt(0)
	return &Sku{
		ID:          id,
		CreatedAt:   time.Now().UTC(),
		BasePrice:   zero,
		ActualPrice: zero,
	}
}

// DiscountedPrice applies a percentage discount to the sku's base price,
// rounded to 2 decimals: base * (100 - pct) / 100.
func (s *Sku) DiscountedPrice(percentage int) decimal.Decimal {
	coefficient := decimal.NewFromInt(int64(100 - percentage)).
		Div(decimal.NewFromInt(100))
	return s.BasePrice.Mul(coefficient).Round(2)
}

// Validate performs domain validation on the sku.
func (s *Sku) Validate() error {
	if s.BasePrice.IsNegative() {
		return NewBusinessError("base_price cannot be negative")
	}
	if s.ActualPrice.IsNegative() {
		return NewBusinessError("actual_price cannot be negative")
	}
	return nil
}
