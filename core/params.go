package core

import (
	"errors"

	"github.com/shopspring/decimal"
)

// LiquidationParams risk parameters of the liquidation protocol. All
// threshold and penalty fields are integers scaled to Base. Created once
// in a human-readable base (e.g. 100) and rescaled exactly once into the
// backed asset's decimal base; after rescaling the value is immutable.
type LiquidationParams struct {
	// Base the scale every other field is expressed in
	Base decimal.Decimal `json:"base"`
	// MarginCallThreshold health ratio at or below which a margin call fires
	MarginCallThreshold decimal.Decimal `json:"margin_call_threshold"`
	// LiquidationThreshold health ratio at or below which the position is liquidatable
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
	// PriceDiscount fraction of the market price paid by the liquidator
	PriceDiscount decimal.Decimal `json:"price_discount"`
	// CollateralPenalty fraction of the reserve balance forfeited on seizure
	CollateralPenalty decimal.Decimal `json:"collateral_penalty"`
}

var (
	// ErrInvalidParams liquidation parameter out of range
	ErrInvalidParams = errors.New("liquidation params: all fields must be positive")
	// ErrThresholdOrder liquidation must be a stricter condition than margin call
	ErrThresholdOrder = errors.New("liquidation params: liquidation threshold above margin call threshold")
)

// Validate check params
func (p LiquidationParams) Validate() error {
	for _, d := range []decimal.Decimal{
		p.Base,
		p.MarginCallThreshold,
		p.LiquidationThreshold,
		p.PriceDiscount,
		p.CollateralPenalty,
	} {
		if !d.IsPositive() {
			return ErrInvalidParams
		}
	}

	if p.LiquidationThreshold.GreaterThan(p.MarginCallThreshold) {
		return ErrThresholdOrder
	}

	return nil
}
