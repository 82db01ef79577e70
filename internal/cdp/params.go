package cdp

import (
	"errors"

	"cdp/core"
	"cdp/pkg/number"
)

var (
	// ErrInvalidDecimals backed asset decimals must be positive
	ErrInvalidDecimals = errors.New("backed asset decimals must be positive")
)

// NormalizeParams rescales liquidation parameters from their human base
// into the backed asset's decimal base: every field becomes
// field * 10^backedDecimals / base, and the base itself becomes
// 10^backedDecimals. Must run exactly once per parameter set; a second
// pass would double-rescale.
func NormalizeParams(p core.LiquidationParams, backedDecimals int32) (core.LiquidationParams, error) {
	if backedDecimals <= 0 {
		return core.LiquidationParams{}, ErrInvalidDecimals
	}

	if err := p.Validate(); err != nil {
		return core.LiquidationParams{}, err
	}

	scale := number.Pow10(backedDecimals)

	return core.LiquidationParams{
		Base:                 scale,
		MarginCallThreshold:  number.DivFloor(p.MarginCallThreshold.Mul(scale), p.Base),
		LiquidationThreshold: number.DivFloor(p.LiquidationThreshold.Mul(scale), p.Base),
		PriceDiscount:        number.DivFloor(p.PriceDiscount.Mul(scale), p.Base),
		CollateralPenalty:    number.DivFloor(p.CollateralPenalty.Mul(scale), p.Base),
	}, nil
}
