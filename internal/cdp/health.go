package cdp

import (
	"cdp/core"
	"cdp/pkg/number"

	"github.com/shopspring/decimal"
)

// HealthRatio normalized solvency ratio of a position, scaled by the
// normalized parameter base: maxMintable * base / debt. A ratio at the
// base value means the debt exactly matches what the reserve can back.
// Undefined for zero debt; callers must guard with a nonzero-debt
// precondition.
func HealthRatio(reserveBalance, debtBalance decimal.Decimal, factor core.CollateralFactor, price, scale decimal.Decimal) (decimal.Decimal, error) {
	if !debtBalance.IsPositive() {
		return decimal.Zero, core.ErrNoDebt
	}

	max := MaxMintable(reserveBalance, factor, price)

	return number.DivFloor(max.Mul(scale), debtBalance), nil
}

// StateOf classifies a health ratio against the normalized thresholds.
// Liquidatable wins over MarginCall when the ratio satisfies both.
func StateOf(ratio decimal.Decimal, params core.LiquidationParams) core.PositionState {
	switch {
	case ratio.LessThanOrEqual(params.LiquidationThreshold):
		return core.StateLiquidatable
	case ratio.LessThanOrEqual(params.MarginCallThreshold):
		return core.StateMarginCall
	default:
		return core.StateHealthy
	}
}
