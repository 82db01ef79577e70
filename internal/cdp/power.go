package cdp

import (
	"cdp/core"
	"cdp/pkg/number"

	"github.com/shopspring/decimal"
)

// PriceScale the implicit scale of every oracle quote: reserve-asset
// value in debt-asset terms, times 1e8.
var PriceScale = decimal.New(1, 8)

// MaxMintable total debt the reserve balance can back at the given
// price. The reserve is first down-scaled by the collateralization
// requirement, then valued at the oracle price. Multiply before divide
// so truncation loss stays minimal and reproducible.
func MaxMintable(reserveBalance decimal.Decimal, factor core.CollateralFactor, price decimal.Decimal) decimal.Decimal {
	effective := number.DivFloor(reserveBalance.Mul(factor.Denominator), factor.Numerator)
	return number.DivFloor(effective.Mul(price), PriceScale)
}

// RemainingMintingPower additional debt the user may safely mint.
// Zero when there is no reserve, and zero when the existing debt
// already exceeds what the reserve can back.
func RemainingMintingPower(reserveBalance, debtBalance decimal.Decimal, factor core.CollateralFactor, price decimal.Decimal) decimal.Decimal {
	if reserveBalance.IsZero() {
		return decimal.Zero
	}

	max := MaxMintable(reserveBalance, factor, price)
	if debtBalance.GreaterThan(max) {
		return decimal.Zero
	}

	return max.Sub(debtBalance)
}
