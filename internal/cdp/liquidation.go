package cdp

import (
	"cdp/core"
	"cdp/pkg/number"

	"github.com/shopspring/decimal"
)

// DiscountedPrice the price at which the liquidator effectively buys
// collateral: price * discount / base. The discount multiplies the
// market price rather than reducing it, so a 0.10 discount values the
// collateral at a tenth of the quote.
func DiscountedPrice(price decimal.Decimal, params core.LiquidationParams) decimal.Decimal {
	return number.DivFloor(price.Mul(params.PriceDiscount), params.Base)
}

// CostOfLiquidation sizes a seizure: the collateral amount forfeited by
// the liquidated user and the debt-equivalent cost the liquidator must
// cover, expressed in backed-asset decimal units regardless of which
// asset carries finer precision.
func CostOfLiquidation(reserveBalance, price decimal.Decimal, reserveDecimals, backedDecimals int32, params core.LiquidationParams) (cost, collateralSeized decimal.Decimal) {
	discounted := DiscountedPrice(price, params)
	collateralSeized = number.DivFloor(reserveBalance.Mul(params.CollateralPenalty), params.Base)

	cost = number.DivFloor(collateralSeized.Mul(discounted), PriceScale)

	if gap := reserveDecimals - backedDecimals; gap > 0 {
		cost = number.DivFloor(cost, number.Pow10(gap))
	} else if gap < 0 {
		cost = cost.Mul(number.Pow10(-gap))
	}

	return cost, collateralSeized
}
