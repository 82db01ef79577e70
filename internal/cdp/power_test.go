package cdp

import (
	"testing"

	"cdp/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func factor150() core.CollateralFactor {
	return core.CollateralFactor{
		Numerator:   decimal.NewFromInt(150),
		Denominator: decimal.NewFromInt(100),
	}
}

func TestRemainingMintingPower(t *testing.T) {
	price := decimal.New(1, 8) // 1:1

	t.Run("fresh position", func(t *testing.T) {
		// 150% collateralization: 300 reserve backs 200 debt
		power := RemainingMintingPower(decimal.NewFromInt(300), decimal.Zero, factor150(), price)
		assert.Equal(t, "200", power.String())
	})

	t.Run("partially used", func(t *testing.T) {
		power := RemainingMintingPower(decimal.NewFromInt(300), decimal.NewFromInt(150), factor150(), price)
		assert.Equal(t, "50", power.String())
	})

	t.Run("zero reserve", func(t *testing.T) {
		power := RemainingMintingPower(decimal.Zero, decimal.NewFromInt(500), factor150(), price)
		assert.True(t, power.IsZero())
	})

	t.Run("over extended", func(t *testing.T) {
		power := RemainingMintingPower(decimal.NewFromInt(300), decimal.NewFromInt(201), factor150(), price)
		assert.True(t, power.IsZero())
	})
}

func TestRemainingMintingPowerNoOverMint(t *testing.T) {
	price := decimal.New(3, 8)
	for _, debt := range []int64{0, 1, 100, 599, 600, 601} {
		reserve := decimal.NewFromInt(300)
		max := MaxMintable(reserve, factor150(), price)
		power := RemainingMintingPower(reserve, decimal.NewFromInt(debt), factor150(), price)
		assert.True(t, power.Add(decimal.NewFromInt(debt)).LessThanOrEqual(max) || power.IsZero(),
			"power + debt must never exceed max mintable")
	}
}

func TestRemainingMintingPowerMonotonicInPrice(t *testing.T) {
	reserve := decimal.NewFromInt(1000)
	debt := decimal.NewFromInt(100)

	prev := decimal.Zero
	for _, p := range []int64{5e7, 1e8, 15e7, 2e8, 1e10} {
		power := RemainingMintingPower(reserve, debt, factor150(), decimal.NewFromInt(p))
		assert.True(t, power.GreaterThanOrEqual(prev), "rising price must not shrink minting power")
		prev = power
	}
}

func TestMaxMintableFloorsEachStep(t *testing.T) {
	// 100 * 100 / 150 = 66 (floored), then 66 * price / 1e8
	factor := factor150()
	max := MaxMintable(decimal.NewFromInt(100), factor, decimal.New(1, 8))
	assert.Equal(t, "66", max.String())
}
