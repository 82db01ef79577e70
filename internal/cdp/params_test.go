package cdp

import (
	"testing"

	"cdp/core"
	"cdp/pkg/number"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genesisParams() core.LiquidationParams {
	return core.LiquidationParams{
		Base:                 decimal.NewFromInt(100),
		MarginCallThreshold:  decimal.NewFromInt(100),
		LiquidationThreshold: decimal.NewFromInt(95),
		PriceDiscount:        decimal.NewFromInt(10),
		CollateralPenalty:    decimal.NewFromInt(75),
	}
}

func TestNormalizeParams(t *testing.T) {
	p, err := NormalizeParams(genesisParams(), 8)
	require.NoError(t, err)

	assert.Equal(t, "100000000", p.Base.String())
	assert.Equal(t, "100000000", p.MarginCallThreshold.String())
	assert.Equal(t, "95000000", p.LiquidationThreshold.String())
	assert.Equal(t, "10000000", p.PriceDiscount.String())
	assert.Equal(t, "75000000", p.CollateralPenalty.String())
}

func TestNormalizeParamsRoundTrip(t *testing.T) {
	// every field must equal original * 10^d / originalBase exactly
	in := genesisParams()
	for _, d := range []int32{1, 6, 8, 18} {
		p, err := NormalizeParams(in, d)
		require.NoError(t, err)

		scale := number.Pow10(d)
		assert.True(t, p.Base.Equal(scale))
		assert.True(t, p.LiquidationThreshold.Equal(number.DivFloor(in.LiquidationThreshold.Mul(scale), in.Base)))
		assert.True(t, p.CollateralPenalty.Equal(number.DivFloor(in.CollateralPenalty.Mul(scale), in.Base)))
	}
}

func TestNormalizeParamsRejectsBadInput(t *testing.T) {
	_, err := NormalizeParams(genesisParams(), 0)
	assert.Equal(t, ErrInvalidDecimals, err)

	zeroed := genesisParams()
	zeroed.PriceDiscount = decimal.Zero
	_, err = NormalizeParams(zeroed, 8)
	assert.Equal(t, core.ErrInvalidParams, err)

	flipped := genesisParams()
	flipped.LiquidationThreshold = decimal.NewFromInt(120)
	_, err = NormalizeParams(flipped, 8)
	assert.Equal(t, core.ErrThresholdOrder, err)
}
