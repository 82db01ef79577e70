package cdp

import (
	"testing"

	"cdp/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRatio(t *testing.T) {
	price := decimal.New(1, 8)
	scale := decimal.NewFromInt(100)

	// maxMintable = 200, debt = 150 -> ratio = 200*100/150 = 133
	ratio, err := HealthRatio(decimal.NewFromInt(300), decimal.NewFromInt(150), factor150(), price, scale)
	require.NoError(t, err)
	assert.Equal(t, "133", ratio.String())

	// at the edge: debt equals max mintable -> ratio equals the scale
	ratio, err = HealthRatio(decimal.NewFromInt(300), decimal.NewFromInt(200), factor150(), price, scale)
	require.NoError(t, err)
	assert.Equal(t, "100", ratio.String())
}

func TestHealthRatioZeroDebt(t *testing.T) {
	_, err := HealthRatio(decimal.NewFromInt(300), decimal.Zero, factor150(), decimal.New(1, 8), decimal.NewFromInt(100))
	assert.Equal(t, core.ErrNoDebt, err)
}

func TestHealthRatioMonotonic(t *testing.T) {
	scale := decimal.NewFromInt(100)
	debt := decimal.NewFromInt(150)

	t.Run("price up ratio up", func(t *testing.T) {
		prev := decimal.Zero
		for _, p := range []int64{5e7, 1e8, 2e8, 4e8} {
			ratio, err := HealthRatio(decimal.NewFromInt(300), debt, factor150(), decimal.NewFromInt(p), scale)
			require.NoError(t, err)
			assert.True(t, ratio.GreaterThanOrEqual(prev))
			prev = ratio
		}
	})

	t.Run("debt up ratio down", func(t *testing.T) {
		prev := decimal.NewFromInt(1 << 40)
		for _, d := range []int64{10, 100, 150, 200, 400} {
			ratio, err := HealthRatio(decimal.NewFromInt(300), decimal.NewFromInt(d), factor150(), decimal.New(1, 8), scale)
			require.NoError(t, err)
			assert.True(t, ratio.LessThanOrEqual(prev))
			prev = ratio
		}
	})
}

func TestStateOf(t *testing.T) {
	params := core.LiquidationParams{
		Base:                 decimal.NewFromInt(100),
		MarginCallThreshold:  decimal.NewFromInt(100),
		LiquidationThreshold: decimal.NewFromInt(95),
		PriceDiscount:        decimal.NewFromInt(10),
		CollateralPenalty:    decimal.NewFromInt(75),
	}

	cases := []struct {
		ratio int64
		want  core.PositionState
	}{
		{133, core.StateHealthy},
		{101, core.StateHealthy},
		{100, core.StateMarginCall},
		{96, core.StateMarginCall},
		{95, core.StateLiquidatable},
		// well under both thresholds: must resolve to liquidatable,
		// not merely margin call
		{60, core.StateLiquidatable},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, StateOf(decimal.NewFromInt(c.ratio), params), "ratio %d", c.ratio)
	}
}
