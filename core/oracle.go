package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceQuote a signed price quote for one reserve asset in debt-asset
// terms, scaled 1e8. Fetched freshly per operation; never cached across
// calls because staleness is a solvency risk.
type PriceQuote struct {
	AssetID string          `json:"asset_id,omitempty"`
	Symbol  string          `json:"symbol,omitempty"`
	Price   decimal.Decimal `json:"price,omitempty"`
}

// PriceOracle price feed adapter. A zero or missing price is a hard
// error, never silently defaulted.
type PriceOracle interface {
	LatestPrice(ctx context.Context, assetID string) (decimal.Decimal, error)
}
