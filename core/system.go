package core

import (
	"github.com/shopspring/decimal"
)

// System runtime identity and normalized risk configuration of the
// engine. Built once at startup; the params field is already rescaled
// into the backed asset's decimal base and is never mutated afterwards.
type System struct {
	// ClientID the engine's own address, holder of the mint role
	ClientID string
	// TreasuryID receiver of the protocol share of seized collateral
	TreasuryID string
	// BackedAssetID asset id of the synthetic token
	BackedAssetID string
	// BackedDecimals decimal precision of the synthetic token
	BackedDecimals int32
	// LiquidatorShare percentage of seized collateral paid to the
	// liquidator, the remainder goes to the treasury
	LiquidatorShare decimal.Decimal
	// Params normalized liquidation parameters
	Params  LiquidationParams
	Version string
}
