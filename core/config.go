package core

import (
	"github.com/fox-one/pkg/store/db"
)

// Config cdp engine config
type Config struct {
	App    App           `json:"app"`
	DB     db.Config     `json:"db"`
	Oracle Oracle        `json:"oracle"`
	Params GenesisParams `json:"params"`
}

// App app config
type App struct {
	// ClientID the engine's own address
	ClientID string `json:"client_id"`
	// TreasuryID protocol treasury address
	TreasuryID string `json:"treasury_id"`
	// BackedAssetID synthetic asset id
	BackedAssetID string `json:"backed_asset_id"`
	// BackedDecimals synthetic asset decimal precision
	BackedDecimals int32 `json:"backed_decimals"`
	// LiquidatorSharePercent share of seized collateral paid to the
	// liquidator, in percent. Defaults to 100.
	LiquidatorSharePercent int64 `json:"liquidator_share_percent"`
}

// Oracle price oracle config
type Oracle struct {
	EndPoint string `json:"end_point"`
}

// GenesisParams liquidation parameters in their human-readable base,
// before normalization into the backed asset's decimal base.
type GenesisParams struct {
	Base                 int64 `json:"base"`
	MarginCallThreshold  int64 `json:"margin_call_threshold"`
	LiquidationThreshold int64 `json:"liquidation_threshold"`
	PriceDiscount        int64 `json:"price_discount"`
	CollateralPenalty    int64 `json:"collateral_penalty"`
}
