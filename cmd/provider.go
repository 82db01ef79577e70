package cmd

import (
	"time"

	"cdp/core"
	cdpmath "cdp/internal/cdp"
	guardservice "cdp/service/guard"
	oracleservice "cdp/service/oracle"
	vaultservice "cdp/service/vault"
	"cdp/store/event"
	"cdp/store/ledger"
	"cdp/store/reserve"
	"cdp/store/token"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
	"github.com/shopspring/decimal"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

// provideSystem builds the engine identity and runs the parameter
// normalizer exactly once for this process.
func provideSystem(ver string) *core.System {
	genesis := core.LiquidationParams{
		Base:                 decimal.NewFromInt(cfg.Params.Base),
		MarginCallThreshold:  decimal.NewFromInt(cfg.Params.MarginCallThreshold),
		LiquidationThreshold: decimal.NewFromInt(cfg.Params.LiquidationThreshold),
		PriceDiscount:        decimal.NewFromInt(cfg.Params.PriceDiscount),
		CollateralPenalty:    decimal.NewFromInt(cfg.Params.CollateralPenalty),
	}

	params, err := cdpmath.NormalizeParams(genesis, cfg.App.BackedDecimals)
	if err != nil {
		panic(err)
	}

	share := cfg.App.LiquidatorSharePercent
	if share <= 0 || share > 100 {
		share = 100
	}

	return &core.System{
		ClientID:        cfg.App.ClientID,
		TreasuryID:      cfg.App.TreasuryID,
		BackedAssetID:   cfg.App.BackedAssetID,
		BackedDecimals:  cfg.App.BackedDecimals,
		LiquidatorShare: decimal.NewFromInt(share),
		Params:          params,
		Version:         ver,
	}
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideLedger(db *db.DB) core.Ledger {
	return ledger.New(db)
}

func provideReserveStore(db *db.DB) core.IReserveStore {
	return reserve.Cache(reserve.New(db), 5*time.Minute)
}

func provideTokenStore(db *db.DB) core.SyntheticAsset {
	return token.New(db, cfg.App.BackedDecimals)
}

func provideEventStore(db *db.DB) core.IEventStore {
	return event.New(db)
}

// ------------------service------------------------------------

func provideOracleService() core.PriceOracle {
	return oracleservice.New(provideConfig())
}

func provideVaultService(system *core.System, db *db.DB) core.IVaultService {
	return vaultservice.New(
		system,
		provideLedger(db),
		provideReserveStore(db),
		provideTokenStore(db),
		provideOracleService(),
		provideEventStore(db),
	)
}

func provideGuardService(system *core.System, db *db.DB) core.IGuardService {
	return guardservice.New(
		system,
		provideLedger(db),
		provideReserveStore(db),
		provideTokenStore(db),
		provideOracleService(),
		provideEventStore(db),
	)
}
