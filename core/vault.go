package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// IVaultService mint/payback entry points. All preconditions are
// validated before any ledger or token mutation; a failed call leaves
// no partial state behind.
type IVaultService interface {
	Mint(ctx context.Context, userID, reserveAsset string, amount decimal.Decimal) error
	Payback(ctx context.Context, userID, reserveAsset string, amount decimal.Decimal) error
	RemainingMintingPower(ctx context.Context, userID, reserveAsset string) (decimal.Decimal, error)
	HealthRatio(ctx context.Context, userID, reserveAsset string) (decimal.Decimal, error)
}
