package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TokenBalance synthetic asset balance
type TokenBalance struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string          `sql:"size:36;unique_index:token_owner_idx" json:"user_id"`
	Balance   decimal.Decimal `sql:"type:decimal(40,0)" json:"balance"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TokenAllowance spender allowance granted by owner
type TokenAllowance struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	OwnerID   string          `sql:"size:36;unique_index:token_allowance_idx" json:"owner_id"`
	SpenderID string          `sql:"size:36;unique_index:token_allowance_idx" json:"spender_id"`
	Amount    decimal.Decimal `sql:"type:decimal(40,0)" json:"amount"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TokenMinter address holding the mint role
type TokenMinter struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string    `sql:"size:36;unique_index:token_minter_idx" json:"user_id"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// SyntheticAsset the pegged token minted against collateral. Standard
// fungible-token surface plus the mint-role check.
type SyntheticAsset interface {
	Decimals(ctx context.Context) (int32, error)
	BalanceOf(ctx context.Context, userID string) (decimal.Decimal, error)
	Allowance(ctx context.Context, ownerID, spenderID string) (decimal.Decimal, error)
	Approve(ctx context.Context, ownerID, spenderID string, amount decimal.Decimal) error
	Mint(ctx context.Context, userID string, amount decimal.Decimal) error
	Burn(ctx context.Context, userID string, amount decimal.Decimal) error
	HasMintRole(ctx context.Context, userID string) (bool, error)
	GrantMintRole(ctx context.Context, userID string) error
}
