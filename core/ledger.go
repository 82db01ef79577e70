package core

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// PositionToken a user's fungible balance on one ledger position. Balances
// are integers in the position asset's smallest unit. Rows are never
// deleted; a zero balance is a valid terminal state.
type PositionToken struct {
	ID         uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID     string          `sql:"size:36;unique_index:position_owner_idx" json:"user_id"`
	PositionID string          `sql:"size:36;unique_index:position_owner_idx" json:"position_id"`
	Balance    decimal.Decimal `sql:"type:decimal(40,0)" json:"balance"`
	Data       types.JSONText  `sql:"type:varchar(1024)" json:"data,omitempty"`
	Version    int64           `sql:"default:0" json:"version"`
	CreatedAt  time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Position a snapshot of a user's reserve and debt balances for one
// reserve/debt pair. Read from the ledger, never owned by this engine.
type Position struct {
	ReserveBalance decimal.Decimal `json:"reserve_balance"`
	DebtBalance    decimal.Decimal `json:"debt_balance"`
}

// Ledger the external accounting service tracking per-user per-position
// balances. Every mutation is atomic; a mutation reading a stale balance
// fails its precondition instead of double-applying.
type Ledger interface {
	BalanceOf(ctx context.Context, userID, positionID string) (decimal.Decimal, error)
	// Resolve reads a user's reserve and debt balances in one snapshot.
	Resolve(ctx context.Context, userID, reservePositionID, debtPositionID string) (*Position, error)
	Mint(ctx context.Context, userID, positionID string, amount decimal.Decimal, data []byte) error
	Burn(ctx context.Context, userID, positionID string, amount decimal.Decimal) error
	// Holders lists users with a positive balance on the position.
	Holders(ctx context.Context, positionID string) ([]string, error)
}
