package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// PositionState liquidation protocol state of an evaluated position
type PositionState int

const (
	// StateHealthy health ratio above the margin call threshold
	StateHealthy PositionState = iota
	// StateMarginCall notification state preceding liquidation eligibility
	StateMarginCall
	// StateLiquidatable health ratio at or below the liquidation threshold
	StateLiquidatable
)

func (s PositionState) String() string {
	switch s {
	case StateHealthy:
		return "healthy"
	case StateMarginCall:
		return "margin_call"
	case StateLiquidatable:
		return "liquidatable"
	default:
		return "unknown"
	}
}

// Seizure the sizing of an executed liquidation
type Seizure struct {
	// Cost debt-asset amount the liquidator pays, in backed decimals
	Cost decimal.Decimal `json:"cost"`
	// CollateralSeized reserve amount debited from the liquidated user
	CollateralSeized decimal.Decimal `json:"collateral_seized"`
	// LiquidatorAmount share of the seized collateral paid to the liquidator
	LiquidatorAmount decimal.Decimal `json:"liquidator_amount"`
	// TreasuryAmount protocol retention
	TreasuryAmount decimal.Decimal `json:"treasury_amount"`
}

// IGuardService the liquidation state machine. Entry precondition for
// any evaluation: both reserve and debt balances strictly positive; a
// user outside that is not part of the liquidation protocol at all.
type IGuardService interface {
	Evaluate(ctx context.Context, userID, reserveAsset string) (PositionState, decimal.Decimal, error)
	Liquidate(ctx context.Context, liquidatorID, userID, reserveAsset string) (*Seizure, error)
}
