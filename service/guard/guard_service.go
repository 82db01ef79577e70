package guard

import (
	"context"
	"fmt"

	"cdp/core"
	"cdp/internal/cdp"
	"cdp/pkg/id"
	"cdp/pkg/number"

	"github.com/fox-one/pkg/logger"
	foxuuid "github.com/fox-one/pkg/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type guardService struct {
	system   *core.System
	ledger   core.Ledger
	reserves core.IReserveStore
	token    core.SyntheticAsset
	oracle   core.PriceOracle
	events   core.IEventStore
}

// New new guard service
func New(
	system *core.System,
	ledger core.Ledger,
	reserves core.IReserveStore,
	token core.SyntheticAsset,
	oracle core.PriceOracle,
	events core.IEventStore,
) core.IGuardService {
	return &guardService{
		system:   system,
		ledger:   ledger,
		reserves: reserves,
		token:    token,
		oracle:   oracle,
		events:   events,
	}
}

// Evaluate classifies the position. A margin call emits a notification
// event and changes nothing else; a user with a zero balance on either
// side is outside the liquidation protocol and fails with no balance.
func (s *guardService) Evaluate(ctx context.Context, userID, reserveAsset string) (core.PositionState, decimal.Decimal, error) {
	state, ratio, _, _, err := s.evaluate(ctx, userID, reserveAsset)
	if err != nil {
		return core.StateHealthy, decimal.Zero, err
	}

	if state == core.StateMarginCall {
		if err := s.notifyMarginCall(ctx, userID, reserveAsset, ratio); err != nil {
			return state, ratio, err
		}
	}

	return state, ratio, nil
}

// Liquidate executes a seizure for a liquidatable position. The
// liquidator's allowance must cover the full cost; no partial
// liquidation is attempted.
func (s *guardService) Liquidate(ctx context.Context, liquidatorID, userID, reserveAsset string) (*core.Seizure, error) {
	log := logger.FromContext(ctx).WithField("service", "guard")

	state, _, position, price, err := s.evaluate(ctx, userID, reserveAsset)
	if err != nil {
		return nil, err
	}
	if state != core.StateLiquidatable {
		return nil, core.ErrNotLiquidatable
	}

	reserveDecimals, err := s.reserves.ReserveAssetDecimals(ctx, reserveAsset)
	if err != nil {
		return nil, err
	}

	cost, seized := cdp.CostOfLiquidation(position.ReserveBalance, price, reserveDecimals, s.system.BackedDecimals, s.system.Params)

	allowance, err := s.token.Allowance(ctx, liquidatorID, s.system.ClientID)
	if err != nil {
		return nil, err
	}
	if allowance.LessThan(cost) {
		return nil, core.ErrInsufficientAllowance
	}

	reservePos := id.ReservePositionID(reserveAsset, s.system.BackedAssetID)
	debtPos := id.DebtPositionID(reserveAsset, s.system.BackedAssetID)

	liquidatorAmount := number.DivFloor(seized.Mul(s.system.LiquidatorShare), hundred)
	treasuryAmount := seized.Sub(liquidatorAmount)

	trace := id.TraceIDFrom(fmt.Sprintf("liquidate-%s-%s-%s", userID, liquidatorID, reservePos))

	// the ledger serializes concurrent seizures: a second attempt on a
	// stale snapshot fails this debit instead of double-seizing
	if err := s.ledger.Burn(ctx, userID, reservePos, seized); err != nil {
		return nil, err
	}

	seizeTrace := foxuuid.Modify(trace, "seize")
	if err := s.ledger.Mint(ctx, liquidatorID, reservePos, liquidatorAmount, []byte(seizeTrace)); err != nil {
		return nil, err
	}

	if treasuryAmount.IsPositive() {
		treasuryTrace := foxuuid.Modify(trace, "treasury")
		if err := s.ledger.Mint(ctx, s.system.TreasuryID, reservePos, treasuryAmount, []byte(treasuryTrace)); err != nil {
			return nil, err
		}
	}

	// retire debt: burn the cost from the liquidated user's token
	// balance and reduce the ledger debt position by the same amount
	debtBurn := cost
	if debt := position.DebtBalance; debtBurn.GreaterThan(debt) {
		debtBurn = debt
	}
	if debtBurn.IsPositive() {
		if err := s.token.Burn(ctx, userID, debtBurn); err != nil {
			return nil, err
		}
		if err := s.ledger.Burn(ctx, userID, debtPos, debtBurn); err != nil {
			return nil, err
		}
	}

	event := core.NewEvent(trace, core.EventTypeLiquidated, userID, reservePos, map[string]interface{}{
		"liquidator": liquidatorID,
		"amount":     seized,
		"cost":       cost,
	})
	if err := s.events.Create(ctx, event); err != nil {
		log.WithError(err).Errorln("create liquidated event failed")
		return nil, err
	}

	log.Infof("liquidated %s: seized %s, cost %s, liquidator %s", userID, seized, cost, liquidatorID)

	return &core.Seizure{
		Cost:             cost,
		CollateralSeized: seized,
		LiquidatorAmount: liquidatorAmount,
		TreasuryAmount:   treasuryAmount,
	}, nil
}

func (s *guardService) evaluate(ctx context.Context, userID, reserveAsset string) (core.PositionState, decimal.Decimal, *core.Position, decimal.Decimal, error) {
	reservePos := id.ReservePositionID(reserveAsset, s.system.BackedAssetID)
	debtPos := id.DebtPositionID(reserveAsset, s.system.BackedAssetID)

	position, err := s.ledger.Resolve(ctx, userID, reservePos, debtPos)
	if err != nil {
		return core.StateHealthy, decimal.Zero, nil, decimal.Zero, err
	}

	if !position.ReserveBalance.IsPositive() || !position.DebtBalance.IsPositive() {
		return core.StateHealthy, decimal.Zero, nil, decimal.Zero, core.ErrNoBalance
	}

	price, err := s.oracle.LatestPrice(ctx, reserveAsset)
	if err != nil {
		return core.StateHealthy, decimal.Zero, nil, decimal.Zero, err
	}

	factor, err := s.reserves.CollateralFactor(ctx, reserveAsset)
	if err != nil {
		return core.StateHealthy, decimal.Zero, nil, decimal.Zero, err
	}

	ratio, err := cdp.HealthRatio(position.ReserveBalance, position.DebtBalance, factor, price, s.system.Params.Base)
	if err != nil {
		return core.StateHealthy, decimal.Zero, nil, decimal.Zero, err
	}

	return cdp.StateOf(ratio, s.system.Params), ratio, position, price, nil
}

func (s *guardService) notifyMarginCall(ctx context.Context, userID, reserveAsset string, ratio decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "guard")

	debtPos := id.DebtPositionID(reserveAsset, s.system.BackedAssetID)
	trace := id.TraceIDFrom(fmt.Sprintf("margin-call-%s-%s-%s", userID, debtPos, ratio))

	if existing, err := s.events.FindByTrace(ctx, trace); err == nil && existing.ID > 0 {
		return nil
	}

	event := core.NewEvent(trace, core.EventTypeMarginCall, userID, debtPos, map[string]interface{}{
		"reserve_asset": reserveAsset,
		"debt_asset":    s.system.BackedAssetID,
		"ratio":         ratio,
	})
	if err := s.events.Create(ctx, event); err != nil {
		log.WithError(err).Errorln("create margin call event failed")
		return err
	}

	log.Infof("margin call for %s on %s, ratio %s", userID, reserveAsset, ratio)

	return nil
}
