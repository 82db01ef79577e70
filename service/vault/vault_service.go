package vault

import (
	"context"
	"fmt"

	"cdp/core"
	"cdp/internal/cdp"
	"cdp/pkg/id"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type vaultService struct {
	system   *core.System
	ledger   core.Ledger
	reserves core.IReserveStore
	token    core.SyntheticAsset
	oracle   core.PriceOracle
	events   core.IEventStore
}

// New new vault service
func New(
	system *core.System,
	ledger core.Ledger,
	reserves core.IReserveStore,
	token core.SyntheticAsset,
	oracle core.PriceOracle,
	events core.IEventStore,
) core.IVaultService {
	return &vaultService{
		system:   system,
		ledger:   ledger,
		reserves: reserves,
		token:    token,
		oracle:   oracle,
		events:   events,
	}
}

// Mint mints the backed asset against the user's reserve position.
// Validates every precondition before touching ledger or token state.
func (s *vaultService) Mint(ctx context.Context, userID, reserveAsset string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "vault")

	if !govalidator.IsUUID(userID) || !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	reservePos := id.ReservePositionID(reserveAsset, s.system.BackedAssetID)
	debtPos := id.DebtPositionID(reserveAsset, s.system.BackedAssetID)

	active, err := s.reserves.IsActiveReserve(ctx, reserveAsset, reservePos)
	if err != nil {
		return err
	}
	if !active {
		return core.ErrInvalidReserve
	}

	allowed, err := s.token.HasMintRole(ctx, s.system.ClientID)
	if err != nil {
		return err
	}
	if !allowed {
		return core.ErrUnauthorizedMinter
	}

	price, err := s.oracle.LatestPrice(ctx, reserveAsset)
	if err != nil {
		return err
	}

	factor, err := s.reserves.CollateralFactor(ctx, reserveAsset)
	if err != nil {
		return err
	}

	position, err := s.ledger.Resolve(ctx, userID, reservePos, debtPos)
	if err != nil {
		return err
	}

	power := cdp.RemainingMintingPower(position.ReserveBalance, position.DebtBalance, factor, price)
	if power.LessThan(amount) {
		return core.ErrInsufficientMintingPower
	}

	if err := s.ledger.Mint(ctx, userID, debtPos, amount, nil); err != nil {
		return err
	}

	if err := s.token.Mint(ctx, userID, amount); err != nil {
		return err
	}

	trace := id.TraceIDFrom(fmt.Sprintf("mint-%s-%s-%s", userID, debtPos, amount))
	event := core.NewEvent(trace, core.EventTypeMinted, userID, debtPos, map[string]interface{}{
		"amount": amount,
		"price":  price,
	})
	if err := s.events.Create(ctx, event); err != nil {
		log.WithError(err).Errorln("create mint event failed")
		return err
	}

	log.Infof("minted %s to %s against %s", amount, userID, reserveAsset)

	return nil
}

// Payback burns the backed asset and reduces the debt position. No
// minting-power recheck: payback always improves the health ratio.
func (s *vaultService) Payback(ctx context.Context, userID, reserveAsset string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "vault")

	if !govalidator.IsUUID(userID) || !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	debtPos := id.DebtPositionID(reserveAsset, s.system.BackedAssetID)

	debt, err := s.ledger.BalanceOf(ctx, userID, debtPos)
	if err != nil {
		return err
	}
	if debt.LessThan(amount) {
		return core.ErrInsufficientBalance
	}

	balance, err := s.token.BalanceOf(ctx, userID)
	if err != nil {
		return err
	}
	if balance.LessThan(amount) {
		return core.ErrInsufficientBalance
	}

	if err := s.token.Burn(ctx, userID, amount); err != nil {
		return err
	}

	if err := s.ledger.Burn(ctx, userID, debtPos, amount); err != nil {
		return err
	}

	trace := id.TraceIDFrom(fmt.Sprintf("payback-%s-%s-%s", userID, debtPos, amount))
	event := core.NewEvent(trace, core.EventTypePaidBack, userID, debtPos, map[string]interface{}{
		"amount": amount,
	})
	if err := s.events.Create(ctx, event); err != nil {
		log.WithError(err).Errorln("create payback event failed")
		return err
	}

	log.Infof("paid back %s from %s", amount, userID)

	return nil
}

// RemainingMintingPower read-only power query at the current price.
func (s *vaultService) RemainingMintingPower(ctx context.Context, userID, reserveAsset string) (decimal.Decimal, error) {
	position, factor, price, err := s.snapshot(ctx, userID, reserveAsset)
	if err != nil {
		return decimal.Zero, err
	}

	return cdp.RemainingMintingPower(position.ReserveBalance, position.DebtBalance, factor, price), nil
}

// HealthRatio read-only solvency query at the current price.
func (s *vaultService) HealthRatio(ctx context.Context, userID, reserveAsset string) (decimal.Decimal, error) {
	position, factor, price, err := s.snapshot(ctx, userID, reserveAsset)
	if err != nil {
		return decimal.Zero, err
	}

	return cdp.HealthRatio(position.ReserveBalance, position.DebtBalance, factor, price, s.system.Params.Base)
}

func (s *vaultService) snapshot(ctx context.Context, userID, reserveAsset string) (*core.Position, core.CollateralFactor, decimal.Decimal, error) {
	reservePos := id.ReservePositionID(reserveAsset, s.system.BackedAssetID)
	debtPos := id.DebtPositionID(reserveAsset, s.system.BackedAssetID)

	factor, err := s.reserves.CollateralFactor(ctx, reserveAsset)
	if err != nil {
		return nil, core.CollateralFactor{}, decimal.Zero, err
	}

	price, err := s.oracle.LatestPrice(ctx, reserveAsset)
	if err != nil {
		return nil, core.CollateralFactor{}, decimal.Zero, err
	}

	position, err := s.ledger.Resolve(ctx, userID, reservePos, debtPos)
	if err != nil {
		return nil, core.CollateralFactor{}, decimal.Zero, err
	}

	return position, factor, price, nil
}
