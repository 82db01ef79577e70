package vault

import (
	"context"
	"testing"

	"cdp/core"
	"cdp/pkg/id"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	balances map[string]map[string]decimal.Decimal
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{balances: make(map[string]map[string]decimal.Decimal)}
}

func (l *fakeLedger) BalanceOf(_ context.Context, userID, positionID string) (decimal.Decimal, error) {
	return l.balances[userID][positionID], nil
}

func (l *fakeLedger) Resolve(_ context.Context, userID, reservePositionID, debtPositionID string) (*core.Position, error) {
	return &core.Position{
		ReserveBalance: l.balances[userID][reservePositionID],
		DebtBalance:    l.balances[userID][debtPositionID],
	}, nil
}

func (l *fakeLedger) Mint(_ context.Context, userID, positionID string, amount decimal.Decimal, _ []byte) error {
	if l.balances[userID] == nil {
		l.balances[userID] = make(map[string]decimal.Decimal)
	}
	l.balances[userID][positionID] = l.balances[userID][positionID].Add(amount)
	return nil
}

func (l *fakeLedger) Burn(_ context.Context, userID, positionID string, amount decimal.Decimal) error {
	balance := l.balances[userID][positionID]
	if balance.LessThan(amount) {
		return core.ErrInsufficientBalance
	}
	l.balances[userID][positionID] = balance.Sub(amount)
	return nil
}

func (l *fakeLedger) Holders(_ context.Context, positionID string) ([]string, error) {
	var users []string
	for userID, positions := range l.balances {
		if positions[positionID].IsPositive() {
			users = append(users, userID)
		}
	}
	return users, nil
}

type fakeReserves struct {
	reserve *core.Reserve
}

func (r *fakeReserves) Save(context.Context, *db.DB, *core.Reserve) error { return nil }

func (r *fakeReserves) Update(context.Context, *db.DB, *core.Reserve) error { return nil }

func (r *fakeReserves) Find(_ context.Context, assetID string) (*core.Reserve, error) {
	return r.reserve, nil
}

func (r *fakeReserves) All(context.Context) ([]*core.Reserve, error) {
	return []*core.Reserve{r.reserve}, nil
}

func (r *fakeReserves) ReserveAssetDecimals(_ context.Context, assetID string) (int32, error) {
	return r.reserve.Decimals, nil
}

func (r *fakeReserves) CollateralFactor(_ context.Context, assetID string) (core.CollateralFactor, error) {
	return r.reserve.Factor(), nil
}

func (r *fakeReserves) IsActiveReserve(_ context.Context, assetID, positionID string) (bool, error) {
	return r.reserve.AssetID == assetID &&
		r.reserve.PositionID == positionID &&
		r.reserve.Status == core.ReserveStatusActive, nil
}

type fakeToken struct {
	decimals   int32
	balances   map[string]decimal.Decimal
	allowances map[string]decimal.Decimal
	minters    map[string]bool
}

func newFakeToken(decimals int32) *fakeToken {
	return &fakeToken{
		decimals:   decimals,
		balances:   make(map[string]decimal.Decimal),
		allowances: make(map[string]decimal.Decimal),
		minters:    make(map[string]bool),
	}
}

func (t *fakeToken) Decimals(context.Context) (int32, error) { return t.decimals, nil }

func (t *fakeToken) BalanceOf(_ context.Context, userID string) (decimal.Decimal, error) {
	return t.balances[userID], nil
}

func (t *fakeToken) Allowance(_ context.Context, ownerID, spenderID string) (decimal.Decimal, error) {
	return t.allowances[ownerID+"/"+spenderID], nil
}

func (t *fakeToken) Approve(_ context.Context, ownerID, spenderID string, amount decimal.Decimal) error {
	t.allowances[ownerID+"/"+spenderID] = amount
	return nil
}

func (t *fakeToken) Mint(_ context.Context, userID string, amount decimal.Decimal) error {
	t.balances[userID] = t.balances[userID].Add(amount)
	return nil
}

func (t *fakeToken) Burn(_ context.Context, userID string, amount decimal.Decimal) error {
	balance := t.balances[userID]
	if balance.LessThan(amount) {
		return core.ErrInsufficientBalance
	}
	t.balances[userID] = balance.Sub(amount)
	return nil
}

func (t *fakeToken) HasMintRole(_ context.Context, userID string) (bool, error) {
	return t.minters[userID], nil
}

func (t *fakeToken) GrantMintRole(_ context.Context, userID string) error {
	t.minters[userID] = true
	return nil
}

type fakeOracle struct {
	price decimal.Decimal
	err   error
}

func (o *fakeOracle) LatestPrice(context.Context, string) (decimal.Decimal, error) {
	if o.err != nil {
		return decimal.Zero, o.err
	}
	return o.price, nil
}

type fakeEvents struct {
	events  []*core.Event
	byTrace map[string]*core.Event
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{byTrace: make(map[string]*core.Event)}
}

func (e *fakeEvents) Create(_ context.Context, event *core.Event) error {
	event.ID = uint64(len(e.events) + 1)
	e.events = append(e.events, event)
	e.byTrace[event.TraceID] = event
	return nil
}

func (e *fakeEvents) FindByTrace(_ context.Context, traceID string) (*core.Event, error) {
	if event, ok := e.byTrace[traceID]; ok {
		return event, nil
	}
	return &core.Event{}, nil
}

func (e *fakeEvents) List(_ context.Context, userID string, limit int) ([]*core.Event, error) {
	return e.events, nil
}

type testEnv struct {
	system  *core.System
	ledger  *fakeLedger
	token   *fakeToken
	oracle  *fakeOracle
	events  *fakeEvents
	vault   core.IVaultService
	user    string
	asset   string
	resPos  string
	debtPos string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	system := &core.System{
		ClientID:       id.GenUUIDString(),
		TreasuryID:     id.GenUUIDString(),
		BackedAssetID:  id.GenUUIDString(),
		BackedDecimals: 8,
		Params: core.LiquidationParams{
			Base:                 decimal.New(1, 8),
			MarginCallThreshold:  decimal.New(1, 8),
			LiquidationThreshold: decimal.New(95, 6),
			PriceDiscount:        decimal.New(1, 7),
			CollateralPenalty:    decimal.New(75, 6),
		},
		LiquidatorShare: decimal.NewFromInt(100),
	}

	asset := id.GenUUIDString()
	reserves := &fakeReserves{reserve: &core.Reserve{
		AssetID:           asset,
		Symbol:            "BTC",
		Decimals:          8,
		FactorNumerator:   decimal.NewFromInt(150),
		FactorDenominator: decimal.NewFromInt(100),
		PositionID:        id.ReservePositionID(asset, system.BackedAssetID),
		Status:            core.ReserveStatusActive,
	}}

	env := &testEnv{
		system:  system,
		ledger:  newFakeLedger(),
		token:   newFakeToken(8),
		oracle:  &fakeOracle{price: decimal.New(1, 8)},
		events:  newFakeEvents(),
		user:    id.GenUUIDString(),
		asset:   asset,
		resPos:  id.ReservePositionID(asset, system.BackedAssetID),
		debtPos: id.DebtPositionID(asset, system.BackedAssetID),
	}
	env.vault = New(system, env.ledger, reserves, env.token, env.oracle, env.events)

	require.NoError(t, env.token.GrantMintRole(context.Background(), system.ClientID))
	return env
}

func (env *testEnv) deposit(t *testing.T, amount int64) {
	t.Helper()
	require.NoError(t, env.ledger.Mint(context.Background(), env.user, env.resPos, decimal.NewFromInt(amount), nil))
}

func TestMint(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.deposit(t, 300)

	// effective reserve 300 * 100 / 150 = 200 at price 1
	err := env.vault.Mint(ctx, env.user, env.asset, decimal.NewFromInt(150))
	require.NoError(t, err)

	debt, err := env.ledger.BalanceOf(ctx, env.user, env.debtPos)
	require.NoError(t, err)
	assert.Equal(t, "150", debt.String())

	balance, err := env.token.BalanceOf(ctx, env.user)
	require.NoError(t, err)
	assert.Equal(t, "150", balance.String())

	require.Len(t, env.events.events, 1)
	assert.Equal(t, core.EventTypeMinted, env.events.events[0].Type)
}

func TestMintExceedingPower(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.deposit(t, 300)

	err := env.vault.Mint(ctx, env.user, env.asset, decimal.NewFromInt(201))
	assert.Equal(t, core.ErrInsufficientMintingPower, err)

	// nothing committed
	debt, _ := env.ledger.BalanceOf(ctx, env.user, env.debtPos)
	assert.True(t, debt.IsZero())
	assert.Empty(t, env.events.events)
}

func TestMintValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.deposit(t, 300)

	err := env.vault.Mint(ctx, "not-a-uuid", env.asset, decimal.NewFromInt(10))
	assert.Equal(t, core.ErrInvalidAmount, err)

	err = env.vault.Mint(ctx, env.user, env.asset, decimal.Zero)
	assert.Equal(t, core.ErrInvalidAmount, err)

	err = env.vault.Mint(ctx, env.user, id.GenUUIDString(), decimal.NewFromInt(10))
	assert.Equal(t, core.ErrInvalidReserve, err)
}

func TestMintWithoutMintRole(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.deposit(t, 300)
	env.token.minters = map[string]bool{}

	err := env.vault.Mint(ctx, env.user, env.asset, decimal.NewFromInt(10))
	assert.Equal(t, core.ErrUnauthorizedMinter, err)
}

func TestMintAbortsOnBadPrice(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.deposit(t, 300)
	env.oracle.err = core.ErrInvalidPrice

	err := env.vault.Mint(ctx, env.user, env.asset, decimal.NewFromInt(10))
	assert.Equal(t, core.ErrInvalidPrice, err)

	debt, _ := env.ledger.BalanceOf(ctx, env.user, env.debtPos)
	assert.True(t, debt.IsZero())
	balance, _ := env.token.BalanceOf(ctx, env.user)
	assert.True(t, balance.IsZero())
	assert.Empty(t, env.events.events)
}

func TestPayback(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.deposit(t, 300)
	require.NoError(t, env.vault.Mint(ctx, env.user, env.asset, decimal.NewFromInt(150)))

	err := env.vault.Payback(ctx, env.user, env.asset, decimal.NewFromInt(100))
	require.NoError(t, err)

	debt, _ := env.ledger.BalanceOf(ctx, env.user, env.debtPos)
	assert.Equal(t, "50", debt.String())
	balance, _ := env.token.BalanceOf(ctx, env.user)
	assert.Equal(t, "50", balance.String())

	require.Len(t, env.events.events, 2)
	assert.Equal(t, core.EventTypePaidBack, env.events.events[1].Type)
}

func TestPaybackExceedingDebt(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.deposit(t, 300)
	require.NoError(t, env.vault.Mint(ctx, env.user, env.asset, decimal.NewFromInt(150)))

	err := env.vault.Payback(ctx, env.user, env.asset, decimal.NewFromInt(200))
	assert.Equal(t, core.ErrInsufficientBalance, err)

	debt, _ := env.ledger.BalanceOf(ctx, env.user, env.debtPos)
	assert.Equal(t, "150", debt.String())
}

func TestPaybackWithoutTokenBalance(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.deposit(t, 300)
	require.NoError(t, env.vault.Mint(ctx, env.user, env.asset, decimal.NewFromInt(150)))

	// tokens moved away, debt remains
	require.NoError(t, env.token.Burn(ctx, env.user, decimal.NewFromInt(120)))

	err := env.vault.Payback(ctx, env.user, env.asset, decimal.NewFromInt(100))
	assert.Equal(t, core.ErrInsufficientBalance, err)
}

func TestRemainingMintingPower(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.deposit(t, 300)

	power, err := env.vault.RemainingMintingPower(ctx, env.user, env.asset)
	require.NoError(t, err)
	assert.Equal(t, "200", power.String())

	require.NoError(t, env.vault.Mint(ctx, env.user, env.asset, decimal.NewFromInt(150)))

	power, err = env.vault.RemainingMintingPower(ctx, env.user, env.asset)
	require.NoError(t, err)
	assert.Equal(t, "50", power.String())
}

func TestHealthRatio(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.deposit(t, 300)

	_, err := env.vault.HealthRatio(ctx, env.user, env.asset)
	assert.Equal(t, core.ErrNoDebt, err)

	require.NoError(t, env.vault.Mint(ctx, env.user, env.asset, decimal.NewFromInt(150)))

	ratio, err := env.vault.HealthRatio(ctx, env.user, env.asset)
	require.NoError(t, err)
	// 200 * 1e8 / 150
	assert.Equal(t, "133333333", ratio.String())
}
