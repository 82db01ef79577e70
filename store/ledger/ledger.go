package ledger

import (
	"context"

	"cdp/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type ledgerStore struct {
	db *db.DB
}

// New new ledger store
func New(db *db.DB) core.Ledger {
	return &ledgerStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.PositionToken{})
		if err := tx.AutoMigrate(core.PositionToken{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *ledgerStore) BalanceOf(ctx context.Context, userID, positionID string) (decimal.Decimal, error) {
	var token core.PositionToken
	if err := s.db.View().Where("user_id=? and position_id=?", userID, positionID).First(&token).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return token.Balance, nil
}

func (s *ledgerStore) Resolve(ctx context.Context, userID, reservePositionID, debtPositionID string) (*core.Position, error) {
	reserve, err := s.BalanceOf(ctx, userID, reservePositionID)
	if err != nil {
		return nil, err
	}

	debt, err := s.BalanceOf(ctx, userID, debtPositionID)
	if err != nil {
		return nil, err
	}

	return &core.Position{
		ReserveBalance: reserve,
		DebtBalance:    debt,
	}, nil
}

func (s *ledgerStore) Mint(ctx context.Context, userID, positionID string, amount decimal.Decimal, data []byte) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	var token core.PositionToken
	err := s.db.View().Where("user_id=? and position_id=?", userID, positionID).First(&token).Error
	if gorm.IsRecordNotFoundError(err) {
		token = core.PositionToken{
			UserID:     userID,
			PositionID: positionID,
			Balance:    amount,
			Data:       data,
		}
		return s.db.Update().Create(&token).Error
	}
	if err != nil {
		return err
	}

	return s.apply(&token, token.Balance.Add(amount))
}

func (s *ledgerStore) Burn(ctx context.Context, userID, positionID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	var token core.PositionToken
	if err := s.db.View().Where("user_id=? and position_id=?", userID, positionID).First(&token).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return core.ErrInsufficientBalance
		}
		return err
	}

	if token.Balance.LessThan(amount) {
		return core.ErrInsufficientBalance
	}

	return s.apply(&token, token.Balance.Sub(amount))
}

func (s *ledgerStore) Holders(ctx context.Context, positionID string) ([]string, error) {
	var users []string
	if err := s.db.View().
		Model(core.PositionToken{}).
		Where("position_id=? and balance > 0", positionID).
		Pluck("user_id", &users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// apply writes the new balance guarded by the row version. A write that
// lost a race affects no rows and reports an insufficient balance so
// the caller re-reads instead of double-applying.
func (s *ledgerStore) apply(token *core.PositionToken, balance decimal.Decimal) error {
	tx := s.db.Update().
		Model(core.PositionToken{}).
		Where("user_id=? and position_id=? and version=?", token.UserID, token.PositionID, token.Version).
		Updates(map[string]interface{}{
			"balance": balance,
			"version": token.Version + 1,
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return core.ErrInsufficientBalance
	}

	return nil
}
