package token

import (
	"context"

	"cdp/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type tokenStore struct {
	db       *db.DB
	decimals int32
}

// New new synthetic asset store
func New(db *db.DB, decimals int32) core.SyntheticAsset {
	return &tokenStore{db: db, decimals: decimals}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		if err := db.Update().AutoMigrate(core.TokenBalance{}).Error; err != nil {
			return err
		}
		if err := db.Update().AutoMigrate(core.TokenAllowance{}).Error; err != nil {
			return err
		}
		if err := db.Update().AutoMigrate(core.TokenMinter{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *tokenStore) Decimals(ctx context.Context) (int32, error) {
	return s.decimals, nil
}

func (s *tokenStore) BalanceOf(ctx context.Context, userID string) (decimal.Decimal, error) {
	var balance core.TokenBalance
	if err := s.db.View().Where("user_id=?", userID).First(&balance).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return balance.Balance, nil
}

func (s *tokenStore) Allowance(ctx context.Context, ownerID, spenderID string) (decimal.Decimal, error) {
	var allowance core.TokenAllowance
	if err := s.db.View().Where("owner_id=? and spender_id=?", ownerID, spenderID).First(&allowance).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return allowance.Amount, nil
}

func (s *tokenStore) Approve(ctx context.Context, ownerID, spenderID string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return core.ErrInvalidAmount
	}

	var allowance core.TokenAllowance
	err := s.db.View().Where("owner_id=? and spender_id=?", ownerID, spenderID).First(&allowance).Error
	if gorm.IsRecordNotFoundError(err) {
		allowance = core.TokenAllowance{
			OwnerID:   ownerID,
			SpenderID: spenderID,
			Amount:    amount,
		}
		return s.db.Update().Create(&allowance).Error
	}
	if err != nil {
		return err
	}

	return s.db.Update().
		Model(core.TokenAllowance{}).
		Where("owner_id=? and spender_id=? and version=?", ownerID, spenderID, allowance.Version).
		Updates(map[string]interface{}{
			"amount":  amount,
			"version": allowance.Version + 1,
		}).Error
}

func (s *tokenStore) Mint(ctx context.Context, userID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	var balance core.TokenBalance
	err := s.db.View().Where("user_id=?", userID).First(&balance).Error
	if gorm.IsRecordNotFoundError(err) {
		balance = core.TokenBalance{
			UserID:  userID,
			Balance: amount,
		}
		return s.db.Update().Create(&balance).Error
	}
	if err != nil {
		return err
	}

	return s.apply(&balance, balance.Balance.Add(amount))
}

func (s *tokenStore) Burn(ctx context.Context, userID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	var balance core.TokenBalance
	if err := s.db.View().Where("user_id=?", userID).First(&balance).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return core.ErrInsufficientBalance
		}
		return err
	}

	if balance.Balance.LessThan(amount) {
		return core.ErrInsufficientBalance
	}

	return s.apply(&balance, balance.Balance.Sub(amount))
}

func (s *tokenStore) HasMintRole(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := s.db.View().Model(core.TokenMinter{}).Where("user_id=?", userID).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *tokenStore) GrantMintRole(ctx context.Context, userID string) error {
	ok, err := s.HasMintRole(ctx, userID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	return s.db.Update().Create(&core.TokenMinter{UserID: userID}).Error
}

func (s *tokenStore) apply(balance *core.TokenBalance, amount decimal.Decimal) error {
	tx := s.db.Update().
		Model(core.TokenBalance{}).
		Where("user_id=? and version=?", balance.UserID, balance.Version).
		Updates(map[string]interface{}{
			"balance": amount,
			"version": balance.Version + 1,
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return core.ErrInsufficientBalance
	}

	return nil
}
