package reserve

import (
	"context"

	"cdp/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type reserveStore struct {
	db *db.DB
}

// New new reserve store
func New(db *db.DB) core.IReserveStore {
	return &reserveStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Reserve{})
		if err := tx.AutoMigrate(core.Reserve{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *reserveStore) Save(ctx context.Context, tx *db.DB, reserve *core.Reserve) error {
	return tx.Update().Create(reserve).Error
}

func (s *reserveStore) Find(ctx context.Context, assetID string) (*core.Reserve, error) {
	var reserve core.Reserve
	if err := s.db.View().Where("asset_id=?", assetID).First(&reserve).Error; err != nil {
		return nil, err
	}

	return &reserve, nil
}

func (s *reserveStore) All(ctx context.Context) ([]*core.Reserve, error) {
	var reserves []*core.Reserve
	if err := s.db.View().Find(&reserves).Error; err != nil {
		return nil, err
	}

	return reserves, nil
}

func (s *reserveStore) Update(ctx context.Context, tx *db.DB, reserve *core.Reserve) error {
	version := reserve.Version
	reserve.Version++
	return tx.Update().
		Model(core.Reserve{}).
		Where("asset_id=? and version=?", reserve.AssetID, version).
		Update(reserve).Error
}

func (s *reserveStore) ReserveAssetDecimals(ctx context.Context, assetID string) (int32, error) {
	reserve, err := s.Find(ctx, assetID)
	if err != nil {
		return 0, err
	}

	return reserve.Decimals, nil
}

func (s *reserveStore) CollateralFactor(ctx context.Context, assetID string) (core.CollateralFactor, error) {
	reserve, err := s.Find(ctx, assetID)
	if err != nil {
		return core.CollateralFactor{}, err
	}

	return reserve.Factor(), nil
}

func (s *reserveStore) IsActiveReserve(ctx context.Context, assetID, positionID string) (bool, error) {
	reserve, err := s.Find(ctx, assetID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	return reserve.Status == core.ReserveStatusActive && reserve.PositionID == positionID, nil
}
