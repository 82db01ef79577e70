package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

const (
	// ReserveStatusActive reserve open for minting
	ReserveStatusActive = "active"
	// ReserveStatusPaused reserve registered but closed for minting
	ReserveStatusPaused = "paused"
)

// CollateralFactor how much reserve value is required per unit of debt.
// Numerator/Denominator > 1 means over-collateralization is required.
type CollateralFactor struct {
	Numerator   decimal.Decimal `json:"numerator"`
	Denominator decimal.Decimal `json:"denominator"`
}

// Reserve a registered reserve asset
type Reserve struct {
	ID                uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID           string          `sql:"size:36;unique_index:reserve_asset_idx" json:"asset_id"`
	Symbol            string          `sql:"size:20" json:"symbol"`
	Decimals          int32           `sql:"default:8" json:"decimals"`
	FactorNumerator   decimal.Decimal `sql:"type:decimal(20,0)" json:"factor_numerator"`
	FactorDenominator decimal.Decimal `sql:"type:decimal(20,0)" json:"factor_denominator"`
	PositionID        string          `sql:"size:36" json:"position_id"`
	Status            string          `sql:"size:16;default:'active'" json:"status"`
	Version           int64           `sql:"default:0" json:"version"`
	CreatedAt         time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Factor collateral factor of the reserve
func (r *Reserve) Factor() CollateralFactor {
	return CollateralFactor{
		Numerator:   r.FactorNumerator,
		Denominator: r.FactorDenominator,
	}
}

// IReserveStore reserve store interface
type IReserveStore interface {
	Save(ctx context.Context, tx *db.DB, reserve *Reserve) error
	Find(ctx context.Context, assetID string) (*Reserve, error)
	All(ctx context.Context) ([]*Reserve, error)
	Update(ctx context.Context, tx *db.DB, reserve *Reserve) error

	// registry surface consumed by the risk engine

	ReserveAssetDecimals(ctx context.Context, assetID string) (int32, error)
	CollateralFactor(ctx context.Context, assetID string) (CollateralFactor, error)
	IsActiveReserve(ctx context.Context, assetID, positionID string) (bool, error)
}
