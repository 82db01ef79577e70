package rest

import (
	"net/http"

	"cdp/core"
	"cdp/handler/render"
	"cdp/pkg/id"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

type positionView struct {
	ReserveAsset   string           `json:"reserve_asset"`
	Symbol         string           `json:"symbol"`
	ReserveBalance decimal.Decimal  `json:"reserve_balance"`
	DebtBalance    decimal.Decimal  `json:"debt_balance"`
	MintingPower   decimal.Decimal  `json:"minting_power"`
	HealthRatio    *decimal.Decimal `json:"health_ratio,omitempty"`
	State          string           `json:"state,omitempty"`
}

func positionsHandler(
	system *core.System,
	ledger core.Ledger,
	reserveStore core.IReserveStore,
	vaultService core.IVaultService,
	guardService core.IGuardService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user := chi.URLParam(r, "user")

		reserves, err := reserveStore.All(ctx)
		if err != nil {
			render.Code(w, err)
			return
		}

		views := make([]*positionView, 0, len(reserves))
		for _, reserve := range reserves {
			reservePos := id.ReservePositionID(reserve.AssetID, system.BackedAssetID)
			debtPos := id.DebtPositionID(reserve.AssetID, system.BackedAssetID)

			position, err := ledger.Resolve(ctx, user, reservePos, debtPos)
			if err != nil {
				render.Code(w, err)
				return
			}

			view := &positionView{
				ReserveAsset:   reserve.AssetID,
				Symbol:         reserve.Symbol,
				ReserveBalance: position.ReserveBalance,
				DebtBalance:    position.DebtBalance,
			}

			power, err := vaultService.RemainingMintingPower(ctx, user, reserve.AssetID)
			if err == nil {
				view.MintingPower = power
			}

			// zero-debt positions have no health ratio by definition
			if position.DebtBalance.IsPositive() && position.ReserveBalance.IsPositive() {
				if state, ratio, err := guardService.Evaluate(ctx, user, reserve.AssetID); err == nil {
					view.HealthRatio = &ratio
					view.State = state.String()
				}
			}

			views = append(views, view)
		}

		render.JSON(w, render.H{"positions": views})
	}
}
