package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"cdp/core"
	"cdp/handler/render"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

type vaultParams struct {
	UserID       string          `json:"user_id"`
	ReserveAsset string          `json:"reserve_asset"`
	Amount       decimal.Decimal `json:"amount"`
}

func (p *vaultParams) validate() error {
	if !govalidator.IsUUID(p.UserID) {
		return errors.New("invalid user_id")
	}
	if p.ReserveAsset == "" {
		return errors.New("missing reserve_asset")
	}
	if !p.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}

	return nil
}

func mintingPowerHandler(vaultService core.IVaultService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.URL.Query().Get("user")
		asset := r.URL.Query().Get("asset")
		if !govalidator.IsUUID(user) || asset == "" {
			render.BadRequest(w, errors.New("user and asset required"))
			return
		}

		power, err := vaultService.RemainingMintingPower(r.Context(), user, asset)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"minting_power": power})
	}
}

func healthRatioHandler(vaultService core.IVaultService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.URL.Query().Get("user")
		asset := r.URL.Query().Get("asset")
		if !govalidator.IsUUID(user) || asset == "" {
			render.BadRequest(w, errors.New("user and asset required"))
			return
		}

		ratio, err := vaultService.HealthRatio(r.Context(), user, asset)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"health_ratio": ratio})
	}
}

func mintHandler(vaultService core.IVaultService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params vaultParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			render.BadRequest(w, err)
			return
		}
		if err := params.validate(); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := vaultService.Mint(r.Context(), params.UserID, params.ReserveAsset, params.Amount); err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func paybackHandler(vaultService core.IVaultService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params vaultParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			render.BadRequest(w, err)
			return
		}
		if err := params.validate(); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := vaultService.Payback(r.Context(), params.UserID, params.ReserveAsset, params.Amount); err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}
