package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"cdp/core"
	"cdp/handler/render"

	"github.com/asaskevich/govalidator"
)

type liquidateParams struct {
	LiquidatorID string `json:"liquidator_id"`
	UserID       string `json:"user_id"`
	ReserveAsset string `json:"reserve_asset"`
}

func liquidateHandler(guardService core.IGuardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params liquidateParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if !govalidator.IsUUID(params.LiquidatorID) || !govalidator.IsUUID(params.UserID) {
			render.BadRequest(w, errors.New("invalid liquidator_id or user_id"))
			return
		}

		seizure, err := guardService.Liquidate(r.Context(), params.LiquidatorID, params.UserID, params.ReserveAsset)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"seizure": seizure})
	}
}
