package rest

import (
	"net/http"

	"cdp/core"
	"cdp/handler/render"

	"github.com/spf13/cast"
)

func paramsHandler(system *core.System) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, render.H{
			"backed_asset_id":  system.BackedAssetID,
			"backed_decimals":  system.BackedDecimals,
			"liquidator_share": system.LiquidatorShare,
			"params":           system.Params,
		})
	}
}

func reservesHandler(reserveStore core.IReserveStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reserves, err := reserveStore.All(r.Context())
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"reserves": reserves})
	}
}

func eventsHandler(eventStore core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := cast.ToInt(r.URL.Query().Get("limit"))
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		events, err := eventStore.List(r.Context(), r.URL.Query().Get("user"), limit)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"events": events})
	}
}
