package rest

import (
	"errors"
	"net/http"

	"cdp/core"
	"cdp/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	system *core.System,
	vaultService core.IVaultService,
	guardService core.IGuardService,
	ledger core.Ledger,
	reserveStore core.IReserveStore,
	eventStore core.IEventStore,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/params", paramsHandler(system))
	router.Get("/reserves", reservesHandler(reserveStore))
	router.Get("/positions/{user}", positionsHandler(system, ledger, reserveStore, vaultService, guardService))
	router.Get("/minting-power", mintingPowerHandler(vaultService))
	router.Get("/health-ratio", healthRatioHandler(vaultService))
	router.Get("/events", eventsHandler(eventStore))
	router.Post("/mint", mintHandler(vaultService))
	router.Post("/payback", paybackHandler(vaultService))
	router.Post("/liquidate", liquidateHandler(guardService))

	return router
}
