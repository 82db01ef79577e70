package guard

import (
	"context"
	"time"

	"cdp/core"
	"cdp/pkg/id"
	"cdp/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
)

const checkpointKey = "guard_scan_checkpoint"

// Worker scans indebted positions and classifies them against the
// liquidation thresholds. Margin calls are emitted by the guard
// service during evaluation; seizure itself is left to liquidators.
type Worker struct {
	worker.TickWorker
	system       *core.System
	ledger       core.Ledger
	reserveStore core.IReserveStore
	guardService core.IGuardService
	property     property.Store
}

// New new guard worker
func New(
	system *core.System,
	ledger core.Ledger,
	reserveStore core.IReserveStore,
	guardService core.IGuardService,
	propertyStore property.Store,
) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Delay:    30 * time.Second,
			ErrDelay: time.Minute,
		},
		system:       system,
		ledger:       ledger,
		reserveStore: reserveStore,
		guardService: guardService,
		property:     propertyStore,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "guard")

	reserves, err := w.reserveStore.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("list reserves failed")
		return err
	}

	for _, reserve := range reserves {
		debtPos := id.DebtPositionID(reserve.AssetID, w.system.BackedAssetID)

		users, err := w.ledger.Holders(ctx, debtPos)
		if err != nil {
			log.WithError(err).Errorln("list debtors failed:", reserve.Symbol)
			continue
		}

		for _, userID := range users {
			state, ratio, err := w.guardService.Evaluate(ctx, userID, reserve.AssetID)
			if err != nil {
				if err == core.ErrNoBalance {
					continue
				}
				log.WithError(err).Errorln("evaluate failed:", userID)
				continue
			}

			if state != core.StateHealthy {
				log.Infof("position %s on %s: %s, ratio %s", userID, reserve.Symbol, state, ratio)
			}
		}
	}

	if err := w.property.Save(ctx, checkpointKey, time.Now().Unix()); err != nil {
		log.WithError(err).Errorln("save checkpoint failed")
	}

	return nil
}
