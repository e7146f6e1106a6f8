package worker

import (
	"context"
	"sync"
	"time"

	"ticket-engine/internal/service"

	"github.com/rs/zerolog"
)

// BalanceWorker reloads the cached credit balance on a fixed interval so a
// long-running process notices weekly resets and purchases made elsewhere.
type BalanceWorker struct {
	refresher service.BalanceRefresher
	interval  time.Duration
	logger    zerolog.Logger
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewBalanceWorker(refresher service.BalanceRefresher, interval time.Duration, logger zerolog.Logger) *BalanceWorker {
	return &BalanceWorker{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
}

func (w *BalanceWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("Balance worker disabled")
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Balance worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Refreshing credit balance")
				if err := w.refresher.LoadBalance(ctx); err != nil {
					w.logger.Warn().Err(err).Msg("Failed to refresh credit balance")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Balance worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Balance worker stopping (context done)")
				return
			}
		}
	}()
}

// Stop waits for an in-flight refresh to finish. It is safe to call more than once.
func (w *BalanceWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
