package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reloader re-reads the corpus and reports how many problems it now serves.
type Reloader interface {
	Reload(ctx context.Context) (int, error)
}

// ReloadWorker re-reads the corpus on a cron schedule so edits to the corpus
// file show up without a restart.
type ReloadWorker struct {
	cron     *cron.Cron
	reloader Reloader
	schedule string
	timeout  time.Duration
	logger   *zap.Logger
}

func NewReloadWorker(reloader Reloader, schedule string, logger *zap.Logger) *ReloadWorker {
	return &ReloadWorker{
		cron:     cron.New(),
		reloader: reloader,
		schedule: schedule,
		timeout:  30 * time.Second,
		logger:   logger,
	}
}

// Start blocks until ctx is cancelled. An empty schedule disables the worker
// and Start returns immediately.
func (w *ReloadWorker) Start(ctx context.Context) error {
	if w.schedule == "" {
		w.logger.Info("scheduled corpus reload disabled")
		return nil
	}

	if _, err := w.cron.AddFunc(w.schedule, w.reload); err != nil {
		return fmt.Errorf("invalid reload schedule %q: %w", w.schedule, err)
	}

	w.logger.Info("reload worker started", zap.String("cron", w.schedule))
	w.cron.Start()

	<-ctx.Done()
	stopCtx := w.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		w.logger.Warn("reload worker stop timed out")
	}
	w.logger.Info("reload worker stopped")
	return nil
}

func (w *ReloadWorker) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	n, err := w.reloader.Reload(ctx)
	if err != nil {
		w.logger.Error("scheduled corpus reload failed", zap.Error(err))
		return
	}
	w.logger.Debug("scheduled corpus reload finished", zap.Int("problems", n))
}
