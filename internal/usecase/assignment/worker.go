package assignment

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Worker runs the expiry scan on a fixed interval until stopped.
type Worker struct {
	engine   Engine
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewWorker(engine Engine, interval time.Duration) *Worker {
	return &Worker{engine: engine, interval: interval}
}

// Start returns immediately. The loop outlives the caller's context; use Stop.
func (w *Worker) Start(context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})
	go w.run(ctx, w.done)
	slog.Info("expiry worker started", "interval", w.interval.String())
	return nil
}

func (w *Worker) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		slog.Info("expiry worker stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	res, err := w.engine.TickExpiryScan(ctx)
	if err != nil && ctx.Err() == nil {
		slog.Error("expiry scan finished with failures",
			"failed", res.Failed, "released", res.Released, "error", err.Error())
		return
	}
	if res.Released > 0 || res.FallbackRecorded > 0 {
		slog.Info("expiry scan finished",
			"scanned", res.Scanned, "released", res.Released,
			"skipped", res.Skipped, "fallback_recorded", res.FallbackRecorded)
	}
}
