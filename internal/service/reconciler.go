package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type RaffleReconciler interface {
	ReconcileAll(ctx context.Context) (int, error)
}

// Reconciler periodically rebuilds raffle aggregates from ticket rows.
type Reconciler struct {
	svc      RaffleReconciler
	interval time.Duration
}

func NewReconciler(svc RaffleReconciler, interval time.Duration) *Reconciler {
	return &Reconciler{
		svc:      svc,
		interval: interval,
	}
}

// Run blocks until ctx is done. A non-positive interval disables the sweep.
func (r *Reconciler) Run(ctx context.Context) {
	if r.interval <= 0 {
		zap.L().Info("raffle reconciler disabled")
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	zap.L().Info("raffle reconciler started", zap.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("raffle reconciler stopped")
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) {
	start := time.Now()

	corrected, err := r.svc.ReconcileAll(ctx)
	if err != nil {
		zap.L().Error("raffle reconciliation sweep failed", zap.Error(err))
		return
	}

	zap.L().Info("raffle reconciliation sweep done",
		zap.Int("corrected", corrected),
		zap.Duration("took", time.Since(start)),
	)
}
