package worker

import (
	"context"
	"time"

	"github.com/staffhive/staffhive/marketplace/stats"
	"github.com/staffhive/staffhive/marketplace/stats/statssrv"
	"github.com/staffhive/staffhive/pkg/logx"
)

// ReconcileWorker drains the reconcile queue and rewrites recruiter
// counters from a full recompute. Incremental bumps on the hot path can
// drift under concurrent read-modify-writes; this recompute is the
// authority that repairs them.
type ReconcileWorker struct {
	service *statssrv.StatsService
	queue   stats.ReconcileQueue
	workers int
}

func NewReconcileWorker(service *statssrv.StatsService, queue stats.ReconcileQueue, workers int) *ReconcileWorker {
	return &ReconcileWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

func (w *ReconcileWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d stats reconcile workers", w.workers)

	for i := 0; i < w.workers; i++ {
		go w.run(ctx, i)
	}
}

func (w *ReconcileWorker) run(ctx context.Context, workerID int) {
	logx.Infof("Reconcile worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Reconcile worker %d stopping", workerID)
			return
		default:
			recruiterID, err := w.queue.DequeueRecruiter(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("reconcile worker %d dequeue: %v", workerID, err)
				time.Sleep(time.Second)
				continue
			}
			if recruiterID.IsEmpty() {
				continue // timeout, queue empty
			}

			if err := w.service.ReconcileRecruiter(ctx, recruiterID); err != nil {
				logx.Errorf("reconcile worker %d: recruiter %s: %v", workerID, recruiterID, err)
				continue
			}

			logx.Debugf("reconciled counters for recruiter %s", recruiterID)
		}
	}
}
