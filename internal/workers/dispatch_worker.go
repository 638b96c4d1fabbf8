package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stingwatch/internal/domain"
	"stingwatch/internal/redis"
	"stingwatch/internal/service"
	"stingwatch/pkg/e"
)

// DispatchWorker drains the dispatch queue and fans each incident out to
// subscribed managers. Alert creation is idempotent, so re-processing the
// same job after a crash does not duplicate alerts.
type DispatchWorker struct {
	logger     *slog.Logger
	queue      *redis.DispatchQueue
	incidents  service.IncidentStore
	dispatcher service.AlertDispatcher
}

func NewDispatchWorker(
	logger *slog.Logger,
	queue *redis.DispatchQueue,
	incidents service.IncidentStore,
	dispatcher service.AlertDispatcher,
) *DispatchWorker {
	return &DispatchWorker{
		logger:     logger,
		queue:      queue,
		incidents:  incidents,
		dispatcher: dispatcher,
	}
}

func (w *DispatchWorker) Run(ctx context.Context) {
	w.logger.Info("dispatchWorker STARTED")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("dispatchWorker STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		job, err := w.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			w.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		w.process(ctx, job)
	}
}

func (w *DispatchWorker) process(ctx context.Context, job domain.DispatchJob) {
	incident, err := w.incidents.Get(ctx, job.IncidentID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			w.logger.Warn("dispatch job for unknown incident dropped",
				slog.String("incident_id", job.IncidentID.String()))
			return
		}
		w.logger.Error("load incident for dispatch failed",
			slog.String("incident_id", job.IncidentID.String()),
			slog.Any("error", err))
		return
	}

	result, err := w.dispatcher.Dispatch(ctx, incident)
	if err != nil {
		w.logger.Error("alert dispatch failed",
			slog.String("incident_id", job.IncidentID.String()),
			slog.Any("error", err))
		return
	}

	w.logger.Info("alert dispatched",
		slog.String("incident_id", job.IncidentID.String()),
		slog.String("alert_id", result.AlertID.String()),
		slog.Int("manager_count", result.ManagerCount),
		slog.Int("notifications_sent", result.NotificationsSent),
		slog.Int("failures", result.Failures))
}
