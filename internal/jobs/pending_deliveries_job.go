package jobs

import (
	"context"
	"log/slog"

	"avpayments/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingDeliveriesJob periodically reports delivery orders that are still
// waiting for a vehicle. A growing backlog means vehicles are not accepting
// orders and the fleet operators should be alerted.
type PendingDeliveriesJob struct {
	handler queries.GetPendingDeliveriesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingDeliveriesJob creates a new job for monitoring the pending backlog.
// Uses GetPendingDeliveriesQueryHandler to read the backlog every 30 seconds.
func NewPendingDeliveriesJob(handler queries.GetPendingDeliveriesQueryHandler, logger *slog.Logger) *PendingDeliveriesJob {
	return &PendingDeliveriesJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_deliveries_job"),
	}
}

// Start begins the pending deliveries job to run every 30 seconds.
func (j *PendingDeliveriesJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetPendingDeliveriesQuery()

		pending, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending deliveries job failed", "error", err)
			return
		}

		if len(pending) == 0 {
			return
		}

		oldest := pending[0]
		j.logger.InfoContext(ctx, "Deliveries waiting for a vehicle",
			"count", len(pending),
			"oldestDeliveryId", oldest.DeliveryID,
			"oldestCreatedAt", oldest.CreatedAt,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending deliveries job started (running every 30 seconds)")
	return nil
}

// Stop stops the pending deliveries job.
func (j *PendingDeliveriesJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending deliveries job stopped")
}
