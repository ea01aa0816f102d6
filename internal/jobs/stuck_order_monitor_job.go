package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StuckOrderMonitorJob periodically reports orders stuck in the canceling
// state. An order that sits in canceling means its compensation flow never
// received a payment cancellation confirmation and needs operator attention.
type StuckOrderMonitorJob struct {
	handler queries.GetStuckCancelingOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStuckOrderMonitorJob creates a new job for monitoring stuck orders.
// Uses GetStuckCancelingOrdersQueryHandler to find orders every minute.
func NewStuckOrderMonitorJob(handler queries.GetStuckCancelingOrdersQueryHandler, logger *slog.Logger) *StuckOrderMonitorJob {
	return &StuckOrderMonitorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stuck_order_monitor_job"),
	}
}

// Start begins the stuck order monitor job to run every minute.
func (j *StuckOrderMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetStuckCancelingOrdersQuery()

		stuckOrders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stuck order monitor job failed", "error", err)
			return
		}

		for _, stuckOrder := range stuckOrders {
			j.logger.WarnContext(ctx, "Order stuck in canceling state",
				"orderId", stuckOrder.ID.String(),
				"trackingId", stuckOrder.TrackingID.String(),
				"failureMessages", stuckOrder.FailureMessages,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stuck order monitor job started (running every minute)")
	return nil
}

// Stop stops the stuck order monitor job.
func (j *StuckOrderMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stuck order monitor job stopped")
}
