package jobs

import (
	"context"
	"log/slog"

	"fieldservice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize bounds how many outbox rows one drain pass picks up.
const dispatchBatchSize = 100

// AutomationDispatchJob drains the automation outbox on a fixed schedule.
// Runs every five seconds so trigger actions follow their events closely
// without hammering the database.
type AutomationDispatchJob struct {
	handler commands.DispatchAutomationCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutomationDispatchJob creates the outbox draining job.
func NewAutomationDispatchJob(
	handler commands.DispatchAutomationCommandHandler,
	logger *slog.Logger,
) *AutomationDispatchJob {
	return &AutomationDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "automation_dispatch_job"),
	}
}

// Start begins the drain loop.
func (j *AutomationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewDispatchAutomationCommand(dispatchBatchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "automation dispatch command rejected", "error", err)
			return
		}

		processed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "automation dispatch pass failed", "error", err)
			return
		}
		if processed > 0 {
			j.logger.InfoContext(ctx, "automation outbox drained", "processed", processed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "automation dispatch job started (running every 5 seconds)")
	return nil
}

// Stop stops the drain loop.
func (j *AutomationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "automation dispatch job stopped")
}
