package automation

import (
	"context"
	"log/slog"

	"fieldservice/internal/core/domain/model/kernel"
)

// LogInvoiceGenerator records invoice generation requests in the structured
// log. Billing runs in a separate system; this adapter marks the hand-off
// point until the real integration is wired.
type LogInvoiceGenerator struct {
	logger *slog.Logger
}

// NewLogInvoiceGenerator creates a log-backed invoice generator.
func NewLogInvoiceGenerator(logger *slog.Logger) *LogInvoiceGenerator {
	return &LogInvoiceGenerator{logger: logger.With("component", "invoice_generator")}
}

// GenerateInvoice logs the invoice request for the job.
func (g *LogInvoiceGenerator) GenerateInvoice(
	ctx context.Context,
	tenantID, jobID kernel.UUID,
	config map[string]any,
) error {
	g.logger.InfoContext(ctx, "invoice generation requested",
		"tenant_id", tenantID.String(),
		"job_id", jobID.String(),
		"config", config)
	return nil
}
