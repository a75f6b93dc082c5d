package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
)

// NotificationGateway sends a notification to the channel described by the
// trigger's action config (e.g. {"channel": "sms", "recipient": "..."}).
type NotificationGateway interface {
	Send(ctx context.Context, tenantID kernel.UUID, config map[string]any, message string) error
}

// TaskCreator appends a task to a job on behalf of an automation trigger.
type TaskCreator interface {
	CreateTask(ctx context.Context, tenantID, jobID kernel.UUID, title string) error
}

// InvoiceGenerator asks the billing side to produce an invoice for a job.
type InvoiceGenerator interface {
	GenerateInvoice(ctx context.Context, tenantID, jobID kernel.UUID, config map[string]any) error
}
