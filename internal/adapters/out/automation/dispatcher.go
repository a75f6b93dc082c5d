// Package automation implements the outbound side of trigger actions: the
// dispatcher that routes a fired trigger to its side effect and the default
// gateway implementations behind it.
package automation

import (
	"context"
	"fmt"

	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/core/ports"
)

// GatewayActionDispatcher routes trigger actions to the configured gateways.
type GatewayActionDispatcher struct {
	notifications ports.NotificationGateway
	tasks         ports.TaskCreator
	invoices      ports.InvoiceGenerator
}

// NewGatewayActionDispatcher creates a dispatcher over the given gateways.
func NewGatewayActionDispatcher(
	notifications ports.NotificationGateway,
	tasks ports.TaskCreator,
	invoices ports.InvoiceGenerator,
) *GatewayActionDispatcher {
	return &GatewayActionDispatcher{
		notifications: notifications,
		tasks:         tasks,
		invoices:      invoices,
	}
}

// Dispatch executes the action of a fired trigger.
func (d *GatewayActionDispatcher) Dispatch(
	ctx context.Context,
	actionType trigger.ActionType,
	config map[string]any,
	event services.DomainEvent,
) error {
	switch actionType {
	case trigger.ActionNotify:
		return d.notifications.Send(ctx, event.TenantID, config, notificationMessage(config, event))
	case trigger.ActionCreateTask:
		return d.tasks.CreateTask(ctx, event.TenantID, event.JobID, taskTitle(config, event))
	case trigger.ActionGenerateInvoice:
		return d.invoices.GenerateInvoice(ctx, event.TenantID, event.JobID, config)
	default:
		return fmt.Errorf("unsupported action type %q", string(actionType))
	}
}

func notificationMessage(config map[string]any, event services.DomainEvent) string {
	if msg, ok := config["message"].(string); ok && msg != "" {
		return msg
	}
	return fmt.Sprintf("%s for job %s", string(event.Type), event.JobID.String())
}

func taskTitle(config map[string]any, event services.DomainEvent) string {
	if title, ok := config["title"].(string); ok && title != "" {
		return title
	}
	return fmt.Sprintf("Follow up on %s", string(event.Type))
}
