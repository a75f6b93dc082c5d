package automation

import (
	"context"
	"log/slog"

	"fieldservice/internal/core/domain/model/kernel"
)

// LogNotificationGateway records notifications in the structured log. It
// stands in for the real delivery channels (SMS, email, push) which live in a
// separate system reached through this port.
type LogNotificationGateway struct {
	logger *slog.Logger
}

// NewLogNotificationGateway creates a log-backed notification gateway.
func NewLogNotificationGateway(logger *slog.Logger) *LogNotificationGateway {
	return &LogNotificationGateway{logger: logger.With("component", "notification_gateway")}
}

// Send logs the notification with its target channel and recipient.
func (g *LogNotificationGateway) Send(
	ctx context.Context,
	tenantID kernel.UUID,
	config map[string]any,
	message string,
) error {
	channel, _ := config["channel"].(string)
	recipient, _ := config["recipient"].(string)

	g.logger.InfoContext(ctx, "notification sent",
		"tenant_id", tenantID.String(),
		"channel", channel,
		"recipient", recipient,
		"message", message)
	return nil
}
