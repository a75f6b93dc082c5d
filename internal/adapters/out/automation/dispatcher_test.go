package automation

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationGateway struct {
	mock.Mock
}

func (m *MockNotificationGateway) Send(
	ctx context.Context, tenantID kernel.UUID, config map[string]any, message string,
) error {
	args := m.Called(ctx, tenantID, config, message)
	return args.Error(0)
}

type MockTaskCreator struct {
	mock.Mock
}

func (m *MockTaskCreator) CreateTask(ctx context.Context, tenantID, jobID kernel.UUID, title string) error {
	args := m.Called(ctx, tenantID, jobID, title)
	return args.Error(0)
}

type MockInvoiceGenerator struct {
	mock.Mock
}

func (m *MockInvoiceGenerator) GenerateInvoice(
	ctx context.Context, tenantID, jobID kernel.UUID, config map[string]any,
) error {
	args := m.Called(ctx, tenantID, jobID, config)
	return args.Error(0)
}

func testEvent() services.DomainEvent {
	return services.DomainEvent{
		Type:       trigger.TypeStatusChange,
		TenantID:   kernel.NewUUID(),
		JobID:      kernel.NewUUID(),
		OccurredAt: time.Now(),
		Context:    map[string]any{"newStatus": "Completed"},
	}
}

func TestGatewayActionDispatcher_Notify(t *testing.T) {
	notifications := &MockNotificationGateway{}
	dispatcher := NewGatewayActionDispatcher(notifications, &MockTaskCreator{}, &MockInvoiceGenerator{})

	event := testEvent()
	config := map[string]any{"channel": "sms", "message": "job done"}
	notifications.On("Send", mock.Anything, event.TenantID, config, "job done").Return(nil)

	err := dispatcher.Dispatch(context.Background(), trigger.ActionNotify, config, event)

	require.NoError(t, err)
	notifications.AssertExpectations(t)
}

func TestGatewayActionDispatcher_Notify_DefaultMessage(t *testing.T) {
	notifications := &MockNotificationGateway{}
	dispatcher := NewGatewayActionDispatcher(notifications, &MockTaskCreator{}, &MockInvoiceGenerator{})

	event := testEvent()
	config := map[string]any{"channel": "email"}
	notifications.On("Send", mock.Anything, event.TenantID, config,
		mock.MatchedBy(func(message string) bool { return message != "" })).Return(nil)

	err := dispatcher.Dispatch(context.Background(), trigger.ActionNotify, config, event)

	require.NoError(t, err)
	notifications.AssertExpectations(t)
}

func TestGatewayActionDispatcher_CreateTask(t *testing.T) {
	tasks := &MockTaskCreator{}
	dispatcher := NewGatewayActionDispatcher(&MockNotificationGateway{}, tasks, &MockInvoiceGenerator{})

	event := testEvent()
	tasks.On("CreateTask", mock.Anything, event.TenantID, event.JobID, "Inspect site").Return(nil)

	err := dispatcher.Dispatch(context.Background(), trigger.ActionCreateTask,
		map[string]any{"title": "Inspect site"}, event)

	require.NoError(t, err)
	tasks.AssertExpectations(t)
}

func TestGatewayActionDispatcher_GenerateInvoice(t *testing.T) {
	invoices := &MockInvoiceGenerator{}
	dispatcher := NewGatewayActionDispatcher(&MockNotificationGateway{}, &MockTaskCreator{}, invoices)

	event := testEvent()
	config := map[string]any{"dueDays": float64(14)}
	invoices.On("GenerateInvoice", mock.Anything, event.TenantID, event.JobID, config).Return(nil)

	err := dispatcher.Dispatch(context.Background(), trigger.ActionGenerateInvoice, config, event)

	require.NoError(t, err)
	invoices.AssertExpectations(t)
}

func TestGatewayActionDispatcher_UnknownAction(t *testing.T) {
	dispatcher := NewGatewayActionDispatcher(
		&MockNotificationGateway{}, &MockTaskCreator{}, &MockInvoiceGenerator{})

	err := dispatcher.Dispatch(context.Background(), trigger.ActionType("ESCALATE"), nil, testEvent())

	assert.Error(t, err)
}
