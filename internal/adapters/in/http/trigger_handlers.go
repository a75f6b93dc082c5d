package http

import (
	"net/http"
	"time"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"

	"github.com/labstack/echo/v4"
)

type triggerRequest struct {
	JobID        string            `json:"jobId,omitempty"`
	TriggerType  string            `json:"triggerType"`
	Condition    trigger.Condition `json:"condition"`
	ActionType   string            `json:"actionType"`
	ActionConfig map[string]any    `json:"actionConfig"`
	IsActive     *bool             `json:"isActive,omitempty"`
}

type triggerResponse struct {
	ID            string            `json:"id"`
	JobID         string            `json:"jobId,omitempty"`
	TriggerType   string            `json:"triggerType"`
	Condition     trigger.Condition `json:"condition"`
	ActionType    string            `json:"actionType"`
	ActionConfig  map[string]any    `json:"actionConfig"`
	IsActive      bool              `json:"isActive"`
	LastTriggered *time.Time        `json:"lastTriggered,omitempty"`
	TriggerCount  int64             `json:"triggerCount"`
}

// ListTriggers handles GET /api/v1/automation/triggers.
func (s *Server) ListTriggers(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListTriggersQuery(tenant)
	if err != nil {
		return respondError(ctx, err)
	}

	triggers, err := s.handlers.ListTriggers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]triggerResponse, len(triggers))
	for i, item := range triggers {
		resp := triggerResponse{
			ID:            item.ID.String(),
			TriggerType:   item.TriggerType,
			Condition:     item.Condition,
			ActionType:    item.ActionType,
			ActionConfig:  item.ActionConfig,
			IsActive:      item.IsActive,
			LastTriggered: item.LastTriggered,
			TriggerCount:  item.TriggerCount,
		}
		if item.JobID != nil {
			resp.JobID = item.JobID.String()
		}
		response[i] = resp
	}

	return respondData(ctx, http.StatusOK, response)
}

// CreateTrigger handles POST /api/v1/automation/triggers.
func (s *Server) CreateTrigger(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req triggerRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var jobID *kernel.UUID
	if req.JobID != "" {
		id, idErr := parseUUID("jobId", req.JobID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		jobID = &id
	}

	triggerID := kernel.NewUUID()
	cmd, err := commands.NewCreateTriggerCommand(
		triggerID, tenant, jobID,
		trigger.Type(req.TriggerType),
		req.Condition,
		trigger.ActionType(req.ActionType),
		req.ActionConfig,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateTrigger.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"id": triggerID.String()})
}

// UpdateTrigger handles PUT /api/v1/automation/triggers/:triggerID.
func (s *Server) UpdateTrigger(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	triggerID, err := pathID(ctx, "triggerID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req triggerRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	cmd, err := commands.NewUpdateTriggerCommand(
		triggerID, tenant,
		req.Condition,
		trigger.ActionType(req.ActionType),
		req.ActionConfig,
		isActive,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateTrigger.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

// DeleteTrigger handles DELETE /api/v1/automation/triggers/:triggerID.
func (s *Server) DeleteTrigger(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	triggerID, err := pathID(ctx, "triggerID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteTriggerCommand(triggerID, tenant)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteTrigger.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}
