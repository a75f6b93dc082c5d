package http

import (
	"net/http"
	"time"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createJobRequest struct {
	CustomerID               string   `json:"customerId"`
	SourceQuoteID            *string  `json:"sourceQuoteId,omitempty"`
	Title                    string   `json:"title"`
	Priority                 int      `json:"priority"`
	EstimatedDurationMinutes int      `json:"estimatedDurationMinutes"`
	RequiredSkills           []string `json:"requiredSkills"`
	RequiredEquipment        []string `json:"requiredEquipment"`
	TaskTitles               []string `json:"taskTitles"`
	CreatedBy                string   `json:"createdBy"`
}

type jobResponse struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customerId"`
	Number         string     `json:"number"`
	Title          string     `json:"title"`
	Status         string     `json:"status"`
	Priority       int        `json:"priority"`
	ScheduledStart *time.Time `json:"scheduledStart,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduledEnd,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type taskResponse struct {
	ID                       string `json:"id"`
	Title                    string `json:"title"`
	Status                   string `json:"status"`
	EstimatedDurationMinutes int    `json:"estimatedDurationMinutes"`
	ActualDurationMinutes    int    `json:"actualDurationMinutes"`
	SortOrder                int    `json:"sortOrder"`
}

type jobDetailResponse struct {
	ID                       string         `json:"id"`
	CustomerID               string         `json:"customerId"`
	SourceQuoteID            *string        `json:"sourceQuoteId,omitempty"`
	Number                   string         `json:"number"`
	Title                    string         `json:"title"`
	Status                   string         `json:"status"`
	Priority                 int            `json:"priority"`
	EstimatedDurationMinutes int            `json:"estimatedDurationMinutes"`
	ScheduledStart           *time.Time     `json:"scheduledStart,omitempty"`
	ScheduledEnd             *time.Time     `json:"scheduledEnd,omitempty"`
	RequiredSkills           []string       `json:"requiredSkills"`
	RequiredEquipment        []string       `json:"requiredEquipment"`
	CreatedBy                string         `json:"createdBy"`
	CreatedAt                time.Time      `json:"createdAt"`
	Tasks                    []taskResponse `json:"tasks"`
}

// ListJobs handles GET /api/v1/jobs, optionally filtered by ?status=.
func (s *Server) ListJobs(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var statusFilter *job.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := job.StatusFromString(raw)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewListJobsQuery(tenant, statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	jobs, err := s.handlers.ListJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]jobResponse, len(jobs))
	for i, row := range jobs {
		response[i] = jobResponse{
			ID:             row.ID.String(),
			CustomerID:     row.CustomerID.String(),
			Number:         row.Number,
			Title:          row.Title,
			Status:         row.Status,
			Priority:       row.Priority,
			ScheduledStart: row.ScheduledStart,
			ScheduledEnd:   row.ScheduledEnd,
			CreatedAt:      row.CreatedAt,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req createJobRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	customerID, err := parseUUID("customerId", req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	var sourceQuoteID *kernel.UUID
	if req.SourceQuoteID != nil {
		quoteID, quoteErr := parseUUID("sourceQuoteId", *req.SourceQuoteID)
		if quoteErr != nil {
			return respondError(ctx, quoteErr)
		}
		sourceQuoteID = &quoteID
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(
		jobID, tenant, customerID,
		sourceQuoteID,
		req.Title,
		req.Priority,
		time.Duration(req.EstimatedDurationMinutes)*time.Minute,
		req.RequiredSkills, req.RequiredEquipment, req.TaskTitles,
		req.CreatedBy,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"id": jobID.String()})
}

// GetJob handles GET /api/v1/jobs/:jobID.
func (s *Server) GetJob(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetJobQuery(tenant, jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.GetJob.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	tasks := make([]taskResponse, len(detail.Tasks))
	for i, task := range detail.Tasks {
		tasks[i] = taskResponse{
			ID:                       task.ID.String(),
			Title:                    task.Title,
			Status:                   task.Status,
			EstimatedDurationMinutes: int(task.EstimatedDuration.Minutes()),
			ActualDurationMinutes:    int(task.ActualDuration.Minutes()),
			SortOrder:                task.SortOrder,
		}
	}

	response := jobDetailResponse{
		ID:                       detail.ID.String(),
		CustomerID:               detail.CustomerID.String(),
		Number:                   detail.Number,
		Title:                    detail.Title,
		Status:                   detail.Status,
		Priority:                 detail.Priority,
		EstimatedDurationMinutes: int(detail.EstimatedDuration.Minutes()),
		ScheduledStart:           detail.ScheduledStart,
		ScheduledEnd:             detail.ScheduledEnd,
		RequiredSkills:           detail.RequiredSkills,
		RequiredEquipment:        detail.RequiredEquipment,
		CreatedBy:                detail.CreatedBy,
		CreatedAt:                detail.CreatedAt,
		Tasks:                    tasks,
	}
	if detail.SourceQuoteID != nil {
		quoteID := detail.SourceQuoteID.String()
		response.SourceQuoteID = &quoteID
	}

	return respondData(ctx, http.StatusOK, response)
}

// ListJobTasks handles GET /api/v1/jobs/:jobID/tasks.
func (s *Server) ListJobTasks(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetJobQuery(tenant, jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.GetJob.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	tasks := make([]taskResponse, len(detail.Tasks))
	for i, task := range detail.Tasks {
		tasks[i] = taskResponse{
			ID:                       task.ID.String(),
			Title:                    task.Title,
			Status:                   task.Status,
			EstimatedDurationMinutes: int(task.EstimatedDuration.Minutes()),
			ActualDurationMinutes:    int(task.ActualDuration.Minutes()),
			SortOrder:                task.SortOrder,
		}
	}

	return respondData(ctx, http.StatusOK, tasks)
}

type updateJobRequest struct {
	Title                    string   `json:"title"`
	Priority                 int      `json:"priority"`
	EstimatedDurationMinutes int      `json:"estimatedDurationMinutes"`
	RequiredSkills           []string `json:"requiredSkills"`
	RequiredEquipment        []string `json:"requiredEquipment"`
}

// UpdateJob handles PUT /api/v1/jobs/:jobID.
func (s *Server) UpdateJob(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateJobRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateJobCommand(
		jobID, tenant,
		req.Title,
		req.Priority,
		time.Duration(req.EstimatedDurationMinutes)*time.Minute,
		req.RequiredSkills, req.RequiredEquipment,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

// DeleteJob handles DELETE /api/v1/jobs/:jobID. Only unreferenced jobs can be
// hard-deleted; anything else must be cancelled.
func (s *Server) DeleteJob(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteJobCommand(jobID, tenant)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

type transitionJobRequest struct {
	Status string `json:"status"`
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

// TransitionJobStatus handles PATCH /api/v1/jobs/:jobID/status.
func (s *Server) TransitionJobStatus(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req transitionJobRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	target, err := job.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionJobStatusCommand(jobID, tenant, target, req.Actor, req.Reason, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.TransitionJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

type cancelJobRequest struct {
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
}

// CancelJob handles POST /api/v1/jobs/:jobID/cancel.
func (s *Server) CancelJob(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req cancelJobRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelJobCommand(jobID, tenant, req.Actor, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

type statusLogResponse struct {
	ID             string    `json:"id"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	Reason         string    `json:"reason,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Actor          string    `json:"actor"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// GetJobStatusHistory handles GET /api/v1/jobs/:jobID/status-history.
func (s *Server) GetJobStatusHistory(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetJobHistoryQuery(tenant, jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.handlers.JobHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]statusLogResponse, len(history))
	for i, row := range history {
		response[i] = statusLogResponse{
			ID:             row.ID.String(),
			PreviousStatus: row.PreviousStatus,
			NewStatus:      row.NewStatus,
			Reason:         row.Reason,
			Notes:          row.Notes,
			Actor:          row.Actor,
			OccurredAt:     row.OccurredAt,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

type addTaskRequest struct {
	Title                    string `json:"title"`
	EstimatedDurationMinutes int    `json:"estimatedDurationMinutes"`
	SortOrder                int    `json:"sortOrder"`
}

// AddTask handles POST /api/v1/jobs/:jobID/tasks.
func (s *Server) AddTask(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req addTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewAddTaskCommand(
		taskID, jobID, tenant,
		req.Title,
		time.Duration(req.EstimatedDurationMinutes)*time.Minute,
		req.SortOrder,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"id": taskID.String()})
}

type updateTaskRequest struct {
	Action                string `json:"action"`
	ActualDurationMinutes int    `json:"actualDurationMinutes"`
}

// UpdateTaskStatus handles PUT /api/v1/jobs/:jobID/tasks/:taskID, applying a
// lifecycle action (start, complete, cancel) to the task.
func (s *Server) UpdateTaskStatus(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}
	taskID, err := pathID(ctx, "taskID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateTaskStatusCommand(
		taskID, jobID, tenant,
		commands.TaskAction(req.Action),
		time.Duration(req.ActualDurationMinutes)*time.Minute,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateTaskStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

// RemoveTask handles DELETE /api/v1/jobs/:jobID/tasks/:taskID.
func (s *Server) RemoveTask(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}
	taskID, err := pathID(ctx, "taskID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveTaskCommand(taskID, jobID, tenant)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}
