package http

import (
	"net/http"
	"strings"
	"time"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"

	"github.com/labstack/echo/v4"
)

type scheduleEventRequest struct {
	JobID         string    `json:"jobId"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	CrewMemberIDs []string  `json:"crewMemberIds"`
	Notes         string    `json:"notes"`
	AllowOverride bool      `json:"allowOverride"`
	Actor         string    `json:"actor"`
}

type scheduleEventResponse struct {
	ID            string    `json:"id"`
	JobID         string    `json:"jobId,omitempty"`
	JobNumber     string    `json:"jobNumber,omitempty"`
	JobTitle      string    `json:"jobTitle,omitempty"`
	Status        string    `json:"status"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	CrewMemberIDs []string  `json:"crewMemberIds"`
	Notes         string    `json:"notes,omitempty"`
}

// CreateScheduleEvent handles POST /api/v1/schedule/events.
func (s *Server) CreateScheduleEvent(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req scheduleEventRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	jobID, err := parseUUID("jobId", req.JobID)
	if err != nil {
		return respondError(ctx, err)
	}
	crewIDs, err := parseIDList(req.CrewMemberIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	eventID := kernel.NewUUID()
	cmd, err := commands.NewCreateScheduleEventCommand(
		eventID, tenant, jobID,
		req.Start, req.End,
		crewIDs,
		req.Notes,
		req.AllowOverride,
		req.Actor,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"id": eventID.String()})
}

// CreateJobEvent handles POST /api/v1/jobs/:jobID/events, the job-scoped
// form of CreateScheduleEvent. The owning job comes from the path; a jobId in
// the body is ignored.
func (s *Server) CreateJobEvent(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req scheduleEventRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	crewIDs, err := parseIDList(req.CrewMemberIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	eventID := kernel.NewUUID()
	cmd, err := commands.NewCreateScheduleEventCommand(
		eventID, tenant, jobID,
		req.Start, req.End,
		crewIDs,
		req.Notes,
		req.AllowOverride,
		req.Actor,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"id": eventID.String()})
}

// UpdateScheduleEvent handles PUT /api/v1/schedule/events/:eventID and its
// job-scoped alias PUT /api/v1/jobs/:jobID/events/:eventID.
func (s *Server) UpdateScheduleEvent(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	eventID, err := pathID(ctx, "eventID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req scheduleEventRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	crewIDs, err := parseIDList(req.CrewMemberIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateScheduleEventCommand(
		eventID, tenant,
		req.Start, req.End,
		crewIDs,
		req.Notes,
		req.AllowOverride,
		req.Actor,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

// DeleteScheduleEvent handles DELETE /api/v1/schedule/events/:eventID and its
// job-scoped alias DELETE /api/v1/jobs/:jobID/events/:eventID.
func (s *Server) DeleteScheduleEvent(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	eventID, err := pathID(ctx, "eventID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteScheduleEventCommand(eventID, tenant)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

type transitionEventRequest struct {
	Status string `json:"status"`
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
}

// TransitionEventStatus handles PATCH /api/v1/schedule/events/:eventID/status.
func (s *Server) TransitionEventStatus(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	eventID, err := pathID(ctx, "eventID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req transitionEventRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	target, err := schedule.EventStatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionEventStatusCommand(eventID, tenant, target, req.Actor, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.TransitionEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

// GetScheduleOverview handles GET /api/v1/schedule/overview?from=&to=.
func (s *Server) GetScheduleOverview(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	from, to, err := parseTimeRange(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetScheduleOverviewQuery(tenant, from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	events, err := s.handlers.ScheduleOverview.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]scheduleEventResponse, len(events))
	for i, event := range events {
		response[i] = scheduleEventResponse{
			ID:            event.ID.String(),
			JobID:         event.JobID.String(),
			JobNumber:     event.JobNumber,
			JobTitle:      event.JobTitle,
			Status:        event.Status,
			Start:         event.Start,
			End:           event.End,
			CrewMemberIDs: idStrings(event.CrewMemberIDs),
			Notes:         event.Notes,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

// FindScheduleConflicts handles GET /api/v1/schedule/conflicts, a dry-run
// probe: ?crewMemberIds=a,b&from=&to=.
func (s *Server) FindScheduleConflicts(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	from, to, err := parseTimeRange(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	rawIDs := ctx.QueryParam("crewMemberIds")
	crewIDs, err := parseIDList(strings.Split(rawIDs, ","))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewFindScheduleConflictsQuery(tenant, crewIDs, from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	conflicts, err := s.handlers.ScheduleConflicts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]scheduleEventResponse, len(conflicts))
	for i, event := range conflicts {
		response[i] = scheduleEventResponse{
			ID:            event.ID.String(),
			JobID:         event.JobID.String(),
			Status:        event.Status,
			Start:         event.Start,
			End:           event.End,
			CrewMemberIDs: idStrings(event.CrewMemberIDs),
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

type optimizeScheduleRequest struct {
	HorizonStart time.Time `json:"horizonStart"`
	HorizonEnd   time.Time `json:"horizonEnd"`
}

type assignmentResponse struct {
	JobID        string    `json:"jobId"`
	CrewMemberID string    `json:"crewMemberId"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}

type unassignedJobResponse struct {
	JobID  string `json:"jobId"`
	Reason string `json:"reason"`
}

type optimizationPlanResponse struct {
	Assignments []assignmentResponse    `json:"assignments"`
	Unassigned  []unassignedJobResponse `json:"unassigned"`
}

// OptimizeSchedule handles POST /api/v1/schedule/optimize. The plan is a
// proposal: nothing is persisted until the caller creates the events.
func (s *Server) OptimizeSchedule(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req optimizeScheduleRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewOptimizeScheduleCommand(tenant, req.HorizonStart, req.HorizonEnd)
	if err != nil {
		return respondError(ctx, err)
	}

	plan, err := s.handlers.OptimizeSchedule.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := optimizationPlanResponse{
		Assignments: make([]assignmentResponse, len(plan.Assignments)),
		Unassigned:  make([]unassignedJobResponse, len(plan.Unassigned)),
	}
	for i, assignment := range plan.Assignments {
		response.Assignments[i] = assignmentResponse{
			JobID:        assignment.JobID.String(),
			CrewMemberID: assignment.CrewMemberID.String(),
			Start:        assignment.Window.Start(),
			End:          assignment.Window.End(),
		}
	}
	for i, unassigned := range plan.Unassigned {
		response.Unassigned[i] = unassignedJobResponse{
			JobID:  unassigned.JobID.String(),
			Reason: unassigned.Reason,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

// ListJobEvents handles GET /api/v1/jobs/:jobID/events.
func (s *Server) ListJobEvents(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListJobEventsQuery(tenant, jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	events, err := s.handlers.JobEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]scheduleEventResponse, len(events))
	for i, event := range events {
		response[i] = scheduleEventResponse{
			ID:            event.ID.String(),
			Status:        event.Status,
			Start:         event.Start,
			End:           event.End,
			CrewMemberIDs: idStrings(event.CrewMemberIDs),
			Notes:         event.Notes,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

// parseIDList parses UUID strings, skipping empty elements left over from
// splitting an empty query parameter.
func parseIDList(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		id, err := parseUUID("crewMemberIds", item)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseTimeRange reads the from/to RFC 3339 query parameters.
func parseTimeRange(ctx echo.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
