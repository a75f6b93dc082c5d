// Package http exposes the scheduling engine over a JSON REST API. Every
// route is tenant-scoped through the X-Tenant-ID header; happy-path responses
// use a {success, data} envelope.
package http

import (
	"errors"
	"net/http"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// tenantHeader carries the resolved tenant id. Authentication happens
// upstream; by the time a request reaches this server the header is trusted.
const tenantHeader = "X-Tenant-ID"

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateJob           commands.CreateJobCommandHandler
	UpdateJob           commands.UpdateJobCommandHandler
	DeleteJob           commands.DeleteJobCommandHandler
	TransitionJob       commands.TransitionJobStatusCommandHandler
	CancelJob           commands.CancelJobCommandHandler
	AddTask             commands.AddTaskCommandHandler
	RemoveTask          commands.RemoveTaskCommandHandler
	UpdateTaskStatus    commands.UpdateTaskStatusCommandHandler
	CreateEvent         commands.CreateScheduleEventCommandHandler
	UpdateEvent         commands.UpdateScheduleEventCommandHandler
	DeleteEvent         commands.DeleteScheduleEventCommandHandler
	TransitionEvent     commands.TransitionEventStatusCommandHandler
	LogTimeEntry        commands.LogTimeEntryCommandHandler
	AmendTimeEntry      commands.AmendTimeEntryCommandHandler
	DeleteTimeEntry     commands.DeleteTimeEntryCommandHandler
	CreateCrewMember    commands.CreateCrewMemberCommandHandler
	UpdateCrewMember    commands.UpdateCrewMemberCommandHandler
	DeactivateCrew      commands.DeactivateCrewMemberCommandHandler
	DeclareAvailability commands.DeclareCrewAvailabilityCommandHandler
	RemoveAvailability  commands.RemoveCrewAvailabilityCommandHandler
	AddDependency       commands.AddDependencyCommandHandler
	RemoveDependency    commands.RemoveDependencyCommandHandler
	CreateTrigger       commands.CreateTriggerCommandHandler
	UpdateTrigger       commands.UpdateTriggerCommandHandler
	DeleteTrigger       commands.DeleteTriggerCommandHandler
	OptimizeSchedule    commands.OptimizeScheduleCommandHandler

	ListJobs          queries.ListJobsQueryHandler
	GetJob            queries.GetJobQueryHandler
	JobHistory        queries.GetJobHistoryQueryHandler
	JobTimeEntries    queries.GetJobTimeEntriesQueryHandler
	JobEvents         queries.ListJobEventsQueryHandler
	JobDependencies   queries.ListJobDependenciesQueryHandler
	ScheduleOverview  queries.GetScheduleOverviewQueryHandler
	ScheduleConflicts queries.FindScheduleConflictsQueryHandler
	ListCrewMembers   queries.ListCrewMembersQueryHandler
	CrewAvailability  queries.ListCrewAvailabilityQueryHandler
	ListTriggers      queries.ListTriggersQueryHandler
}

// Server routes HTTP requests to the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates the HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	jobs := api.Group("/jobs")
	jobs.GET("", s.ListJobs)
	jobs.POST("", s.CreateJob)
	jobs.GET("/:jobID", s.GetJob)
	jobs.PUT("/:jobID", s.UpdateJob)
	jobs.DELETE("/:jobID", s.DeleteJob)
	jobs.PATCH("/:jobID/status", s.TransitionJobStatus)
	jobs.POST("/:jobID/cancel", s.CancelJob)
	jobs.GET("/:jobID/status-history", s.GetJobStatusHistory)
	jobs.POST("/:jobID/tasks", s.AddTask)
	jobs.GET("/:jobID/tasks", s.ListJobTasks)
	jobs.PUT("/:jobID/tasks/:taskID", s.UpdateTaskStatus)
	jobs.DELETE("/:jobID/tasks/:taskID", s.RemoveTask)
	jobs.GET("/:jobID/events", s.ListJobEvents)
	jobs.POST("/:jobID/events", s.CreateJobEvent)
	jobs.PUT("/:jobID/events/:eventID", s.UpdateScheduleEvent)
	jobs.DELETE("/:jobID/events/:eventID", s.DeleteScheduleEvent)
	jobs.GET("/:jobID/time-entries", s.GetJobTimeEntries)
	jobs.POST("/:jobID/time-entries", s.LogTimeEntry)
	jobs.PUT("/:jobID/time-entries/:entryID", s.AmendTimeEntry)
	jobs.DELETE("/:jobID/time-entries/:entryID", s.DeleteTimeEntry)
	jobs.GET("/:jobID/dependencies", s.ListJobDependencies)
	jobs.POST("/:jobID/dependencies", s.AddDependency)
	jobs.DELETE("/:jobID/dependencies/:prerequisiteID", s.RemoveDependency)

	events := api.Group("/schedule/events")
	events.POST("", s.CreateScheduleEvent)
	events.PUT("/:eventID", s.UpdateScheduleEvent)
	events.DELETE("/:eventID", s.DeleteScheduleEvent)
	events.PATCH("/:eventID/status", s.TransitionEventStatus)

	api.GET("/schedule/overview", s.GetScheduleOverview)
	api.GET("/schedule/conflicts", s.FindScheduleConflicts)
	api.POST("/schedule/optimize", s.OptimizeSchedule)

	members := api.Group("/crew/members")
	members.GET("", s.ListCrewMembers)
	members.POST("", s.CreateCrewMember)
	members.PUT("/:crewMemberID", s.UpdateCrewMember)
	members.DELETE("/:crewMemberID", s.DeactivateCrewMember)
	members.GET("/:crewMemberID/availability", s.ListCrewAvailability)
	members.POST("/:crewMemberID/availability", s.DeclareCrewAvailability)
	members.DELETE("/:crewMemberID/availability/:availabilityID", s.RemoveCrewAvailability)

	triggers := api.Group("/automation/triggers")
	triggers.GET("", s.ListTriggers)
	triggers.POST("", s.CreateTrigger)
	triggers.PUT("/:triggerID", s.UpdateTrigger)
	triggers.DELETE("/:triggerID", s.DeleteTrigger)
}

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type errorResponse struct {
	Success             bool     `json:"success"`
	Error               string   `json:"error"`
	ConflictingEventIDs []string `json:"conflictingEventIds,omitempty"`
	BlockingJobIDs      []string `json:"blockingJobIds,omitempty"`
}

func respondData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, successResponse{Success: true, Data: data})
}

func respondNoData(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, successResponse{Success: true})
}

// respondError translates application and domain errors to HTTP statuses:
// not-found 404, validation 400, conflicts and illegal transitions 409,
// anything unrecognized 500 with the detail withheld.
func respondError(ctx echo.Context, err error) error {
	var conflictErr *commands.SchedulingConflictError
	if errors.As(err, &conflictErr) {
		return ctx.JSON(http.StatusConflict, errorResponse{
			Error:               err.Error(),
			ConflictingEventIDs: idStrings(conflictErr.ConflictingEventIDs),
		})
	}

	var unmetErr *commands.UnmetDependencyError
	if errors.As(err, &unmetErr) {
		return ctx.JSON(http.StatusConflict, errorResponse{
			Error:          err.Error(),
			BlockingJobIDs: idStrings(unmetErr.BlockingJobIDs),
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, job.ErrInvalidTransition),
		errors.Is(err, schedule.ErrInvalidTransition),
		errors.Is(err, job.ErrJobIsTerminal),
		errors.Is(err, schedule.ErrEventIsTerminal),
		errors.Is(err, commands.ErrCrewMemberInactive),
		errors.Is(err, commands.ErrCrewNotAvailable),
		errors.Is(err, commands.ErrJobHasReferences),
		errors.Is(err, crew.ErrAvailabilityOverlap):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrCyclicDependency),
		errors.Is(err, job.ErrSelfDependency),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: message})
}

// tenantID resolves the tenant from the request header.
func tenantID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(tenantHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(tenantHeader)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(tenantHeader, err)
	}
	return id, nil
}

// pathID parses a UUID path parameter.
func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	return parseUUID(name, ctx.Param(name))
}

// parseUUID parses a client-supplied UUID, tagging parse failures as
// validation errors so they surface as 400 rather than 500.
func parseUUID(name, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func idStrings(ids []kernel.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
