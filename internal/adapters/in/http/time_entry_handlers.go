package http

import (
	"net/http"
	"time"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type timeEntryRequest struct {
	CrewMemberID string    `json:"crewMemberId"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Note         string    `json:"note"`
}

type timeEntryResponse struct {
	ID             string    `json:"id"`
	CrewMemberID   string    `json:"crewMemberId"`
	CrewMemberName string    `json:"crewMemberName"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Note           string    `json:"note,omitempty"`
}

// GetJobTimeEntries handles GET /api/v1/jobs/:jobID/time-entries.
func (s *Server) GetJobTimeEntries(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetJobTimeEntriesQuery(tenant, jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.handlers.JobTimeEntries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]timeEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = timeEntryResponse{
			ID:             entry.ID.String(),
			CrewMemberID:   entry.CrewMemberID.String(),
			CrewMemberName: entry.CrewMemberName,
			Start:          entry.Start,
			End:            entry.End,
			Note:           entry.Note,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

// LogTimeEntry handles POST /api/v1/jobs/:jobID/time-entries.
func (s *Server) LogTimeEntry(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req timeEntryRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	crewMemberID, err := parseUUID("crewMemberId", req.CrewMemberID)
	if err != nil {
		return respondError(ctx, err)
	}

	entryID := kernel.NewUUID()
	cmd, err := commands.NewLogTimeEntryCommand(
		entryID, tenant, jobID, crewMemberID,
		req.Start, req.End,
		req.Note,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.LogTimeEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"id": entryID.String()})
}

// AmendTimeEntry handles PUT /api/v1/jobs/:jobID/time-entries/:entryID.
func (s *Server) AmendTimeEntry(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req timeEntryRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAmendTimeEntryCommand(entryID, tenant, req.Start, req.End, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AmendTimeEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

// DeleteTimeEntry handles DELETE /api/v1/jobs/:jobID/time-entries/:entryID.
func (s *Server) DeleteTimeEntry(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteTimeEntryCommand(entryID, tenant)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteTimeEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}
