package http

import (
	"net/http"
	"time"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type crewMemberRequest struct {
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	MaxHoursPerDay  int      `json:"maxHoursPerDay"`
	MaxHoursPerWeek int      `json:"maxHoursPerWeek"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

type crewMemberResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	MaxHoursPerDay  int      `json:"maxHoursPerDay"`
	MaxHoursPerWeek int      `json:"maxHoursPerWeek"`
	IsActive        bool     `json:"isActive"`
}

// ListCrewMembers handles GET /api/v1/crew/members.
func (s *Server) ListCrewMembers(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListCrewMembersQuery(tenant)
	if err != nil {
		return respondError(ctx, err)
	}

	members, err := s.handlers.ListCrewMembers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]crewMemberResponse, len(members))
	for i, member := range members {
		response[i] = crewMemberResponse{
			ID:              member.ID.String(),
			Name:            member.Name,
			Skills:          member.Skills,
			MaxHoursPerDay:  member.MaxHoursPerDay,
			MaxHoursPerWeek: member.MaxHoursPerWeek,
			IsActive:        member.IsActive,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

// CreateCrewMember handles POST /api/v1/crew/members.
func (s *Server) CreateCrewMember(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req crewMemberRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	crewMemberID := kernel.NewUUID()
	cmd, err := commands.NewCreateCrewMemberCommand(
		crewMemberID, tenant,
		req.Name,
		req.Skills,
		req.MaxHoursPerDay,
		req.MaxHoursPerWeek,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateCrewMember.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"id": crewMemberID.String()})
}

// UpdateCrewMember handles PUT /api/v1/crew/members/:crewMemberID.
func (s *Server) UpdateCrewMember(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	crewMemberID, err := pathID(ctx, "crewMemberID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req crewMemberRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	cmd, err := commands.NewUpdateCrewMemberCommand(
		crewMemberID, tenant,
		req.Name,
		req.Skills,
		req.MaxHoursPerDay,
		req.MaxHoursPerWeek,
		isActive,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateCrewMember.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

// DeactivateCrewMember handles DELETE /api/v1/crew/members/:crewMemberID.
// Crew members are never hard-deleted; their time entries stay on record.
func (s *Server) DeactivateCrewMember(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	crewMemberID, err := pathID(ctx, "crewMemberID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeactivateCrewMemberCommand(crewMemberID, tenant)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeactivateCrew.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}

type declareAvailabilityRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Kind  string    `json:"kind"`
}

type availabilityResponse struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Kind  string    `json:"kind"`
}

// ListCrewAvailability handles GET /api/v1/crew/members/:crewMemberID/availability.
func (s *Server) ListCrewAvailability(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	crewMemberID, err := pathID(ctx, "crewMemberID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListCrewAvailabilityQuery(tenant, crewMemberID)
	if err != nil {
		return respondError(ctx, err)
	}

	windows, err := s.handlers.CrewAvailability.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]availabilityResponse, len(windows))
	for i, window := range windows {
		response[i] = availabilityResponse{
			ID:    window.ID.String(),
			Start: window.Start,
			End:   window.End,
			Kind:  window.Kind,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

// DeclareCrewAvailability handles POST /api/v1/crew/members/:crewMemberID/availability.
func (s *Server) DeclareCrewAvailability(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	crewMemberID, err := pathID(ctx, "crewMemberID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req declareAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	kind, err := crew.AvailabilityKindFromString(req.Kind)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeclareCrewAvailabilityCommand(crewMemberID, tenant, req.Start, req.End, kind)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeclareAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, nil)
}

// RemoveCrewAvailability handles DELETE /api/v1/crew/members/:crewMemberID/availability/:availabilityID.
func (s *Server) RemoveCrewAvailability(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	crewMemberID, err := pathID(ctx, "crewMemberID")
	if err != nil {
		return respondError(ctx, err)
	}
	availabilityID, err := pathID(ctx, "availabilityID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCrewAvailabilityCommand(crewMemberID, tenant, availabilityID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}
