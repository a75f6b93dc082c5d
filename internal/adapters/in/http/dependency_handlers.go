package http

import (
	"net/http"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type addDependencyRequest struct {
	PrerequisiteID string `json:"prerequisiteId"`
}

type dependencyResponse struct {
	ID                 string `json:"id"`
	DependentID        string `json:"dependentId"`
	DependentNumber    string `json:"dependentNumber"`
	PrerequisiteID     string `json:"prerequisiteId"`
	PrerequisiteNumber string `json:"prerequisiteNumber"`
}

// ListJobDependencies handles GET /api/v1/jobs/:jobID/dependencies. Edges
// where the job is the prerequisite are included too.
func (s *Server) ListJobDependencies(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListJobDependenciesQuery(tenant, jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	edges, err := s.handlers.JobDependencies.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]dependencyResponse, len(edges))
	for i, edge := range edges {
		response[i] = dependencyResponse{
			ID:                 edge.ID.String(),
			DependentID:        edge.DependentID.String(),
			DependentNumber:    edge.DependentNumber,
			PrerequisiteID:     edge.PrerequisiteID.String(),
			PrerequisiteNumber: edge.PrerequisiteNumber,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

// AddDependency handles POST /api/v1/jobs/:jobID/dependencies. The job in the
// path is the dependent; the body names its prerequisite.
func (s *Server) AddDependency(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req addDependencyRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	prerequisiteID, err := parseUUID("prerequisiteId", req.PrerequisiteID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddDependencyCommand(tenant, jobID, prerequisiteID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddDependency.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, nil)
}

// RemoveDependency handles DELETE /api/v1/jobs/:jobID/dependencies/:prerequisiteID.
func (s *Server) RemoveDependency(ctx echo.Context) error {
	tenant, err := tenantID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := pathID(ctx, "jobID")
	if err != nil {
		return respondError(ctx, err)
	}
	prerequisiteID, err := pathID(ctx, "prerequisiteID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveDependencyCommand(tenant, jobID, prerequisiteID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveDependency.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondNoData(ctx)
}
