package handler

import (
	"log/slog"
	"net/http"

	"assethub/internal/delivery/http/middleware"
	"assethub/internal/delivery/http/response"
	"assethub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TeamHandlerParams holds dependencies for TeamHandler, injected by Fx.
type TeamHandlerParams struct {
	fx.In

	TeamUC usecase.TeamUsecase
	Logger *slog.Logger
}

// TeamHandler serves company membership endpoints.
type TeamHandler struct {
	teamUC usecase.TeamUsecase
	logger *slog.Logger
}

// NewTeamHandler is the constructor for TeamHandler.
func NewTeamHandler(params TeamHandlerParams) *TeamHandler {
	return &TeamHandler{
		teamUC: params.TeamUC,
		logger: params.Logger,
	}
}

type teamListQuery struct {
	Search string `query:"search" validate:"max=100"`
}

// ListTeam lists the members of the viewer's company.
func (h *TeamHandler) ListTeam(c echo.Context) error {
	var query teamListQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	members, err := h.teamUC.ListTeam(c.Request().Context(), middleware.Email(c), query.Search)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members, "")
}

// ListUnaffiliated lists employees without a company.
func (h *TeamHandler) ListUnaffiliated(c echo.Context) error {
	users, err := h.teamUC.ListUnaffiliated(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// AddEmployees onboards unaffiliated employees.
func (h *TeamHandler) AddEmployees(c echo.Context) error {
	var input usecase.AddEmployeesInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	viewer, err := h.teamUC.AddEmployees(c.Request().Context(), middleware.Email(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, viewer, "Employees added")
}

// RemoveEmployee detaches an employee from the company.
func (h *TeamHandler) RemoveEmployee(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.teamUC.RemoveEmployee(c.Request().Context(), middleware.Email(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Employee removed")
}
