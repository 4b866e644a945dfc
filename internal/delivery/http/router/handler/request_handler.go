package handler

import (
	"context"
	"log/slog"
	"net/http"

	"assethub/internal/delivery/http/middleware"
	"assethub/internal/delivery/http/response"
	"assethub/internal/domain/entity"
	"assethub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler serves the asset request lifecycle.
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler.
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// CancelRequest is the employee's status change body; only cancellation is accepted.
type CancelRequest struct {
	Status entity.RequestStatus `json:"status" validate:"omitempty,eq=cancelled"`
}

// CreateRequest opens a request for an asset.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var input usecase.CreateRequestInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.requestUC.CreateRequest(c.Request().Context(), middleware.Email(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Request submitted")
}

// ListEmployeeRequests lists the employee's own requests.
func (h *RequestHandler) ListEmployeeRequests(c echo.Context) error {
	return h.list(c, h.requestUC.ListEmployeeRequests)
}

// ListMonthlyRequests lists the employee's requests of the current month.
func (h *RequestHandler) ListMonthlyRequests(c echo.Context) error {
	return h.list(c, h.requestUC.ListMonthlyRequests)
}

// ListCompanyRequests lists every request of the HR manager's company.
func (h *RequestHandler) ListCompanyRequests(c echo.Context) error {
	return h.list(c, h.requestUC.ListCompanyRequests)
}

// ListPendingRequests lists the pending requests of the HR manager's company.
func (h *RequestHandler) ListPendingRequests(c echo.Context) error {
	requests, err := h.requestUC.ListPendingRequests(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Decide approves or rejects a pending request.
func (h *RequestHandler) Decide(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.DecisionInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.requestUC.Decide(c.Request().Context(), middleware.Email(c), id, input.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Request "+string(request.Status))
}

// Cancel withdraws the employee's pending request.
func (h *RequestHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var body CancelRequest
	if c.Request().ContentLength != 0 {
		if err := bindBody(c, &body); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	request, err := h.requestUC.Cancel(c.Request().Context(), middleware.Email(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Request cancelled")
}

// Return gives back an approved returnable asset.
func (h *RequestHandler) Return(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.requestUC.Return(c.Request().Context(), middleware.Email(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Asset returned")
}

type listRequestsFunc func(ctx context.Context, email string, query entity.RequestQuery) ([]*entity.AssetRequest, error)

func (h *RequestHandler) list(c echo.Context, fetch listRequestsFunc) error {
	var query requestListQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	requests, err := fetch(c.Request().Context(), middleware.Email(c), query.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}
