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

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves the package catalogue and payments.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// Packages lists the member-limit packages.
func (h *PaymentHandler) Packages(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.paymentUC.Packages(), "")
}

// CreatePaymentIntent opens a payment intent for a package.
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var input usecase.PaymentIntentInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	intent, err := h.paymentUC.CreatePaymentIntent(c.Request().Context(), middleware.Email(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, intent, "")
}

// RecordPayment stores a settled payment and raises the member limit.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var input usecase.RecordPaymentInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	viewer, err := h.paymentUC.RecordPayment(c.Request().Context(), middleware.Email(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, viewer, "Payment recorded")
}

// ListPayments returns the HR manager's payment history.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.paymentUC.ListPayments(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}
