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

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves token exchange, registration and role lookup.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// IssueTokenRequest carries the identity-provider ID token.
type IssueTokenRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// IssueToken exchanges a Firebase ID token for a backend token.
func (h *AccountHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := bindBody(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.IssueToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Token issued")
}

// Register creates the profile of the signed-in identity.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.Register(c.Request().Context(), middleware.Email(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// GetRole answers the viewer's role and company.
func (h *AccountHandler) GetRole(c echo.Context) error {
	viewer, err := h.accountUC.GetRole(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, viewer, "")
}

// GetCompanyBrand returns the viewer's company name and logo.
func (h *AccountHandler) GetCompanyBrand(c echo.Context) error {
	brand, err := h.accountUC.GetCompanyBrand(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brand, "")
}

// UpdateProfile changes the viewer's name and photo.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), middleware.Email(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}
