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

// AssetHandlerParams holds dependencies for AssetHandler, injected by Fx.
type AssetHandlerParams struct {
	fx.In

	AssetUC usecase.AssetUsecase
	Logger  *slog.Logger
}

// AssetHandler serves the inventory endpoints.
type AssetHandler struct {
	assetUC usecase.AssetUsecase
	logger  *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler.
func NewAssetHandler(params AssetHandlerParams) *AssetHandler {
	return &AssetHandler{
		assetUC: params.AssetUC,
		logger:  params.Logger,
	}
}

// ListCompanyAssets lists the HR manager's inventory.
func (h *AssetHandler) ListCompanyAssets(c echo.Context) error {
	var query assetListQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	assets, err := h.assetUC.ListCompanyAssets(c.Request().Context(), middleware.Email(c), query.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assets, "")
}

// ListRequestableAssets lists the assets an employee may request.
func (h *AssetHandler) ListRequestableAssets(c echo.Context) error {
	var query assetListQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	assets, err := h.assetUC.ListRequestableAssets(c.Request().Context(), middleware.Email(c), query.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assets, "")
}

// AddAsset creates an asset.
func (h *AssetHandler) AddAsset(c echo.Context) error {
	var input usecase.AssetInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	asset, err := h.assetUC.AddAsset(c.Request().Context(), middleware.Email(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, asset, "Asset added")
}

// UpdateAsset edits an asset.
func (h *AssetHandler) UpdateAsset(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.AssetInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	asset, err := h.assetUC.UpdateAsset(c.Request().Context(), middleware.Email(c), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, asset, "Asset updated")
}

// DeleteAsset removes an asset.
func (h *AssetHandler) DeleteAsset(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.assetUC.DeleteAsset(c.Request().Context(), middleware.Email(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Asset deleted")
}

// AssetLabel returns the asset's QR label as a PNG.
func (h *AssetHandler) AssetLabel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.assetUC.AssetLabel(c.Request().Context(), middleware.Email(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Stats returns the HR home view summary.
func (h *AssetHandler) Stats(c echo.Context) error {
	stats, err := h.assetUC.Stats(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
