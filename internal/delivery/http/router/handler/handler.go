// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"assethub/internal/delivery/http/response"
	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// assetListQuery binds the asset list filters from the query string.
type assetListQuery struct {
	Search string `query:"search" validate:"max=100"`
	Stock  string `query:"stock" validate:"omitempty,oneof=available out-of-stock limited"`
	Type   string `query:"type" validate:"omitempty,oneof=Returnable Non-returnable"`
	Sort   string `query:"sort" validate:"omitempty,oneof=asc desc"`
}

func (q assetListQuery) toEntity() entity.AssetQuery {
	return entity.AssetQuery{
		Search: q.Search,
		Stock:  entity.StockLevel(q.Stock),
		Type:   entity.ProductType(q.Type),
		Sort:   entity.SortOrder(q.Sort),
	}
}

// requestListQuery binds the request list filters from the query string.
type requestListQuery struct {
	Search string `query:"search" validate:"max=100"`
	Status string `query:"status" validate:"omitempty,oneof=pending approved rejected cancelled returned"`
	Type   string `query:"type" validate:"omitempty,oneof=Returnable Non-returnable"`
}

func (q requestListQuery) toEntity() entity.RequestQuery {
	return entity.RequestQuery{
		Search: q.Search,
		Status: entity.RequestStatus(q.Status),
		Type:   entity.ProductType(q.Type),
	}
}

// bindQuery fills dst from the query string only and validates it.
func bindQuery(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid query parameters")
	}

	return c.Validate(dst)
}

// bindBody fills dst from the request body and validates it.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	return c.Validate(dst)
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
