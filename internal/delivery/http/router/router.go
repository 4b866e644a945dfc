// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"assethub/config"
	deliverymiddleware "assethub/internal/delivery/middleware"
	"assethub/internal/delivery/http/middleware"
	"assethub/internal/delivery/http/router/handler"
	"assethub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AssetHandler   *handler.AssetHandler
	RequestHandler *handler.RequestHandler
	TeamHandler    *handler.TeamHandler
	PaymentHandler *handler.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *deliverymiddleware.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	account *handler.AccountHandler
	asset   *handler.AssetHandler
	request *handler.RequestHandler
	team    *handler.TeamHandler
	payment *handler.PaymentHandler
	auth    *middleware.AuthMiddleware
	metrics *deliverymiddleware.Metrics
	config  *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		account: params.AccountHandler,
		asset:   params.AssetHandler,
		request: params.RequestHandler,
		team:    params.TeamHandler,
		payment: params.PaymentHandler,
		auth:    params.AuthMiddleware,
		metrics: params.Metrics,
		config:  params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Public routes
	e.POST("/jwt", r.account.IssueToken)
	e.GET("/packages", r.payment.Packages)

	authed := r.auth.Authenticate
	hr := r.auth.RequireRole(entity.RoleHR)
	employee := r.auth.RequireRole(entity.RoleEmployee)
	self := r.auth.MatchEmail

	// Any signed-in identity, registered or not
	e.POST("/users", r.account.Register, authed)
	e.PATCH("/users/profile", r.account.UpdateProfile, authed)
	e.GET("/users/role/:email", r.account.GetRole, authed, self)
	e.GET("/users-logo/:email", r.account.GetCompanyBrand, authed, self)
	e.GET("/myEmployees/:email", r.team.ListTeam, authed, self)

	// HR managers
	e.GET("/assets/:email", r.asset.ListCompanyAssets, authed, hr, self)
	e.POST("/add-asset", r.asset.AddAsset, authed, hr)
	e.PUT("/update-asset/:id", r.asset.UpdateAsset, authed, hr)
	e.DELETE("/assets/:id", r.asset.DeleteAsset, authed, hr)
	e.GET("/assets/:id/label", r.asset.AssetLabel, authed, hr)
	e.GET("/hr-stats/:email", r.asset.Stats, authed, hr, self)
	e.GET("/assetRequests/company/:email", r.request.ListCompanyRequests, authed, hr, self)
	e.GET("/assetRequests/pending/:email", r.request.ListPendingRequests, authed, hr, self)
	e.PATCH("/asset-request-status/:id", r.request.Decide, authed, hr)
	e.DELETE("/removeEmployee/:id/:email", r.team.RemoveEmployee, authed, hr, self)
	e.POST("/add-employees", r.team.AddEmployees, authed, hr)
	e.GET("/employees-without-company", r.team.ListUnaffiliated, authed, hr)
	e.POST("/create-payment-intent", r.payment.CreatePaymentIntent, authed, hr)
	e.POST("/payments", r.payment.RecordPayment, authed, hr)
	e.GET("/payments/:email", r.payment.ListPayments, authed, hr, self)

	// Employees
	e.GET("/employee-assets/:email", r.asset.ListRequestableAssets, authed, employee, self)
	e.POST("/assetRequests", r.request.CreateRequest, authed, employee)
	e.GET("/assetRequests/employee/:email", r.request.ListEmployeeRequests, authed, employee, self)
	e.GET("/assetRequests/monthly/:email", r.request.ListMonthlyRequests, authed, employee, self)
	e.PATCH("/assetRequestStatus/:id", r.request.Cancel, authed, employee)
	e.PATCH("/return-asset/:id", r.request.Return, authed, employee)
}
