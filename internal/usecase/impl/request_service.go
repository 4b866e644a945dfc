package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "assethub/internal/delivery/context"
	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"
	"assethub/internal/domain/repository"
	"assethub/internal/domain/service"
	"assethub/internal/errors"
	"assethub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	assetRepo   repository.AssetRepository
	requestRepo repository.AssetRequestRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	AssetRepo   repository.AssetRepository
	RequestRepo repository.AssetRequestRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		assetRepo:   params.AssetRepo,
		requestRepo: params.RequestRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRequest opens a pending request for an in-stock asset of the employee's company.
func (srv *requestService) CreateRequest(ctx context.Context, employeeEmail string, input usecase.CreateRequestInput) (*entity.AssetRequest, error) {
	employee, err := loadEmployee(ctx, srv.userRepo, employeeEmail)
	if err != nil {
		return nil, err
	}
	if !employee.HasCompany() {
		return nil, domainerrors.ErrCompanyRequired.WithDetails("join a company before requesting assets")
	}

	asset, err := srv.assetRepo.FindByID(ctx, input.AssetID)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, domainerrors.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset")
	}
	if asset.CompanyName != employee.Company() {
		return nil, domainerrors.ErrNotInCompany
	}
	if !asset.InStock() {
		return nil, domainerrors.ErrOutOfStock
	}

	request := &entity.AssetRequest{
		ID:              uuid.New(),
		AssetID:         asset.ID,
		AssetName:       asset.ProductName,
		AssetType:       asset.ProductType,
		RequestDate:     srv.now(),
		Status:          entity.StatusPending,
		RequesterName:   employee.Name,
		RequesterEmail:  employee.Email,
		CompanyName:     asset.CompanyName,
		AdditionalNotes: strings.TrimSpace(input.AdditionalNotes),
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create asset request")
	}

	srv.log(ctx).Info("Asset requested",
		slog.String("requestID", request.ID.String()),
		slog.String("assetID", asset.ID.String()),
		slog.String("email", employee.Email),
	)

	return request, nil
}

// ListEmployeeRequests lists an employee's own requests.
func (srv *requestService) ListEmployeeRequests(ctx context.Context, email string, query entity.RequestQuery) ([]*entity.AssetRequest, error) {
	return srv.list(ctx, repository.RequestScope{RequesterEmail: normalizeEmail(email)}, query)
}

// ListMonthlyRequests lists an employee's requests made since the start of the current month.
func (srv *requestService) ListMonthlyRequests(ctx context.Context, email string, query entity.RequestQuery) ([]*entity.AssetRequest, error) {
	return srv.list(ctx, repository.RequestScope{
		RequesterEmail: normalizeEmail(email),
		Since:          startOfMonth(srv.now()),
	}, query)
}

// ListCompanyRequests lists all requests of the HR manager's company.
func (srv *requestService) ListCompanyRequests(ctx context.Context, hrEmail string, query entity.RequestQuery) ([]*entity.AssetRequest, error) {
	hr, err := loadHR(ctx, srv.userRepo, hrEmail)
	if err != nil {
		return nil, err
	}

	return srv.list(ctx, repository.RequestScope{CompanyName: hr.Company()}, query)
}

// ListPendingRequests lists the pending requests of the HR manager's company.
func (srv *requestService) ListPendingRequests(ctx context.Context, hrEmail string) ([]*entity.AssetRequest, error) {
	hr, err := loadHR(ctx, srv.userRepo, hrEmail)
	if err != nil {
		return nil, err
	}

	return srv.list(ctx, repository.RequestScope{CompanyName: hr.Company()}, entity.RequestQuery{Status: entity.StatusPending})
}

func (srv *requestService) list(ctx context.Context, scope repository.RequestScope, query entity.RequestQuery) ([]*entity.AssetRequest, error) {
	requests, err := srv.requestRepo.List(ctx, scope, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list asset requests")
	}

	return requests, nil
}

// Decide approves or rejects a pending request of the HR manager's company.
// Approval takes one unit out of stock in the same transaction.
func (srv *requestService) Decide(ctx context.Context, hrEmail string, id uuid.UUID, status entity.RequestStatus) (*entity.AssetRequest, error) {
	hr, err := loadHR(ctx, srv.userRepo, hrEmail)
	if err != nil {
		return nil, err
	}

	var action entity.RequestAction
	switch status {
	case entity.StatusApproved:
		action = entity.ActionApprove
	case entity.StatusRejected:
		action = entity.ActionReject
	default:
		return nil, domainerrors.ErrInvalidTransition.WithDetails("status must be approved or rejected")
	}

	authorize := func(request *entity.AssetRequest) error {
		if request.CompanyName != hr.Company() {
			return domainerrors.ErrNotInCompany
		}

		return nil
	}

	return srv.transition(ctx, hr.Email, id, action, authorize)
}

// Cancel withdraws the employee's own pending request.
func (srv *requestService) Cancel(ctx context.Context, employeeEmail string, id uuid.UUID) (*entity.AssetRequest, error) {
	return srv.transition(ctx, normalizeEmail(employeeEmail), id, entity.ActionCancel, requesterOnly(employeeEmail))
}

// Return gives back an approved returnable asset, putting one unit back in stock.
func (srv *requestService) Return(ctx context.Context, employeeEmail string, id uuid.UUID) (*entity.AssetRequest, error) {
	return srv.transition(ctx, normalizeEmail(employeeEmail), id, entity.ActionReturn, requesterOnly(employeeEmail))
}

func requesterOnly(email string) func(*entity.AssetRequest) error {
	email = normalizeEmail(email)

	return func(request *entity.AssetRequest) error {
		if request.RequesterEmail != email {
			return domainerrors.ErrNotRequester
		}

		return nil
	}
}

// transition applies action to a request inside one transaction, keeping stock in step with the status.
func (srv *requestService) transition(
	ctx context.Context,
	actor string,
	id uuid.UUID,
	action entity.RequestAction,
	authorize func(*entity.AssetRequest) error,
) (*entity.AssetRequest, error) {
	var (
		updated *entity.AssetRequest
		from    entity.RequestStatus
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.AssetRequestRepo()
		assetRepo := repoFactory.AssetRepo()

		request, err := requestRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}

			return errors.Wrap(err, "failed to find asset request")
		}

		if err := authorize(request); err != nil {
			return err
		}

		next, err := request.Next(action)
		if err != nil {
			return domainerrors.ErrInvalidTransition.WithDetails(
				string(action) + " is not allowed for a " + string(request.Status) + " request",
			)
		}

		switch action {
		case entity.ActionApprove:
			if err := assetRepo.AdjustQuantity(ctx, request.AssetID, -1); err != nil {
				return stockError(err)
			}
		case entity.ActionReturn:
			if err := assetRepo.AdjustQuantity(ctx, request.AssetID, 1); err != nil {
				return stockError(err)
			}
		}

		var approvalDate *time.Time
		if next == entity.StatusApproved {
			now := srv.now()
			approvalDate = &now
		}

		if err := requestRepo.UpdateStatus(ctx, request.ID, request.Status, next, approvalDate); err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrInvalidTransition.WithDetails("request changed concurrently")
			}

			return errors.Wrap(err, "failed to update request status")
		}

		from = request.Status
		request.Status = next
		if approvalDate != nil {
			request.ApprovalDate = approvalDate
		}
		updated = request

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Request transition failed",
			slog.String("requestID", id.String()),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Request transitioned",
		slog.String("requestID", id.String()),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Status)),
	)
	srv.publishStatusChanged(ctx, updated, from, actor)

	return updated, nil
}

// publishStatusChanged emits the change event; a failed publish does not undo the committed transition.
func (srv *requestService) publishStatusChanged(ctx context.Context, request *entity.AssetRequest, from entity.RequestStatus, actor string) {
	if srv.publisher == nil {
		return
	}

	event := &service.RequestStatusChanged{
		RequestID:      request.ID.String(),
		TraceID:        deliverycontext.GetRequestIDFromContext(ctx),
		AssetID:        request.AssetID.String(),
		AssetName:      request.AssetName,
		CompanyName:    request.CompanyName,
		RequesterEmail: request.RequesterEmail,
		From:           string(from),
		To:             string(request.Status),
		ChangedBy:      actor,
		ChangedAt:      srv.now(),
	}

	if err := srv.publisher.PublishRequestStatusChanged(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish request status change",
			slog.String("requestID", event.RequestID),
			slog.Any("error", err),
		)
	}
}

func stockError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInsufficientStock):
		return domainerrors.ErrOutOfStock
	case errors.Is(err, repository.ErrAssetNotFound):
		return domainerrors.ErrAssetNotFound
	default:
		return errors.Wrap(err, "failed to adjust asset quantity")
	}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
