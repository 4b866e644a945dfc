package impl

import (
	"context"
	"log/slog"
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

const centsPerDollar = 100

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager repository.TransactionManager
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGateway
	logger      *slog.Logger
	now         func() time.Time
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	PaymentRepo repository.PaymentRepository
	Gateway     service.PaymentGateway
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		paymentRepo: params.PaymentRepo,
		gateway:     params.Gateway,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Packages returns the package catalogue.
func (srv *paymentService) Packages() []entity.Package {
	out := make([]entity.Package, len(entity.Packages))
	copy(out, entity.Packages)

	return out
}

// CreatePaymentIntent opens a provider intent for the package price.
func (srv *paymentService) CreatePaymentIntent(ctx context.Context, hrEmail string, input usecase.PaymentIntentInput) (*service.PaymentIntent, error) {
	hr, err := loadHR(ctx, srv.userRepo, hrEmail)
	if err != nil {
		return nil, err
	}

	pkg, ok := entity.FindPackage(input.PackageName)
	if !ok {
		return nil, domainerrors.ErrUnknownPackage
	}

	intent, err := srv.gateway.CreatePaymentIntent(ctx, pkg.Price*centsPerDollar, map[string]string{
		"email":   hr.Email,
		"package": pkg.Name,
		"company": hr.Company(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create payment intent", slog.String("email", hr.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentFailed, err.Error())
	}

	return intent, nil
}

// RecordPayment stores a settled payment and raises the HR member limit by the package's seats.
func (srv *paymentService) RecordPayment(ctx context.Context, hrEmail string, input usecase.RecordPaymentInput) (*entity.Viewer, error) {
	pkg, ok := entity.FindPackage(input.PackageName)
	if !ok {
		return nil, domainerrors.ErrUnknownPackage
	}

	var viewer *entity.Viewer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		hr, err := loadHR(ctx, userRepo, hrEmail)
		if err != nil {
			return err
		}

		payment := &entity.Payment{
			ID:            uuid.New(),
			Email:         hr.Email,
			PackageName:   pkg.Name,
			Price:         pkg.Price,
			MemberLimit:   pkg.MemberLimit,
			TransactionID: input.TransactionID,
			PaidAt:        srv.now(),
		}
		if err := repoFactory.PaymentRepo().Create(ctx, payment); err != nil {
			if errors.Is(err, repository.ErrDuplicatePayment) {
				return domainerrors.ErrPaymentAlreadyRecorded
			}

			return errors.Wrap(err, "failed to record payment")
		}

		hr.MemberLimit += pkg.MemberLimit
		hr.UpdatedAt = srv.now()
		if err := userRepo.Update(ctx, hr); err != nil {
			return errors.Wrap(err, "failed to raise member limit")
		}

		current, err := userRepo.CountEmployees(ctx, hr.Company())
		if err != nil {
			return errors.Wrap(err, "failed to count employees")
		}
		hr.CurrentMembers = current
		viewer = entity.ViewerOf(hr)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Payment recorded",
		slog.String("email", viewer.Email),
		slog.String("package", pkg.Name),
		slog.Int("memberLimit", viewer.MemberLimit),
	)

	return viewer, nil
}

// ListPayments returns the HR manager's payment history.
func (srv *paymentService) ListPayments(ctx context.Context, hrEmail string) ([]*entity.Payment, error) {
	hr, err := loadHR(ctx, srv.userRepo, hrEmail)
	if err != nil {
		return nil, err
	}

	payments, err := srv.paymentRepo.ListByEmail(ctx, hr.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}
