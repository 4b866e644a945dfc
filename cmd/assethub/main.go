package main

import (
	"context"
	"log/slog"
	"os"

	"assethub/config"
	"assethub/internal/delivery"
	"assethub/internal/delivery/http"
	"assethub/internal/delivery/http/middleware"
	"assethub/internal/delivery/http/router/handler"
	deliverymiddleware "assethub/internal/delivery/middleware"
	"assethub/internal/domain/service"
	"assethub/internal/infra/auth"
	logs "assethub/internal/infra/log"
	"assethub/internal/infra/payment"
	"assethub/internal/infra/persistence/postgres"
	"assethub/internal/infra/pubsub"
	"assethub/internal/infra/qrcode"
	"assethub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAssetRepository,
			postgres.NewAssetRequestRepository,
			postgres.NewPaymentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			auth.NewFirebaseVerifier,
			payment.NewStripeGateway,
			newLabelService,
		),
	)
}

// newLabelService creates the asset label renderer, falling back to defaults when unconfigured
func newLabelService(cfg *config.Config) service.LabelService {
	if cfg.QRCode == nil {
		return qrcode.NewLabelService(0, "", "")
	}

	return qrcode.NewLabelService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewAssetService,
			impl.NewRequestService,
			impl.NewTeamService,
			impl.NewPaymentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			deliverymiddleware.NewMetrics,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewAssetHandler,
			handler.NewRequestHandler,
			handler.NewTeamHandler,
			handler.NewPaymentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
