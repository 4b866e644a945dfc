// Package impl contains the implementation of the application's business logic.
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	verifier     service.IdentityVerifier
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Verifier     service.IdentityVerifier
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		verifier:     params.Verifier,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueToken exchanges a verified identity for a backend token carrying the current role.
// Identities without a profile get a role-less token so they can complete registration.
func (srv *accountService) IssueToken(ctx context.Context, idToken string) (*usecase.TokenOutput, error) {
	identity, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidIDToken, err.Error())
	}

	email := normalizeEmail(identity.Email)
	if email == "" {
		return nil, domainerrors.ErrInvalidIDToken.WrapMessage("identity has no email")
	}

	viewer, err := srv.GetRole(ctx, email)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := srv.tokenService.GenerateToken(email, viewer.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("Issued backend token", slog.String("email", email), slog.String("role", viewer.Role.String()))

	return &usecase.TokenOutput{Token: token, ExpiresAt: expiresAt, Viewer: viewer}, nil
}

// Register creates the profile of a signed-in identity.
func (srv *accountService) Register(ctx context.Context, email string, input usecase.RegisterInput) (*entity.User, error) {
	email = normalizeEmail(email)

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}
	if existing != nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	user := &entity.User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		PhotoURL:  input.PhotoURL,
		Role:      input.Role,
		CreatedAt: srv.now(),
		UpdatedAt: srv.now(),
	}

	switch input.Role {
	case entity.RoleHR:
		company := strings.TrimSpace(input.CompanyName)
		if company == "" {
			return nil, domainerrors.ErrCompanyRequired
		}
		if _, ok := entity.FindPackage(input.PackageName); !ok {
			return nil, domainerrors.ErrUnknownPackage
		}
		// The package's seats are granted once its payment is recorded.
		user.CompanyName = &company
		user.CompanyLogo = input.CompanyLogo
	case entity.RoleEmployee:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Registered profile", slog.String("email", email), slog.String("role", user.Role.String()))

	return user, nil
}

// GetRole answers the viewer's role and company.
func (srv *accountService) GetRole(ctx context.Context, email string) (*entity.Viewer, error) {
	email = normalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return &entity.Viewer{Email: email, Role: entity.RoleNone}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.Role == entity.RoleHR && user.HasCompany() {
		count, err := srv.userRepo.CountEmployees(ctx, user.Company())
		if err != nil {
			return nil, errors.Wrap(err, "failed to count employees")
		}
		user.CurrentMembers = count
	}

	return entity.ViewerOf(user), nil
}

// GetCompanyBrand returns the company name and logo of the viewer.
func (srv *accountService) GetCompanyBrand(ctx context.Context, email string) (*usecase.CompanyBrand, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return &usecase.CompanyBrand{CompanyName: user.CompanyName, CompanyLogo: user.CompanyLogo}, nil
}

// UpdateProfile changes name and photo.
func (srv *accountService) UpdateProfile(ctx context.Context, email string, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	user.Name = strings.TrimSpace(input.Name)
	user.PhotoURL = input.PhotoURL
	user.UpdatedAt = srv.now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
