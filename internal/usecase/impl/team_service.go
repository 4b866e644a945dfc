package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "assethub/internal/delivery/context"
	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"
	"assethub/internal/domain/repository"
	"assethub/internal/errors"
	"assethub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// teamService implements the TeamUsecase interface.
type teamService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// TeamServiceParams holds dependencies for TeamService, injected by Fx.
type TeamServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewTeamService is the constructor for teamService.
func NewTeamService(params TeamServiceParams) usecase.TeamUsecase {
	return &teamService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *teamService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTeam lists the members of the viewer's company.
func (srv *teamService) ListTeam(ctx context.Context, email, search string) ([]*entity.User, error) {
	user, err := loadUser(ctx, srv.userRepo, email)
	if err != nil {
		return nil, err
	}
	if !user.HasCompany() {
		return []*entity.User{}, nil
	}

	members, err := srv.userRepo.ListByCompany(ctx, user.Company(), strings.TrimSpace(search))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team members")
	}

	return members, nil
}

// ListUnaffiliated lists employees without a company.
func (srv *teamService) ListUnaffiliated(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListUnaffiliated(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unaffiliated employees")
	}

	return users, nil
}

// AddEmployees onboards unaffiliated employees, refusing the whole batch when it would exceed the member limit.
func (srv *teamService) AddEmployees(ctx context.Context, hrEmail string, input usecase.AddEmployeesInput) (*entity.Viewer, error) {
	ids := uniqueIDs(input.EmployeeIDs)

	var viewer *entity.Viewer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		hr, err := loadHR(ctx, userRepo, hrEmail)
		if err != nil {
			return err
		}

		current, err := userRepo.CountEmployees(ctx, hr.Company())
		if err != nil {
			return errors.Wrap(err, "failed to count employees")
		}
		hr.CurrentMembers = current

		if len(ids) > hr.RemainingSeats() {
			return domainerrors.ErrMemberLimitExceeded
		}

		employees, err := userRepo.FindByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to find employees")
		}
		if len(employees) != len(ids) {
			return domainerrors.ErrUserNotFound.WithDetails("one or more employees do not exist")
		}
		for _, employee := range employees {
			if employee.Role != entity.RoleEmployee || employee.HasCompany() {
				return domainerrors.ErrAlreadyAffiliated.WithDetails(employee.Email)
			}
		}

		company := hr.Company()
		if err := userRepo.SetCompany(ctx, ids, &company, hr.CompanyLogo); err != nil {
			return errors.Wrap(err, "failed to attach employees")
		}

		hr.CurrentMembers += len(ids)
		viewer = entity.ViewerOf(hr)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Employees added", slog.String("company", *viewer.CompanyName), slog.Int("count", len(ids)))

	return viewer, nil
}

// RemoveEmployee detaches an employee from the HR manager's company.
func (srv *teamService) RemoveEmployee(ctx context.Context, hrEmail string, employeeID uuid.UUID) error {
	hr, err := loadHR(ctx, srv.userRepo, hrEmail)
	if err != nil {
		return err
	}

	employee, err := srv.userRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find employee")
	}
	if employee.Role != entity.RoleEmployee || employee.Company() != hr.Company() {
		return domainerrors.ErrNotInCompany
	}

	if err := srv.userRepo.SetCompany(ctx, []uuid.UUID{employee.ID}, nil, ""); err != nil {
		return errors.Wrap(err, "failed to detach employee")
	}

	srv.log(ctx).Info("Employee removed", slog.String("company", hr.Company()), slog.String("email", employee.Email))

	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
