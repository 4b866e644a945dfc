package impl

import (
	"context"

	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"
	"assethub/internal/domain/repository"
	"assethub/internal/errors"
)

// loadUser resolves a user by email, mapping a miss to the domain error.
func loadUser(ctx context.Context, repo repository.UserRepository, email string) (*entity.User, error) {
	user, err := repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// loadHR resolves an HR manager that owns a company.
func loadHR(ctx context.Context, repo repository.UserRepository, email string) (*entity.User, error) {
	user, err := loadUser(ctx, repo, email)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleHR {
		return nil, domainerrors.ErrForbidden.WithDetails("HR role required")
	}
	if !user.HasCompany() {
		return nil, domainerrors.ErrCompanyRequired
	}

	return user, nil
}

// loadEmployee resolves an employee; the company may be absent.
func loadEmployee(ctx context.Context, repo repository.UserRepository, email string) (*entity.User, error) {
	user, err := loadUser(ctx, repo, email)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleEmployee {
		return nil, domainerrors.ErrForbidden.WithDetails("employee role required")
	}

	return user, nil
}
