// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"assethub/internal/domain/entity"
	"assethub/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDs retrieves every user whose ID is listed; unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// ListByCompany returns the members of a company whose name or email matches search.
	ListByCompany(ctx context.Context, company, search string) ([]*entity.User, error)

	// ListUnaffiliated returns employees that belong to no company.
	ListUnaffiliated(ctx context.Context) ([]*entity.User, error)

	// CountEmployees counts the employees of a company.
	CountEmployees(ctx context.Context, company string) (int, error)

	// SetCompany attaches employees to a company (or detaches them when company is nil).
	SetCompany(ctx context.Context, ids []uuid.UUID, company *string, logo string) error
}
