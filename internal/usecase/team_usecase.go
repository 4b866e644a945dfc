package usecase

import (
	"context"

	"assethub/internal/domain/entity"

	"github.com/google/uuid"
)

// AddEmployeesInput lists unaffiliated employees to onboard.
type AddEmployeesInput struct {
	EmployeeIDs []uuid.UUID `json:"employeeIds" validate:"required,min=1,dive,required"`
}

// TeamUsecase manages company membership.
type TeamUsecase interface {
	// ListTeam lists the members of the viewer's company; empty for unaffiliated employees.
	ListTeam(ctx context.Context, email, search string) ([]*entity.User, error)

	// ListUnaffiliated lists employees without a company.
	ListUnaffiliated(ctx context.Context) ([]*entity.User, error)

	// AddEmployees onboards employees within the HR manager's member limit.
	AddEmployees(ctx context.Context, hrEmail string, input AddEmployeesInput) (*entity.Viewer, error)

	// RemoveEmployee detaches an employee from the HR manager's company.
	RemoveEmployee(ctx context.Context, hrEmail string, employeeID uuid.UUID) error
}
