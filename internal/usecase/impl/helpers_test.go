package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"
	"assethub/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 18, 10, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return fixedNow
}

func strPtr(s string) *string {
	return &s
}

func newHR(company string, limit int) *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		Name:        "Hana HR",
		Email:       "hr@" + company + ".test",
		Role:        entity.RoleHR,
		CompanyName: strPtr(company),
		CompanyLogo: "https://cdn.test/" + company + ".png",
		MemberLimit: limit,
	}
}

func newEmployee(email string, company *string) *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		Name:        "Emil Employee",
		Email:       email,
		Role:        entity.RoleEmployee,
		CompanyName: company,
	}
}

// requireAppError asserts that err carries an AppError with the same code as want.
func requireAppError(t *testing.T, err error, want domainerrors.AppError) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}
