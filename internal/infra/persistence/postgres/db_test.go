package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"assethub/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)

// newTestDB opens a private in-memory SQLite database with the production session settings and schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	db = configure(db, slog.New(slog.NewTextHandler(io.Discard, nil)), false)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role entity.Role, company *string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Role:        role,
		CompanyName: company,
		CreatedAt:   baseTime,
		UpdatedAt:   baseTime,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedAsset(t *testing.T, db *gorm.DB, name string, assetType entity.ProductType, qty int, company string, added time.Time) *entity.Asset {
	t.Helper()

	asset := &entity.Asset{
		ID:              uuid.New(),
		ProductName:     name,
		ProductType:     assetType,
		ProductQuantity: qty,
		DateAdded:       added,
		CompanyName:     company,
		HREmail:         "hr@" + company + ".test",
	}
	require.NoError(t, NewAssetRepository(db).Create(context.Background(), asset))

	return asset
}

func strPtr(s string) *string {
	return &s
}
