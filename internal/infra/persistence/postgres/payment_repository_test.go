package postgres

import (
	"context"
	"testing"
	"time"

	"assethub/internal/domain/entity"
	"assethub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	first := &entity.Payment{Email: "hana@acme.test", PackageName: "basic", Price: 5, MemberLimit: 5, TransactionID: "pi_1", PaidAt: baseTime}
	second := &entity.Payment{Email: "hana@acme.test", PackageName: "premium", Price: 15, MemberLimit: 20, TransactionID: "pi_2", PaidAt: baseTime.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	dup := &entity.Payment{Email: "hana@acme.test", PackageName: "basic", Price: 5, MemberLimit: 5, TransactionID: "pi_1", PaidAt: baseTime}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicatePayment)

	payments, err := repo.ListByEmail(ctx, "hana@acme.test")
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "pi_2", payments[0].TransactionID)
	assert.Equal(t, "pi_1", payments[1].TransactionID)
}
