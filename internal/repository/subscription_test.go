package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtrackr/backend/internal/domain"
)

func newSubscriptionRepoWithMock(t *testing.T) (*SubscriptionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewSubscriptionRepository(mock), mock
}

func sampleSubscription() *domain.Subscription {
	category := "Entertainment"
	status := domain.StatusActive
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Subscription{
		ID:              "sub-1",
		UserID:          "user-1",
		Name:            "Netflix",
		PriceInCents:    1590,
		Category:        &category,
		BillingCycle:    domain.BillingMonthly,
		NextBillingDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:          &status,
		Notes:           nil,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func subscriptionRows(sub *domain.Subscription) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "name", "price_in_cents", "category", "billing_cycle",
		"next_billing_date", "status", "notes", "created_at", "updated_at",
	}).AddRow(
		sub.ID, sub.UserID, sub.Name, sub.PriceInCents, sub.Category,
		string(sub.BillingCycle), sub.NextBillingDate, sub.Status, sub.Notes,
		sub.CreatedAt, sub.UpdatedAt,
	)
}

func TestSubscriptionRepository_Create(t *testing.T) {
	repo, mock := newSubscriptionRepoWithMock(t)
	sub := sampleSubscription()

	mock.ExpectExec(`INSERT INTO subscriptions`).
		WithArgs(
			sub.ID, sub.UserID, sub.Name, sub.PriceInCents, sub.Category,
			"monthly", sub.NextBillingDate, sub.Status, sub.Notes,
			sub.CreatedAt, sub.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), sub))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_FindByID(t *testing.T) {
	repo, mock := newSubscriptionRepoWithMock(t)
	sub := sampleSubscription()

	mock.ExpectQuery(`FROM subscriptions WHERE id = \$1 AND user_id = \$2`).
		WithArgs("sub-1", "user-1").
		WillReturnRows(subscriptionRows(sub))

	got, err := repo.FindByID(context.Background(), "sub-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, domain.BillingMonthly, got.BillingCycle)
	assert.Equal(t, int64(1590), got.PriceInCents)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Entertainment", *got.Category)
	assert.Nil(t, got.Notes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newSubscriptionRepoWithMock(t)

	mock.ExpectQuery(`FROM subscriptions WHERE id = \$1 AND user_id = \$2`).
		WithArgs("missing", "user-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "name", "price_in_cents", "category", "billing_cycle",
			"next_billing_date", "status", "notes", "created_at", "updated_at",
		}))

	got, err := repo.FindByID(context.Background(), "missing", "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSubscriptionRepository_ListByUser(t *testing.T) {
	repo, mock := newSubscriptionRepoWithMock(t)
	sub := sampleSubscription()

	mock.ExpectQuery(`FROM subscriptions WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs("user-1").
		WillReturnRows(subscriptionRows(sub))

	subs, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "sub-1", subs[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_Update(t *testing.T) {
	repo, mock := newSubscriptionRepoWithMock(t)
	sub := sampleSubscription()
	sub.PriceInCents = 999

	mock.ExpectExec(`UPDATE subscriptions`).
		WithArgs(
			sub.Name, sub.PriceInCents, sub.Category, "monthly",
			sub.NextBillingDate, sub.Status, sub.Notes, sub.UpdatedAt,
			sub.ID, sub.UserID,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Update(context.Background(), sub))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_Delete(t *testing.T) {
	repo, mock := newSubscriptionRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM subscriptions WHERE id = \$1 AND user_id = \$2`).
		WithArgs("sub-1", "user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), "sub-1", "user-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_CreateError(t *testing.T) {
	repo, mock := newSubscriptionRepoWithMock(t)
	sub := sampleSubscription()

	mock.ExpectExec(`INSERT INTO subscriptions`).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create subscription")
}
