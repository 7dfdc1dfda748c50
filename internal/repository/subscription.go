package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/subtrackr/backend/internal/domain"
)

const subscriptionColumns = `id, user_id, name, price_in_cents, category, billing_cycle, next_billing_date, status, notes, created_at, updated_at`

// SubscriptionRepository handles database operations for subscriptions.
// Every read and mutation is scoped by owner: a record belonging to another
// user is indistinguishable from a missing one.
type SubscriptionRepository struct {
	db Querier
}

// NewSubscriptionRepository creates a new SubscriptionRepository.
func NewSubscriptionRepository(db Querier) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create inserts a new subscription.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, user_id, name, price_in_cents, category, billing_cycle, next_billing_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		sub.ID, sub.UserID, sub.Name, sub.PriceInCents, sub.Category,
		string(sub.BillingCycle), sub.NextBillingDate, sub.Status, sub.Notes,
		sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// FindByID returns a subscription by ID for the given owner, or nil if absent.
func (r *SubscriptionRepository) FindByID(ctx context.Context, id, userID string) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1 AND user_id = $2`
	sub, err := r.scanOne(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}
	return sub, nil
}

// ListByUser returns all subscriptions owned by the given user, newest first.
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*domain.Subscription
	for rows.Next() {
		sub, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subscriptions: %w", err)
	}
	return subs, nil
}

// Update overwrites the mutable columns of an existing subscription.
func (r *SubscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	query := `
		UPDATE subscriptions
		SET name = $1, price_in_cents = $2, category = $3, billing_cycle = $4,
		    next_billing_date = $5, status = $6, notes = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`
	_, err := r.db.Exec(ctx, query,
		sub.Name, sub.PriceInCents, sub.Category, string(sub.BillingCycle),
		sub.NextBillingDate, sub.Status, sub.Notes, sub.UpdatedAt,
		sub.ID, sub.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

// Delete removes a subscription permanently (hard delete).
func (r *SubscriptionRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) scanOne(row pgx.Row) (*domain.Subscription, error) {
	var sub domain.Subscription
	var cycle string
	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.Name, &sub.PriceInCents, &sub.Category,
		&cycle, &sub.NextBillingDate, &sub.Status, &sub.Notes,
		&sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.BillingCycle = domain.BillingCycle(cycle)
	return &sub, nil
}
