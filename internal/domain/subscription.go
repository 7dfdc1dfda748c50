package domain

import (
	"time"

	"github.com/google/uuid"
)

// BillingCycle is the recurrence interval at which a subscription charges.
type BillingCycle string

const (
	BillingWeekly  BillingCycle = "weekly"
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// BillingCycles returns the closed set of valid billing cycles.
func BillingCycles() []BillingCycle {
	return []BillingCycle{BillingWeekly, BillingMonthly, BillingYearly}
}

// IsValid reports whether c is a member of the billing cycle set.
func (c BillingCycle) IsValid() bool {
	switch c {
	case BillingWeekly, BillingMonthly, BillingYearly:
		return true
	}
	return false
}

// Subscription statuses. The field is nullable; an absent status stays unset.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// DateLayout is the wire format for calendar dates (next_payment in,
// next_billing_date out).
const DateLayout = "2006-01-02"

// Subscription is a tracked recurring payment owned by one user.
// PriceInCents is the single source of truth for price; no decimal
// representation is persisted.
type Subscription struct {
	ID              string
	UserID          string
	Name            string
	PriceInCents    int64
	Category        *string
	BillingCycle    BillingCycle
	NextBillingDate time.Time
	Status          *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateSubscriptionRequest is the validated input for creating a subscription.
// Price is in major currency units and converted to cents after validation.
type CreateSubscriptionRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=255"`
	Price        float64 `json:"price" validate:"required,gte=1"`
	Category     *string `json:"category" validate:"omitempty,max=50"`
	BillingCycle string  `json:"billing_cycle" validate:"required,oneof=weekly monthly yearly"`
	NextPayment  string  `json:"next_payment" validate:"required"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive"`
	Notes        *string `json:"notes"`
}

// UpdateSubscriptionRequest is the validated input for a partial update.
// Only fields present in the payload are checked and written.
type UpdateSubscriptionRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Price        *float64 `json:"price" validate:"omitempty,gte=1"`
	Category     *string  `json:"category" validate:"omitempty,max=50"`
	BillingCycle *string  `json:"billing_cycle" validate:"omitempty,oneof=weekly monthly yearly"`
	NextPayment  *string  `json:"next_payment"`
	Status       *string  `json:"status" validate:"omitempty,oneof=active inactive"`
	Notes        *string  `json:"notes"`
}

// SubscriptionResponse is the API representation of a subscription.
type SubscriptionResponse struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	Name            string       `json:"name"`
	PriceInCents    int64        `json:"price_in_cents"`
	Category        *string      `json:"category"`
	BillingCycle    BillingCycle `json:"billing_cycle"`
	NextBillingDate string       `json:"next_billing_date"`
	Status          *string      `json:"status"`
	Notes           *string      `json:"notes"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Response maps the entity to its API representation.
func (s *Subscription) Response() *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		Name:            s.Name,
		PriceInCents:    s.PriceInCents,
		Category:        s.Category,
		BillingCycle:    s.BillingCycle,
		NextBillingDate: s.NextBillingDate.Format(DateLayout),
		Status:          s.Status,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// NewSubscriptionID generates a new UUID for a subscription.
func NewSubscriptionID() string {
	return uuid.New().String()
}
