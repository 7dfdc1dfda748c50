package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/subtrackr/backend/internal/domain"
)

// SubscriptionStore is the persistence capability the service depends on.
type SubscriptionStore interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	FindByID(ctx context.Context, id, userID string) (*domain.Subscription, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Subscription, error)
	Update(ctx context.Context, sub *domain.Subscription) error
	Delete(ctx context.Context, id, userID string) error
}

// SubscriptionService implements the subscription CRUD operations: payload
// validation, price normalization, and owner-scoped persistence.
type SubscriptionService struct {
	store    SubscriptionStore
	validate *validator.Validate
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(store SubscriptionStore) *SubscriptionService {
	v := validator.New()
	// Report errors under json field names, not Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &SubscriptionService{store: store, validate: v}
}

// Create validates the payload, derives price_in_cents and next_billing_date,
// and persists a new subscription owned by userID. Ownership always comes
// from the authenticated caller, never from the payload.
func (s *SubscriptionService) Create(ctx context.Context, userID string, req *domain.CreateSubscriptionRequest) (*domain.Subscription, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(fieldErrors(err))
	}

	nextBilling, err := parseDate(req.NextPayment)
	if err != nil {
		return nil, domain.ErrValidation(map[string]string{"next_payment": "must be a valid date"})
	}

	now := time.Now()
	sub := &domain.Subscription{
		ID:              domain.NewSubscriptionID(),
		UserID:          userID,
		Name:            req.Name,
		PriceInCents:    priceToCents(req.Price),
		Category:        req.Category,
		BillingCycle:    domain.BillingCycle(req.BillingCycle),
		NextBillingDate: nextBilling,
		Status:          req.Status,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Create(ctx, sub); err != nil {
		return nil, domain.ErrInternal("failed to create subscription", err)
	}
	return sub, nil
}

// List returns all subscriptions owned by userID.
func (s *SubscriptionService) List(ctx context.Context, userID string) ([]*domain.SubscriptionResponse, error) {
	subs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.ErrInternal("failed to list subscriptions", err)
	}
	responses := make([]*domain.SubscriptionResponse, len(subs))
	for i, sub := range subs {
		responses[i] = sub.Response()
	}
	return responses, nil
}

// GetByID returns one subscription owned by userID.
func (s *SubscriptionService) GetByID(ctx context.Context, id, userID string) (*domain.Subscription, error) {
	sub, err := s.store.FindByID(ctx, id, userID)
	if err != nil {
		return nil, domain.ErrInternal("failed to find subscription", err)
	}
	if sub == nil {
		return nil, domain.ErrNotFound("subscription not found")
	}
	return sub, nil
}

// Update applies a partial update: only fields present in the payload are
// validated and overwritten. price_in_cents is re-derived when price is
// supplied, next_billing_date when next_payment is supplied.
func (s *SubscriptionService) Update(ctx context.Context, id, userID string, req *domain.UpdateSubscriptionRequest) (*domain.Subscription, error) {
	sub, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(fieldErrors(err))
	}

	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Price != nil {
		sub.PriceInCents = priceToCents(*req.Price)
	}
	if req.Category != nil {
		sub.Category = req.Category
	}
	if req.BillingCycle != nil {
		sub.BillingCycle = domain.BillingCycle(*req.BillingCycle)
	}
	if req.NextPayment != nil {
		nextBilling, err := parseDate(*req.NextPayment)
		if err != nil {
			return nil, domain.ErrValidation(map[string]string{"next_payment": "must be a valid date"})
		}
		sub.NextBillingDate = nextBilling
	}
	if req.Status != nil {
		sub.Status = req.Status
	}
	if req.Notes != nil {
		sub.Notes = req.Notes
	}
	sub.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, sub); err != nil {
		return nil, domain.ErrInternal("failed to update subscription", err)
	}
	return sub, nil
}

// Delete removes a subscription permanently.
func (s *SubscriptionService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id, userID); err != nil {
		return domain.ErrInternal("failed to delete subscription", err)
	}
	return nil
}

// priceToCents converts a price in major currency units to integer cents,
// rounding half away from zero.
func priceToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// parseDate accepts calendar dates (2006-01-02) or RFC 3339 timestamps.
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(domain.DateLayout, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", v)
}

// fieldErrors flattens validator errors into a field -> message map.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"payload": "is invalid"}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
