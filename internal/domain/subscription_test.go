package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingCycleIsValid(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"weekly", true},
		{"monthly", true},
		{"yearly", true},
		{"daily", false},
		{"invalid_cycle", false},
		{"", false},
		{"Monthly", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.valid, BillingCycle(tt.value).IsValid())
		})
	}
}

func TestBillingCyclesClosedSet(t *testing.T) {
	cycles := BillingCycles()
	assert.Equal(t, []BillingCycle{BillingWeekly, BillingMonthly, BillingYearly}, cycles)
	for _, c := range cycles {
		assert.True(t, c.IsValid())
	}
}

func TestSubscriptionResponseDateFormat(t *testing.T) {
	category := "Entertainment"
	status := StatusActive
	sub := &Subscription{
		ID:              NewSubscriptionID(),
		UserID:          NewUserID(),
		Name:            "Netflix",
		PriceInCents:    1590,
		Category:        &category,
		BillingCycle:    BillingMonthly,
		NextBillingDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:          &status,
	}

	resp := sub.Response()
	assert.Equal(t, "2025-06-01", resp.NextBillingDate)
	assert.Equal(t, int64(1590), resp.PriceInCents)
	assert.Equal(t, BillingMonthly, resp.BillingCycle)

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2025-06-01", decoded["next_billing_date"])
	assert.Equal(t, float64(1590), decoded["price_in_cents"])
	assert.Equal(t, "monthly", decoded["billing_cycle"])
	assert.Equal(t, "active", decoded["status"])
}

func TestSubscriptionResponseNullableFields(t *testing.T) {
	sub := &Subscription{
		ID:              NewSubscriptionID(),
		UserID:          NewUserID(),
		Name:            "Gym",
		PriceInCents:    100,
		BillingCycle:    BillingWeekly,
		NextBillingDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(sub.Response())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["category"])
	assert.Nil(t, decoded["status"])
	assert.Nil(t, decoded["notes"])
}
