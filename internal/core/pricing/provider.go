package pricing

import (
	"context"
	"errors"
)

// RateProvider defines the interface for sourcing rate-card configuration
type RateProvider interface {
	// GetRateCard returns the current rate card
	GetRateCard(ctx context.Context) (RateCard, error)

	// GetBillableSet returns the current billable-activity filter
	GetBillableSet(ctx context.Context) (BillableSet, error)

	// Refresh forces a reload of configuration (for file-backed providers)
	Refresh(ctx context.Context) error

	// GetProviderName returns the name of this rate provider
	GetProviderName() string
}

// ErrRateConfigUnavailable is returned when rate configuration cannot be loaded
var ErrRateConfigUnavailable = errors.New("rate configuration unavailable")
