package pricing

import (
	"context"
)

// DefaultProvider implements RateProvider using the built-in rate card
type DefaultProvider struct{}

// NewDefaultProvider creates a new default rate provider
func NewDefaultProvider() RateProvider {
	return &DefaultProvider{}
}

// GetRateCard returns the built-in rate card
func (p *DefaultProvider) GetRateCard(ctx context.Context) (RateCard, error) {
	return DefaultRateCard(), nil
}

// GetBillableSet returns the built-in billable filter
func (p *DefaultProvider) GetBillableSet(ctx context.Context) (BillableSet, error) {
	return DefaultBillableSet(), nil
}

// Refresh is a no-op for the default provider
func (p *DefaultProvider) Refresh(ctx context.Context) error {
	return nil
}

// GetProviderName returns the name of this rate provider
func (p *DefaultProvider) GetProviderName() string {
	return "default"
}
