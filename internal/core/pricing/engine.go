package pricing

import (
	"context"
	"fmt"

	"github.com/SiddiqueAhmad/ai-costing/internal/core/model"
	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

// Engine applies a rate card and billable filter to event records.
type Engine struct {
	provider RateProvider
}

// NewEngine creates a cost engine backed by the given rate provider.
func NewEngine(provider RateProvider) *Engine {
	return &Engine{provider: provider}
}

// CostFor computes the monetary value of a single record. Pure function of
// its three inputs:
//
//  1. A non-billable activity always costs 0, regardless of rates.
//  2. The rate is looked up in the card's declared entry order, first match
//     wins; no match costs 0.
//  3. Otherwise cost = duration_hours * rate. Negative durations produce
//     negative cost on purpose so data-entry errors stay visible.
func CostFor(record model.EventRecord, card RateCard, billable BillableSet) float64 {
	if !billable.Contains(record.ActivityType) {
		return 0.0
	}

	rate, ok := card.RateFor(record.MachineId)
	if !ok {
		return 0.0
	}

	return record.DurationHours * rate
}

// ApplyCosts sets the cost on every record in place. Each record is priced
// independently; records stay immutable afterwards.
func (e *Engine) ApplyCosts(ctx context.Context, records []model.EventRecord) error {
	card, err := e.provider.GetRateCard(ctx)
	if err != nil {
		return fmt.Errorf("loading rate card: %w", err)
	}
	billable, err := e.provider.GetBillableSet(ctx)
	if err != nil {
		return fmt.Errorf("loading billable set: %w", err)
	}

	negatives := 0
	for i := range records {
		records[i].Cost = CostFor(records[i], card, billable)
		if records[i].DurationHours < 0 {
			negatives++
		}
	}

	if negatives > 0 {
		util.LogWarn(fmt.Sprintf("%d record(s) have end before start; negative durations and costs are preserved", negatives))
	}

	return nil
}
