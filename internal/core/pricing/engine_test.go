package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiddiqueAhmad/ai-costing/internal/core/model"
)

func record(machine, activity string, hours float64) model.EventRecord {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	return model.EventRecord{
		MachineId:       machine,
		ActivityType:    activity,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(hours * float64(time.Hour))),
		DurationHours:   hours,
		DurationMinutes: hours * 60,
	}
}

func TestCostFor(t *testing.T) {
	card := DefaultRateCard()
	billable := BillableSet{model.ActivityRunning, model.ActivitySetup}

	tests := []struct {
		name     string
		record   model.EventRecord
		expected float64
	}{
		{
			name:     "billable machine 1",
			record:   record("Machine 1", model.ActivityRunning, 2.5),
			expected: 12500.0,
		},
		{
			name:     "billable machine 2",
			record:   record("Machine 2", model.ActivityRunning, 1.0),
			expected: 3500.0,
		},
		{
			name:     "non billable activity costs zero",
			record:   record("Machine 1", model.ActivityIdle, 2.5),
			expected: 0.0,
		},
		{
			name:     "unknown machine costs zero",
			record:   record("Machine 3", model.ActivityRunning, 2.5),
			expected: 0.0,
		},
		{
			name:     "negative duration yields negative cost",
			record:   record("Machine 1", model.ActivityRunning, -1.0),
			expected: -5000.0,
		},
		{
			name:     "unrecognized activity passes through as non billable",
			record:   record("Machine 1", "Calibration", 2.0),
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := CostFor(tt.record, card, billable)
			assert.InDelta(t, tt.expected, cost, 1e-9)
		})
	}
}

func TestCostForLinearity(t *testing.T) {
	card := DefaultRateCard()
	billable := DefaultBillableSet()

	for _, hours := range []float64{0.25, 1, 2.5, 8, 13.75} {
		rec := record("Machine 1", model.ActivityRunning, hours)
		assert.InDelta(t, hours*5000, CostFor(rec, card, billable), 1e-9)
	}
}

func TestCostForEmptyBillableSet(t *testing.T) {
	rec := record("Machine 1", model.ActivityRunning, 2.0)
	assert.Zero(t, CostFor(rec, DefaultRateCard(), BillableSet{}))
}

func TestApplyCosts(t *testing.T) {
	engine := NewEngine(NewDefaultProvider())

	records := []model.EventRecord{
		record("Machine 1", model.ActivityRunning, 2.5),
		record("Machine 2", model.ActivityIdle, 1.0),
		record("Machine 2", model.ActivitySetup, 0.5),
	}

	err := engine.ApplyCosts(context.Background(), records)
	require.NoError(t, err)

	assert.InDelta(t, 12500.0, records[0].Cost, 1e-9)
	assert.Zero(t, records[1].Cost)
	assert.InDelta(t, 1750.0, records[2].Cost, 1e-9)
}

func TestApplyCostsIsDeterministic(t *testing.T) {
	engine := NewEngine(NewDefaultProvider())

	a := []model.EventRecord{
		record("Machine 1", model.ActivityRunning, 2.5),
		record("Machine 2", model.ActivitySetup, 1.5),
	}
	b := []model.EventRecord{
		record("Machine 1", model.ActivityRunning, 2.5),
		record("Machine 2", model.ActivitySetup, 1.5),
	}

	require.NoError(t, engine.ApplyCosts(context.Background(), a))
	require.NoError(t, engine.ApplyCosts(context.Background(), b))

	assert.Equal(t, a, b)
}
