package pricing

import (
	"fmt"
	"strings"

	"github.com/SiddiqueAhmad/ai-costing/internal/core/model"
)

// MatchMode selects how a rate entry's pattern is compared against a
// canonical machine label.
type MatchMode string

const (
	// MatchExact requires the pattern to equal the label. Default, because
	// substring matching turns ambiguous once identifiers exceed one digit
	// ("Machine 12" contains "Machine 1").
	MatchExact MatchMode = "exact"
	// MatchContains reproduces the loose containment semantics of the
	// original sheet formulas for operators who rely on them.
	MatchContains MatchMode = "contains"
)

// RateEntry binds a machine-label pattern to an hourly rate. Entries are
// evaluated in declared order with first match winning, which makes tie
// breaking explicit and testable.
type RateEntry struct {
	Pattern    string    `json:"pattern" yaml:"pattern"`
	Match      MatchMode `json:"match,omitempty" yaml:"match,omitempty"`
	HourlyRate float64   `json:"hourlyRate" yaml:"hourly_rate"`
}

// Matches reports whether the entry applies to the given canonical label.
func (e RateEntry) Matches(label string) bool {
	switch e.Match {
	case MatchContains:
		return strings.Contains(label, e.Pattern)
	default:
		return label == e.Pattern
	}
}

// RateCard is the ordered per-machine hourly rate configuration.
type RateCard struct {
	Entries []RateEntry `json:"entries" yaml:"rates"`
}

// RateFor looks up the hourly rate for a canonical machine label. A label
// matching no entry yields rate 0 with ok false.
func (c RateCard) RateFor(label string) (float64, bool) {
	for _, entry := range c.Entries {
		if entry.Matches(label) {
			return entry.HourlyRate, true
		}
	}
	return 0, false
}

// BillableSet is the configured subset of activity types that generate cost.
type BillableSet []string

// Contains reports whether the activity type is billable.
func (b BillableSet) Contains(activityType string) bool {
	for _, a := range b {
		if a == activityType {
			return true
		}
	}
	return false
}

// Validate checks a rate card and billable set for configuration mistakes.
// Degraded-but-runnable configurations (empty billable set, no rate entries)
// are reported as warnings, not errors: a pipeline that prices everything at
// zero is still a valid run.
func Validate(card RateCard, billable BillableSet) (warnings []string, err error) {
	for i, entry := range card.Entries {
		if entry.Pattern == "" {
			return nil, fmt.Errorf("rates[%d]: pattern is required", i)
		}
		if entry.HourlyRate < 0 {
			return nil, fmt.Errorf("rates[%d] (%s): hourly_rate must be >= 0, got %v", i, entry.Pattern, entry.HourlyRate)
		}
		switch entry.Match {
		case "", MatchExact, MatchContains:
		default:
			return nil, fmt.Errorf("rates[%d] (%s): invalid match mode %q (must be exact or contains)", i, entry.Pattern, entry.Match)
		}
	}

	if len(card.Entries) == 0 {
		warnings = append(warnings, "rate card has no entries; every record will cost 0")
	}
	if len(billable) == 0 {
		warnings = append(warnings, "billable set is empty; every record will cost 0")
	}

	for _, activity := range billable {
		if !contains(model.BillableVocabulary, activity) {
			return nil, fmt.Errorf("billable activity %q is not in the recognized vocabulary %v", activity, model.BillableVocabulary)
		}
	}

	return warnings, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// DefaultRateCard mirrors the rates the operations team runs with day to day.
func DefaultRateCard() RateCard {
	return RateCard{
		Entries: []RateEntry{
			{Pattern: "Machine 1", Match: MatchExact, HourlyRate: 5000},
			{Pattern: "Machine 2", Match: MatchExact, HourlyRate: 3500},
		},
	}
}

// DefaultBillableSet is the default billable-activity filter.
func DefaultBillableSet() BillableSet {
	return BillableSet{model.ActivityRunning, model.ActivitySetup}
}
