package aggregator

import (
	"sort"
	"time"

	"github.com/SiddiqueAhmad/ai-costing/internal/core/model"
)

// Summary holds the headline metrics over the costed record set.
type Summary struct {
	TotalCost        float64   `json:"totalCost"`
	BillableHours    float64   `json:"billableHours"`
	DistinctMachines int       `json:"distinctMachines"`
	RecordCount      int       `json:"recordCount"`
	LatestSubmission time.Time `json:"latestSubmission,omitempty"`
}

// TimelineSegment is one activity window on a machine's lane.
type TimelineSegment struct {
	ActivityType string    `json:"activityType"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	DurationMin  float64   `json:"durationMin"`
	Cost         float64   `json:"cost"`
}

// TimelineLane groups one machine's segments. Lanes are ordered by machine
// label descending so the first lane renders at the top of a chart with the
// highest label, matching how the floor reads the board.
type TimelineLane struct {
	MachineId string            `json:"machineId"`
	Segments  []TimelineSegment `json:"segments"`
}

// BreakdownRow is one billable line item. The breakdown keeps feed order so
// an operator can reconcile it against the submission sheet row by row.
type BreakdownRow struct {
	Timestamp    time.Time `json:"timestamp,omitempty"`
	MachineId    string    `json:"machineId"`
	ActivityType string    `json:"activityType"`
	DurationMin  float64   `json:"durationMin"`
	Cost         float64   `json:"cost"`
	Remark       string    `json:"remark,omitempty"`
}

// Report is the complete aggregation output for one pipeline run.
type Report struct {
	Summary   Summary        `json:"summary"`
	Lanes     []TimelineLane `json:"lanes"`
	Breakdown []BreakdownRow `json:"breakdown"`
	Rejected  int            `json:"rejected"`
}

// Aggregator derives report views from costed records.
type Aggregator struct{}

// New creates an Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Aggregate builds the full report. Records are read only; calling it twice
// over the same slice yields the same report. rejected is the count of feed
// rows dropped before costing.
func (a *Aggregator) Aggregate(records []model.EventRecord, rejected int) *Report {
	return &Report{
		Summary:   a.summarize(records),
		Lanes:     a.buildLanes(records),
		Breakdown: a.buildBreakdown(records),
		Rejected:  rejected,
	}
}

func (a *Aggregator) summarize(records []model.EventRecord) Summary {
	s := Summary{RecordCount: len(records)}
	machines := make(map[string]struct{})

	for _, r := range records {
		s.TotalCost += r.Cost
		// Billable hours count only records that actually accrued cost, so a
		// billable activity on a machine with no matching rate contributes
		// nothing here either.
		if r.Cost > 0 {
			s.BillableHours += r.DurationHours
		}
		machines[r.MachineId] = struct{}{}
		if r.Timestamp.After(s.LatestSubmission) {
			s.LatestSubmission = r.Timestamp
		}
	}

	s.DistinctMachines = len(machines)
	return s
}

func (a *Aggregator) buildLanes(records []model.EventRecord) []TimelineLane {
	byMachine := make(map[string][]TimelineSegment)
	for _, r := range records {
		byMachine[r.MachineId] = append(byMachine[r.MachineId], TimelineSegment{
			ActivityType: r.ActivityType,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			DurationMin:  r.DurationMinutes,
			Cost:         r.Cost,
		})
	}

	labels := make([]string, 0, len(byMachine))
	for label := range byMachine {
		labels = append(labels, label)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(labels)))

	lanes := make([]TimelineLane, 0, len(labels))
	for _, label := range labels {
		segments := byMachine[label]
		sort.SliceStable(segments, func(i, j int) bool {
			return segments[i].StartTime.Before(segments[j].StartTime)
		})
		lanes = append(lanes, TimelineLane{MachineId: label, Segments: segments})
	}
	return lanes
}

// buildBreakdown keeps only rows that actually accrued cost, in feed order.
func (a *Aggregator) buildBreakdown(records []model.EventRecord) []BreakdownRow {
	costed := make([]model.EventRecord, 0, len(records))
	for _, r := range records {
		if r.Cost > 0 {
			costed = append(costed, r)
		}
	}
	sort.SliceStable(costed, func(i, j int) bool {
		return costed[i].SourceRow < costed[j].SourceRow
	})

	rows := make([]BreakdownRow, 0, len(costed))
	for _, r := range costed {
		rows = append(rows, BreakdownRow{
			Timestamp:    r.Timestamp,
			MachineId:    r.MachineId,
			ActivityType: r.ActivityType,
			DurationMin:  r.DurationMinutes,
			Cost:         r.Cost,
			Remark:       r.Remark,
		})
	}
	return rows
}
