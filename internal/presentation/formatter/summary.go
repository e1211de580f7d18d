package formatter

import (
	"fmt"
	"strings"

	"github.com/SiddiqueAhmad/ai-costing/internal/data/aggregator"
	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

// SummaryFormatter renders the headline metrics and a per-machine timeline
// overview as plain text.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format outputs the summary report. An empty record set gets a distinct
// "no data yet" state instead of a wall of zeros.
func (f *SummaryFormatter) Format(report *aggregator.Report) error {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Machine Activity Cost Summary")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	if report.Summary.RecordCount == 0 {
		fmt.Println("No activity data yet.")
		if report.Rejected > 0 {
			fmt.Printf("Rows dropped (unresolvable timestamps): %s\n", util.FormatCount(report.Rejected))
		}
		return nil
	}

	s := report.Summary
	fmt.Printf("Total Cost:        %s\n", util.FormatCurrency(s.TotalCost))
	fmt.Printf("Billable Hours:    %s\n", util.FormatHours(s.BillableHours))
	fmt.Printf("Machines:          %s\n", util.FormatCount(s.DistinctMachines))
	fmt.Printf("Records:           %s\n", util.FormatCount(s.RecordCount))
	if !s.LatestSubmission.IsZero() {
		fmt.Printf("Latest Submission: %s\n", util.GetTimeProvider().Format(s.LatestSubmission, timeLayout))
	}
	if report.Rejected > 0 {
		fmt.Printf("Rows Dropped:      %s\n", util.FormatCount(report.Rejected))
	}

	if len(report.Lanes) > 0 {
		fmt.Println()
		fmt.Println("Machine Timeline")
		fmt.Println(strings.Repeat("-", 60))
		tp := util.GetTimeProvider()
		for _, lane := range report.Lanes {
			first := lane.Segments[0].StartTime
			last := lane.Segments[len(lane.Segments)-1].EndTime
			fmt.Printf("  %-14s %s segment(s)  %s → %s\n",
				lane.MachineId,
				util.FormatCount(len(lane.Segments)),
				tp.Format(first, timeLayout),
				tp.Format(last, timeLayout))
		}
	}

	return nil
}
