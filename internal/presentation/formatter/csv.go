package formatter

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/SiddiqueAhmad/ai-costing/internal/data/aggregator"
	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format writes the billable breakdown as CSV, one line per billable record
// in feed order. Machine-readable output, no totals row.
func (f *CSVFormatter) Format(report *aggregator.Report) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{
		"Timestamp", "Machine", "Activity", "Duration (min)", "Cost (PKR)", "Remark",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	tp := util.GetTimeProvider()
	for _, row := range report.Breakdown {
		ts := ""
		if !row.Timestamp.IsZero() {
			ts = tp.Format(row.Timestamp, timeLayout)
		}
		record := []string{
			ts,
			row.MachineId,
			row.ActivityType,
			fmt.Sprintf("%.1f", row.DurationMin),
			fmt.Sprintf("%.2f", row.Cost),
			row.Remark,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
