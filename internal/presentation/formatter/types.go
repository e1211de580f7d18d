package formatter

import "github.com/SiddiqueAhmad/ai-costing/internal/data/aggregator"

// Formatter renders a report to stdout.
type Formatter interface {
	Format(report *aggregator.Report) error
}

const timeLayout = "2006-01-02 15:04"
