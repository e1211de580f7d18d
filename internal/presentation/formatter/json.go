package formatter

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/SiddiqueAhmad/ai-costing/internal/data/aggregator"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format emits the whole report, summary, lanes and breakdown included.
func (f *JSONFormatter) Format(report *aggregator.Report) error {
	data, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
