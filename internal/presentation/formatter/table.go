package formatter

import (
	"fmt"
	"strings"

	"github.com/SiddiqueAhmad/ai-costing/internal/data/aggregator"
	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

// Remark column bounds. The free-text column absorbs whatever terminal width
// the fixed columns leave over, within these limits.
const (
	minRemarkWidth  = 10
	maxRemarkWidth  = 40
	defaultTermCols = 120
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{
			"Timestamp", "Machine", "Activity",
			"Duration (min)", "Cost (PKR)", "Remark",
		},
	}
}

// Format prints the billable breakdown as a bordered table followed by a
// total row. Rows keep the feed's submission order.
func (f *TableFormatter) Format(report *aggregator.Report) error {
	if len(report.Breakdown) == 0 {
		fmt.Println("No billable activity yet.")
		return nil
	}

	rows := f.buildRows(report.Breakdown)
	widths := f.calculateColumnWidths(rows, report)
	f.clampRemarkColumn(rows, widths)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")

	for _, row := range rows {
		f.printRow(row, widths)
	}

	f.printBorder(widths, "middle")
	f.printRow(f.totalRow(report), widths)
	f.printBorder(widths, "bottom")

	return nil
}

func (f *TableFormatter) buildRows(breakdown []aggregator.BreakdownRow) [][]string {
	tp := util.GetTimeProvider()
	rows := make([][]string, 0, len(breakdown))
	for _, item := range breakdown {
		ts := ""
		if !item.Timestamp.IsZero() {
			ts = tp.Format(item.Timestamp, timeLayout)
		}
		rows = append(rows, []string{
			ts,
			item.MachineId,
			item.ActivityType,
			util.FormatMinutes(item.DurationMin),
			util.FormatCurrency(item.Cost),
			item.Remark,
		})
	}
	return rows
}

func (f *TableFormatter) totalRow(report *aggregator.Report) []string {
	var totalMin, totalCost float64
	for _, item := range report.Breakdown {
		totalMin += item.DurationMin
		totalCost += item.Cost
	}
	return []string{
		"Total", "", "",
		util.FormatMinutes(totalMin),
		util.FormatCurrency(totalCost),
		"",
	}
}

// calculateColumnWidths determines the width of each column from its widest
// cell, header and total row included.
func (f *TableFormatter) calculateColumnWidths(rows [][]string, report *aggregator.Report) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	for _, row := range rows {
		for i, value := range row {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, value := range f.totalRow(report) {
		if w := util.GetDisplayWidth(value); w > widths[i] {
			widths[i] = w
		}
	}

	return widths
}

// clampRemarkColumn bounds the remark column by the terminal width left over
// after the fixed columns, then truncates remark cells to fit.
func (f *TableFormatter) clampRemarkColumn(rows [][]string, widths []int) {
	remark := len(widths) - 1

	fixed := 1 // left border
	for _, w := range widths[:remark] {
		fixed += w + 3 // cell padding plus separator
	}

	budget := util.TerminalWidth(defaultTermCols) - fixed - 3
	if budget > maxRemarkWidth {
		budget = maxRemarkWidth
	}
	if budget < minRemarkWidth {
		budget = minRemarkWidth
	}
	if widths[remark] <= budget {
		return
	}

	widths[remark] = budget
	for _, row := range rows {
		row[remark] = util.TruncateToWidth(row[remark], budget)
	}
}

func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Print(left)
	for i, width := range widths {
		fmt.Print(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Print(middle)
		}
	}
	fmt.Println(right)
}

// printRow prints one row. Text columns are left-aligned, numeric columns
// right-aligned. Padding uses display width so wide runes stay lined up.
func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Print("│")
	for i, value := range values {
		pad := widths[i] - util.GetDisplayWidth(value)
		if pad < 0 {
			pad = 0
		}
		if i == 3 || i == 4 {
			fmt.Printf(" %s%s │", strings.Repeat(" ", pad), value)
		} else {
			fmt.Printf(" %s%s │", value, strings.Repeat(" ", pad))
		}
	}
	fmt.Println()
}
