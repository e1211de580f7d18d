package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/SiddiqueAhmad/ai-costing/internal/core/model"
	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

// NormalizeHeader maps a raw column header to its canonical snake-style key,
// e.g. "Start Time" -> "start_time". Headers are case and whitespace
// insensitive.
func NormalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	return strings.ReplaceAll(h, " ", "_")
}

var recognized = func() map[string]bool {
	m := make(map[string]bool, len(model.RecognizedFields))
	for _, f := range model.RecognizedFields {
		m[f] = true
	}
	return m
}()

// Rows parses a raw CSV payload into RawRows keyed by canonical column name.
// Column order is irrelevant and unrecognized columns are dropped. Rows
// shorter than the header are tolerated; a payload whose header resolves to
// no recognized column at all is malformed.
func Rows(payload []byte) ([]model.RawRow, error) {
	reader := csv.NewReader(bytes.NewReader(payload))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("feed is empty: no header line")
	}
	if err != nil {
		return nil, fmt.Errorf("reading feed header: %w", err)
	}

	// Map column index -> canonical key for the recognized columns only.
	columns := make(map[int]string, len(header))
	for i, h := range header {
		key := NormalizeHeader(h)
		if recognized[key] {
			columns[i] = key
		}
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("feed header has no recognized columns: %v", header)
	}

	var rows []model.RawRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading feed line %d: %w", line, err)
		}

		row := make(model.RawRow, len(columns))
		for i, key := range columns {
			if i < len(record) {
				row[key] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	util.LogDebug(fmt.Sprintf("Parsed %d data row(s) from feed (%d recognized column(s))", len(rows), len(columns)))
	return rows, nil
}
