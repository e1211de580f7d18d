package builder

import (
	"fmt"
	"time"

	"github.com/SiddiqueAhmad/ai-costing/internal/core/model"
	"github.com/SiddiqueAhmad/ai-costing/internal/core/normalize"
	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

// RejectReason explains why a row was excluded from the record set.
type RejectReason string

const (
	ReasonBadStartTime RejectReason = "unresolvable start_time"
	ReasonBadEndTime   RejectReason = "unresolvable end_time"
)

// Rejection pairs a dropped row with the reason it was dropped. Row is the
// 1-based data row index in the feed.
type Rejection struct {
	Row    int          `json:"row"`
	Reason RejectReason `json:"reason"`
}

// Result is the two-valued outcome of building: the validated record set and
// the rows that could not be validated. Rejections are reported, not
// swallowed; the caller decides whether a shrinking record count matters.
type Result struct {
	Records    []model.EventRecord `json:"records"`
	Rejections []Rejection         `json:"rejections,omitempty"`
}

// Builder turns raw feed rows into validated event records.
type Builder struct {
	location *time.Location
}

// New creates a builder resolving naive feed timestamps in the given
// location. A nil location means local time.
func New(location *time.Location) *Builder {
	if location == nil {
		location = time.Local
	}
	return &Builder{location: location}
}

// Build validates every row. A row is included iff both start_time and
// end_time normalize to resolvable instants; identifier and activity type
// always carry some textual value, so they are normalized best-effort and
// never cause a drop. Durations are derived here and negative values are
// preserved; end-before-start is a data-entry error the pipeline surfaces
// rather than hides.
func (b *Builder) Build(rows []model.RawRow) Result {
	result := Result{
		Records: make([]model.EventRecord, 0, len(rows)),
	}

	for i, row := range rows {
		rowNum := i + 1

		start, ok := normalize.Timestamp(row.Get(model.FieldStartTime), b.location)
		if !ok {
			result.Rejections = append(result.Rejections, Rejection{Row: rowNum, Reason: ReasonBadStartTime})
			continue
		}

		end, ok := normalize.Timestamp(row.Get(model.FieldEndTime), b.location)
		if !ok {
			result.Rejections = append(result.Rejections, Rejection{Row: rowNum, Reason: ReasonBadEndTime})
			continue
		}

		record := model.EventRecord{
			MachineId:    normalize.MachineLabel(row.Get(model.FieldMachineId)),
			ActivityType: row.Get(model.FieldActivityType),
			StartTime:    start,
			EndTime:      end,
			Remark:       row.Get(model.FieldRemark),
			SubmittedBy:  row.Get(model.FieldSubmittedBy),
			SourceRow:    rowNum,
		}

		// Submission time is optional; an unresolvable value stays zero.
		if ts, ok := normalize.Timestamp(row.Get(model.FieldTimestamp), b.location); ok {
			record.Timestamp = ts
		}

		record.DurationHours = end.Sub(start).Hours()
		record.DurationMinutes = record.DurationHours * 60

		result.Records = append(result.Records, record)
	}

	if n := len(result.Rejections); n > 0 {
		util.LogWarn(fmt.Sprintf("Dropped %d of %d row(s) with unresolvable timestamps", n, len(rows)))
	}

	return result
}
