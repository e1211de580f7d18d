package builder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiddiqueAhmad/ai-costing/internal/core/model"
)

func row(machine, activity, start, end string) model.RawRow {
	return model.RawRow{
		model.FieldMachineId:    machine,
		model.FieldActivityType: activity,
		model.FieldStartTime:    start,
		model.FieldEndTime:      end,
	}
}

func TestBuildHappyPath(t *testing.T) {
	b := New(time.UTC)

	result := b.Build([]model.RawRow{
		row("1", model.ActivityRunning, "01/02/2025 08:00", "01/02/2025 10:30"),
		row("Machine 2", model.ActivitySetup, "2025-02-01 09:00:00", "2025-02-01 09:45:00"),
	})

	require.Len(t, result.Records, 2)
	assert.Empty(t, result.Rejections)

	first := result.Records[0]
	assert.Equal(t, "Machine 1", first.MachineId)
	assert.Equal(t, model.ActivityRunning, first.ActivityType)
	assert.Equal(t, time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC), first.StartTime)
	assert.InDelta(t, 2.5, first.DurationHours, 1e-9)
	assert.InDelta(t, 150.0, first.DurationMinutes, 1e-9)
	assert.Equal(t, 1, first.SourceRow)

	second := result.Records[1]
	assert.Equal(t, "Machine 2", second.MachineId)
	assert.InDelta(t, 0.75, second.DurationHours, 1e-9)
	assert.Equal(t, 2, second.SourceRow)
}

func TestBuildRejectsUnresolvableTimestamps(t *testing.T) {
	b := New(time.UTC)

	result := b.Build([]model.RawRow{
		row("1", model.ActivityRunning, "not a date", "01/02/2025 10:00"),
		row("1", model.ActivityRunning, "01/02/2025 08:00", ""),
		row("2", model.ActivityIdle, "01/02/2025 08:00", "01/02/2025 09:00"),
	})

	require.Len(t, result.Records, 1)
	assert.Equal(t, "Machine 2", result.Records[0].MachineId)
	assert.Equal(t, 3, result.Records[0].SourceRow)

	require.Len(t, result.Rejections, 2)
	assert.Equal(t, Rejection{Row: 1, Reason: ReasonBadStartTime}, result.Rejections[0])
	assert.Equal(t, Rejection{Row: 2, Reason: ReasonBadEndTime}, result.Rejections[1])
}

func TestBuildPreservesNegativeDuration(t *testing.T) {
	b := New(time.UTC)

	result := b.Build([]model.RawRow{
		row("1", model.ActivityRunning, "01/02/2025 10:00", "01/02/2025 08:00"),
	})

	require.Len(t, result.Records, 1)
	assert.InDelta(t, -2.0, result.Records[0].DurationHours, 1e-9)
	assert.InDelta(t, -120.0, result.Records[0].DurationMinutes, 1e-9)
}

func TestBuildOptionalTimestamp(t *testing.T) {
	b := New(time.UTC)

	withTs := row("1", model.ActivityRunning, "01/02/2025 08:00", "01/02/2025 09:00")
	withTs[model.FieldTimestamp] = "01/02/2025 09:05"
	withoutTs := row("1", model.ActivityRunning, "01/02/2025 08:00", "01/02/2025 09:00")
	withoutTs[model.FieldTimestamp] = "garbage"

	result := b.Build([]model.RawRow{withTs, withoutTs})

	require.Len(t, result.Records, 2)
	assert.Equal(t, time.Date(2025, 2, 1, 9, 5, 0, 0, time.UTC), result.Records[0].Timestamp)
	assert.True(t, result.Records[1].Timestamp.IsZero())
	assert.Empty(t, result.Rejections, "a bad submission timestamp must not drop the row")
}

func TestBuildUnknownMachineAndRemarks(t *testing.T) {
	b := New(time.UTC)

	r := row("", "Custom Activity", "01/02/2025 08:00", "01/02/2025 09:00")
	r[model.FieldRemark] = "operator note"
	r[model.FieldSubmittedBy] = "Ayesha"

	result := b.Build([]model.RawRow{r})

	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Equal(t, "Machine unknown", rec.MachineId)
	assert.Equal(t, "Custom Activity", rec.ActivityType)
	assert.Equal(t, "operator note", rec.Remark)
	assert.Equal(t, "Ayesha", rec.SubmittedBy)
}

func TestBuildEmptyInput(t *testing.T) {
	result := New(time.UTC).Build(nil)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Rejections)
}

func TestBuildNilLocationDefaultsLocal(t *testing.T) {
	b := New(nil)
	result := b.Build([]model.RawRow{
		row("1", model.ActivityRunning, "01/02/2025 08:00", "01/02/2025 09:00"),
	})
	require.Len(t, result.Records, 1)
	assert.Equal(t, time.Local, result.Records[0].StartTime.Location())
}
