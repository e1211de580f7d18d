package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `Timestamp,Machine ID,Activity Type,Start Time,End Time,Remark,Submitted By
01/02/2025 10:35,1,Running,01/02/2025 08:00,01/02/2025 10:30,first shift,Ayesha
01/02/2025 11:05,Machine 2,Setup,01/02/2025 09:00,01/02/2025 10:00,,Bilal
01/02/2025 11:10,1,Idle,01/02/2025 10:30,01/02/2025 11:00,,Ayesha
01/02/2025 11:20,2,Running,bad time,01/02/2025 12:00,,Bilal
`

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuildReportFromFile(t *testing.T) {
	a, err := New(&Config{
		InputFile:  writeFeed(t, sampleFeed),
		RateSource: "default",
	})
	require.NoError(t, err)

	report, err := a.BuildReport(context.Background())
	require.NoError(t, err)

	// 4 data rows, 1 with an unresolvable start time
	assert.Equal(t, 3, report.Summary.RecordCount)
	assert.Equal(t, 1, report.Rejected)

	// Machine 1 Running 2.5h at 5000 + Machine 2 Setup 1h at 3500
	assert.InDelta(t, 2.5*5000+3500, report.Summary.TotalCost, 1e-9)
	assert.InDelta(t, 3.5, report.Summary.BillableHours, 1e-9)
	assert.Equal(t, 2, report.Summary.DistinctMachines)

	require.Len(t, report.Lanes, 2)
	assert.Equal(t, "Machine 2", report.Lanes[0].MachineId)
	assert.Equal(t, "Machine 1", report.Lanes[1].MachineId)

	require.Len(t, report.Breakdown, 2)
	assert.Equal(t, "Machine 1", report.Breakdown[0].MachineId)
	assert.Equal(t, "Machine 2", report.Breakdown[1].MachineId)
}

func TestBuildReportIsIdempotent(t *testing.T) {
	a, err := New(&Config{
		InputFile:  writeFeed(t, sampleFeed),
		RateSource: "default",
		CacheTTL:   time.Minute,
	})
	require.NoError(t, err)

	first, err := a.BuildReport(context.Background())
	require.NoError(t, err)
	second, err := a.BuildReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildReportMissingFile(t *testing.T) {
	a, err := New(&Config{
		InputFile:  filepath.Join(t.TempDir(), "absent.csv"),
		RateSource: "default",
	})
	require.NoError(t, err)

	_, err = a.BuildReport(context.Background())
	assert.Error(t, err)
}

func TestBuildReportHeaderOnly(t *testing.T) {
	a, err := New(&Config{
		InputFile:  writeFeed(t, "Timestamp,Machine ID,Activity Type,Start Time,End Time\n"),
		RateSource: "default",
	})
	require.NoError(t, err)

	report, err := a.BuildReport(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.Summary.RecordCount)
	assert.Zero(t, report.Summary.TotalCost)
	assert.Zero(t, report.Summary.DistinctMachines)
	assert.Empty(t, report.Lanes)
}

func TestNewRequiresSource(t *testing.T) {
	_, err := New(&Config{RateSource: "default"})
	assert.Error(t, err)
}

func TestNewRejectsBadRateSource(t *testing.T) {
	_, err := New(&Config{
		InputFile:  writeFeed(t, sampleFeed),
		RateSource: "litellm",
	})
	assert.Error(t, err)
}
