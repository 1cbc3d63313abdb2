package dataset

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meghaaa003/ADAS/internal/config"
	"github.com/Meghaaa003/ADAS/internal/domain"
	"github.com/Meghaaa003/ADAS/internal/observability"
)

const casHeader = "Vehicle,Date,Time,Lat,Long,Speed,Alert\n"

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader(t *testing.T, casContent, casdmsContent string, fraction float64) *Loader {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		CASFile:        writeCSV(t, dir, "cas.csv", casContent),
		CASDMSFile:     writeCSV(t, dir, "casdms.csv", casdmsContent),
		SampleFraction: fraction,
		SampleSeed:     42,
	}
	return NewLoader(cfg, slog.Default(), observability.NewMetricsForTesting())
}

func TestLoad_UnionsDedupesAndDropsMissing(t *testing.T) {
	cas := casHeader +
		"MH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0,cas_hmw\n" +
		"MH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0,cas_hmw\n" + // exact duplicate
		"MH12AB1234,2024-03-18,,18.52,73.85,45.0,cas_hmw\n" // missing Time
	casdms := casHeader +
		"MH14CD5678,2024-03-19,09:30:00,18.60,73.90,82.5,hard_brake\n" +
		"MH14CD5678,2024-03-19,10:00:00,NaN,73.90,82.5,cas_ldw\n" // NaN Lat

	loader := newTestLoader(t, cas, casdms, 1.0)
	ds, err := loader.Load()
	require.NoError(t, err)

	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "MH12AB1234", ds.Rows[0].Vehicle)
	assert.Equal(t, "MH14CD5678", ds.Rows[1].Vehicle)
	assert.False(t, ds.LoadedAt.IsZero())

	for _, row := range ds.Rows {
		assert.False(t, rowHasMissing(row))
	}
}

func TestLoad_NoTwoRowsIdentical(t *testing.T) {
	row := "MH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0,cas_hmw\n"
	cas := casHeader + row + row + row
	casdms := casHeader + row

	loader := newTestLoader(t, cas, casdms, 1.0)
	ds, err := loader.Load()
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, r := range ds.Rows {
		key := rowKey(r)
		assert.False(t, seen[key], "duplicate row survived load: %v", r)
		seen[key] = true
	}
	assert.Len(t, ds.Rows, 1)
}

func TestLoad_SamplingIsDeterministic(t *testing.T) {
	// Distinct speeds keep every row unique.
	cas := casHeader
	for i := 0; i < 200; i++ {
		cas += "MH12AB1234,2024-03-18,08:15:00,18.52,73.85," + strconv.Itoa(i) + ".5,cas_hmw\n"
	}

	loader := newTestLoader(t, cas, casHeader+"MH14CD5678,2024-03-19,09:30:00,18.60,73.90,82.5,hard_brake\n", 0.05)

	first, err := loader.Load()
	require.NoError(t, err)
	second, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Less(t, len(first.Rows), 201)
	assert.NotEmpty(t, first.Rows)
}

func TestLoad_SampleFractionKeepsAtLeastOneRow(t *testing.T) {
	cas := casHeader +
		"MH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0,cas_hmw\n" +
		"MH14CD5678,2024-03-19,09:30:00,18.60,73.90,82.5,hard_brake\n"
	loader := newTestLoader(t, cas, casHeader+"MH15EF9012,2024-03-20,10:45:00,18.70,74.00,66.0,cas_fcw\n", 0.01)

	ds, err := loader.Load()
	require.NoError(t, err)
	assert.Len(t, ds.Rows, 1)
}

func TestLoad_FormatErrorOnMissingColumns(t *testing.T) {
	// Zero overlapping schema: loading must fail before any aggregation.
	other := "Foo,Bar\n1,2\n"
	cas := casHeader + "MH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0,cas_hmw\n"

	loader := newTestLoader(t, other, cas, 1.0)
	_, err := loader.Load()
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.ElementsMatch(t, domain.Columns, formatErr.Missing)
}

func TestLoad_FormatErrorNamesMissingColumns(t *testing.T) {
	noAlert := "Vehicle,Date,Time,Lat,Long,Speed\nMH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0\n"
	cas := casHeader + "MH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0,cas_hmw\n"

	loader := newTestLoader(t, cas, noAlert, 1.0)
	_, err := loader.Load()

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, []string{"Alert"}, formatErr.Missing)
	assert.Contains(t, formatErr.Error(), "Alert")
}

func TestLoad_IOErrorOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		CASFile:        filepath.Join(dir, "does-not-exist.csv"),
		CASDMSFile:     writeCSV(t, dir, "casdms.csv", casHeader+"MH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0,cas_hmw\n"),
		SampleFraction: 1.0,
		SampleSeed:     42,
	}
	loader := NewLoader(cfg, slog.Default(), observability.NewMetricsForTesting())

	_, err := loader.Load()
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Contains(t, ioErr.Path, "does-not-exist.csv")
}

func TestLoad_ExtraColumnsAreDropped(t *testing.T) {
	// CAS-DMS drops carry extra driver-monitoring columns; column order also differs.
	casdms := "Alert,Vehicle,Date,Time,Lat,Long,Speed,DriverID\n" +
		"dms_drowsiness,MH14CD5678,2024-03-19,09:30:00,18.60,73.90,30.0,D-17\n"
	cas := casHeader + "MH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0,cas_hmw\n"

	loader := newTestLoader(t, cas, casdms, 1.0)
	ds, err := loader.Load()
	require.NoError(t, err)

	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "dms_drowsiness", ds.Rows[1].Alert)
	assert.Equal(t, "MH14CD5678", ds.Rows[1].Vehicle)
}

func TestLoad_StampsLoadTime(t *testing.T) {
	frozen := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(frozen))
	defer domain.SetClock(nil)

	cas := casHeader + "MH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0,cas_hmw\n"
	loader := newTestLoader(t, cas, cas, 1.0)

	ds, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, frozen, ds.LoadedAt)
}

func TestCheckReadiness(t *testing.T) {
	cas := casHeader + "MH12AB1234,2024-03-18,08:15:00,18.52,73.85,45.0,cas_hmw\n"
	loader := newTestLoader(t, cas, cas, 1.0)
	assert.NoError(t, loader.CheckReadiness(context.Background()))

	dir := t.TempDir()
	cfg := &config.Config{
		CASFile:        filepath.Join(dir, "gone.csv"),
		CASDMSFile:     filepath.Join(dir, "also-gone.csv"),
		SampleFraction: 1.0,
	}
	broken := NewLoader(cfg, slog.Default(), observability.NewMetricsForTesting())
	assert.Error(t, broken.CheckReadiness(context.Background()))
}
