// Package dataset loads the two telemetry CSV drops into the single cleaned,
// deterministically sampled collection every view consumes. There is no cache:
// each request re-reads and re-samples the source files, which keeps results
// stable for unchanged inputs without any cross-request coordination.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Meghaaa003/ADAS/internal/config"
	"github.com/Meghaaa003/ADAS/internal/domain"
	"github.com/Meghaaa003/ADAS/internal/observability"
)

// IOError reports an unreadable source file. Fatal for the request.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// FormatError reports a source file missing required columns. Fatal for the request.
type FormatError struct {
	Path    string
	Missing []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Path, strings.Join(e.Missing, ", "))
}

// Dataset is the in-memory collection produced by one load. It is created
// fresh per request, never mutated, and discarded with the response.
type Dataset struct {
	Rows     []domain.RawAlertRow
	LoadedAt time.Time
}

// Loader reads, cleans, and samples the two source files.
type Loader struct {
	casPath    string
	casdmsPath string
	fraction   float64
	seed       int64
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewLoader creates a Loader from the service configuration.
func NewLoader(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{
		casPath:    cfg.CASFile,
		casdmsPath: cfg.CASDMSFile,
		fraction:   cfg.SampleFraction,
		seed:       cfg.SampleSeed,
		logger:     logger,
		metrics:    metrics,
	}
}

// Load produces the cleaned dataset: both sources unioned, exact-duplicate
// rows removed, rows with any missing field removed, then a fixed-seed
// pseudo-random sample of the remainder. Reloading unchanged files yields the
// identical subset.
func (l *Loader) Load() (*Dataset, error) {
	casRows, err := l.readSource(l.casPath)
	if err != nil {
		return nil, err
	}
	casdmsRows, err := l.readSource(l.casdmsPath)
	if err != nil {
		return nil, err
	}

	rows := append(casRows, casdmsRows...)
	total := len(rows)

	rows, duplicates := dropDuplicates(rows)
	rows, missing := dropMissing(rows)
	rows = sampleRows(rows, l.fraction, l.seed)

	l.metrics.RowsDropped.WithLabelValues("duplicate").Add(float64(duplicates))
	l.metrics.RowsDropped.WithLabelValues("missing").Add(float64(missing))
	l.metrics.RowsSampled.Observe(float64(len(rows)))

	l.logger.Debug("dataset loaded",
		"total_rows", total,
		"duplicates_dropped", duplicates,
		"missing_dropped", missing,
		"sampled_rows", len(rows),
	)

	return &Dataset{Rows: rows, LoadedAt: domain.Now()}, nil
}

// CheckReadiness reports whether both source files are readable.
func (l *Loader) CheckReadiness(_ context.Context) error {
	for _, path := range []string{l.casPath, l.casdmsPath} {
		if _, err := os.Stat(path); err != nil {
			return &IOError{Path: path, Err: err}
		}
	}
	return nil
}

// readSource parses one CSV file, verifies the required schema, and returns
// its rows with columns in canonical order. Extra columns are dropped.
func (l *Loader) readSource(path string) ([]domain.RawAlertRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, &IOError{Path: path, Err: df.Err}
	}

	present := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		present[name] = true
	}
	var missing []string
	for _, col := range domain.Columns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &FormatError{Path: path, Missing: missing}
	}

	sel := df.Select(domain.Columns)
	if sel.Err != nil {
		return nil, &IOError{Path: path, Err: sel.Err}
	}

	records := sel.Records()
	rows := make([]domain.RawAlertRow, 0, len(records)-1)
	for _, rec := range records[1:] { // records[0] is the header
		rows = append(rows, domain.RawAlertRow{
			Vehicle: rec[0],
			Date:    rec[1],
			Time:    rec[2],
			Lat:     rec[3],
			Long:    rec[4],
			Speed:   rec[5],
			Alert:   rec[6],
		})
	}
	return rows, nil
}

// dropDuplicates removes rows identical to an earlier row across every field,
// keeping first occurrences. Returns the kept rows and the dropped count.
func dropDuplicates(rows []domain.RawAlertRow) ([]domain.RawAlertRow, int) {
	seen := make(map[string]bool, len(rows))
	out := rows[:0:0]
	for _, row := range rows {
		key := rowKey(row)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out, len(rows) - len(out)
}

// dropMissing removes rows with any missing field. Returns the kept rows and
// the dropped count.
func dropMissing(rows []domain.RawAlertRow) ([]domain.RawAlertRow, int) {
	out := rows[:0:0]
	for _, row := range rows {
		if rowHasMissing(row) {
			continue
		}
		out = append(out, row)
	}
	return out, len(rows) - len(out)
}

func rowKey(r domain.RawAlertRow) string {
	return strings.Join([]string{r.Vehicle, r.Date, r.Time, r.Lat, r.Long, r.Speed, r.Alert}, "\x1f")
}

func rowHasMissing(r domain.RawAlertRow) bool {
	for _, v := range []string{r.Vehicle, r.Date, r.Time, r.Lat, r.Long, r.Speed, r.Alert} {
		if isMissing(v) {
			return true
		}
	}
	return false
}

// isMissing treats empty cells and the usual textual null sentinels as missing.
func isMissing(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "nan") || strings.EqualFold(v, "na") || strings.EqualFold(v, "null")
}

// sampleRows draws a fixed-seed pseudo-random sample of ceil(fraction*n) rows,
// preserving original row order. The same input and seed always select the
// same subset.
func sampleRows(rows []domain.RawAlertRow, fraction float64, seed int64) []domain.RawAlertRow {
	if len(rows) == 0 || fraction >= 1 {
		return rows
	}

	n := int(math.Ceil(fraction * float64(len(rows))))
	if n < 1 {
		n = 1
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(rows))
	picked := perm[:n]
	sort.Ints(picked)

	out := make([]domain.RawAlertRow, 0, n)
	for _, i := range picked {
		out = append(out, rows[i])
	}
	return out
}
