// Command validate performs offline integrity checks on a telemetry CSV pair
// before it is put in front of the dashboard: schema presence, cleaning
// behavior, post-load invariants, and sample determinism.
//
// Usage:
//
//	go run ./cmd/validate -cas data/iraste_nxt_cas.csv -casdms data/iraste_nxt_casdms.csv
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"reflect"

	"github.com/Meghaaa003/ADAS/internal/config"
	"github.com/Meghaaa003/ADAS/internal/dataset"
	"github.com/Meghaaa003/ADAS/internal/domain"
	"github.com/Meghaaa003/ADAS/internal/observability"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) report() bool {
	if len(p.errors) == 0 {
		fmt.Printf("PASS  %s\n", p.name)
		return true
	}
	fmt.Printf("FAIL  %s\n", p.name)
	for _, e := range p.errors {
		fmt.Printf("      %s\n", e)
	}
	return false
}

func main() {
	casPath := flag.String("cas", "data/iraste_nxt_cas.csv", "CAS source file")
	casdmsPath := flag.String("casdms", "data/iraste_nxt_casdms.csv", "CAS-DMS source file")
	fraction := flag.Float64("fraction", 0.01, "sample fraction")
	seed := flag.Int64("seed", 42, "sample seed")
	flag.Parse()

	cfg := &config.Config{
		CASFile:        *casPath,
		CASDMSFile:     *casdmsPath,
		SampleFraction: *fraction,
		SampleSeed:     *seed,
	}
	loader := dataset.NewLoader(cfg, slog.Default(), observability.NewMetricsForTesting())

	ok := true
	ok = validateLoad(loader) && ok
	ok = validateDeterminism(loader) && ok

	if !ok {
		os.Exit(1)
	}
}

// validateLoad checks the post-load invariants: a non-empty dataset with no
// duplicate rows, no missing fields, and parseable core columns.
func validateLoad(loader *dataset.Loader) bool {
	p := &phase{name: "load invariants"}

	ds, err := loader.Load()
	if err != nil {
		p.errorf("load failed: %v", err)
		return p.report()
	}
	if len(ds.Rows) == 0 {
		p.errorf("sampled dataset is empty")
		return p.report()
	}

	seen := map[domain.RawAlertRow]bool{}
	for i, row := range ds.Rows {
		if seen[row] {
			p.errorf("row %d is an exact duplicate: %+v", i, row)
		}
		seen[row] = true
	}

	records, stats := domain.Normalize(ds.Rows)
	if stats.DateParseFailures > 0 {
		p.errorf("%d rows with unparseable dates", stats.DateParseFailures)
	}
	if stats.TimeParseFailures > 0 {
		p.errorf("%d rows with unparseable times", stats.TimeParseFailures)
	}
	for i, rec := range records {
		if rec.Speed < 0 {
			p.errorf("row %d has negative speed %v", i, rec.Speed)
		}
	}

	fmt.Printf("      %d sampled rows, %d safety-critical\n", len(ds.Rows), len(domain.FilterSafety(records)))
	return p.report()
}

// validateDeterminism reloads the pair and checks the sampled subset is
// byte-identical, which the dashboard relies on for stable charts.
func validateDeterminism(loader *dataset.Loader) bool {
	p := &phase{name: "sample determinism"}

	first, err := loader.Load()
	if err != nil {
		p.errorf("first load failed: %v", err)
		return p.report()
	}
	second, err := loader.Load()
	if err != nil {
		p.errorf("second load failed: %v", err)
		return p.report()
	}

	if !reflect.DeepEqual(first.Rows, second.Rows) {
		p.errorf("reloading produced a different sample: %d vs %d rows", len(first.Rows), len(second.Rows))
	}
	return p.report()
}
