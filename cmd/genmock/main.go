// Command genmock generates a pair of mock telemetry CSV files matching the
// iRASTE CAS/CAS-DMS schema, for local development and test fixtures. Output
// is deterministic for a given seed. A small number of duplicate rows and
// rows with missing fields are injected so the loader's cleaning passes have
// something to do.
//
// Usage:
//
//	go run ./cmd/genmock -out-dir data -rows 5000 -seed 42
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Meghaaa003/ADAS/internal/domain"
)

var baseDate = time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC)

// casAlerts and dmsAlerts partition the vocabulary between the two feeds.
// The CAS-DMS file also carries CAS alerts, as the real export does.
var (
	casAlerts = []string{"cas_ldw", "cas_hmw", "cas_pcw", "cas_fcw", "hard_brake", "overspeed"}
	dmsAlerts = []string{"dms_drowsiness", "dms_distraction", "dms_phone_use", "cas_ldw", "hard_brake"}
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out-dir", "data", "output directory for the CSV pair")
	rows := flag.Int("rows", 5000, "data rows per file")
	seed := flag.Int64("seed", 42, "seed for deterministic output")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	casPath := filepath.Join(*outDir, "iraste_nxt_cas.csv")
	if err := writeFile(casPath, *rows, casAlerts, rng); err != nil {
		return fmt.Errorf("writing CAS file: %w", err)
	}
	log.Printf("wrote %s: %d rows", casPath, *rows)

	casdmsPath := filepath.Join(*outDir, "iraste_nxt_casdms.csv")
	if err := writeFile(casdmsPath, *rows, dmsAlerts, rng); err != nil {
		return fmt.Errorf("writing CAS-DMS file: %w", err)
	}
	log.Printf("wrote %s: %d rows", casdmsPath, *rows)

	return nil
}

func writeFile(path string, rows int, alerts []string, rng *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(domain.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	var prev []string
	for i := 0; i < rows; i++ {
		row := mockRow(alerts, rng)

		// Roughly 2% duplicates and 2% rows with a missing field.
		switch {
		case prev != nil && rng.Float64() < 0.02:
			row = prev
		case rng.Float64() < 0.02:
			row[2+rng.Intn(4)] = "" // blank out Time, Lat, Long, or Speed
		}

		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		prev = row
	}

	w.Flush()
	return w.Error()
}

func mockRow(alerts []string, rng *rand.Rand) []string {
	date := baseDate.AddDate(0, 0, rng.Intn(14))
	tod := time.Date(0, 1, 1, rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, time.UTC)

	// Cluster coordinates around Pune, where the iRASTE pilot ran.
	lat := 18.4 + rng.Float64()*0.4
	long := 73.7 + rng.Float64()*0.4
	speed := rng.Float64() * 110

	return []string{
		fmt.Sprintf("MH%02d%c%c%04d", 12+rng.Intn(4), 'A'+rune(rng.Intn(26)), 'A'+rune(rng.Intn(26)), rng.Intn(10000)),
		date.Format("2006-01-02"),
		tod.Format("15:04:05"),
		strconv.FormatFloat(lat, 'f', 5, 64),
		strconv.FormatFloat(long, 'f', 5, 64),
		strconv.FormatFloat(speed, 'f', 1, 64),
		alerts[rng.Intn(len(alerts))],
	}
}
