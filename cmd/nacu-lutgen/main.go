// nacu-lutgen runs the offline piecewise-linear partition search over a
// (fractional width, interval count) grid, caches results in a local
// database, and exports the flattened coefficient tables consumed by the
// runtime.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/silagokth/NACU/internal/lut"
	"github.com/silagokth/NACU/internal/pwlgen"
	"github.com/silagokth/NACU/internal/store"
)

var (
	dbPath     = flag.String("db", "lutgen-db", "path to the result database")
	fracList   = flag.String("frac", "5,6,7,8,9,10,11", "comma-separated fractional widths to sweep")
	intervals  = flag.String("intervals", "32", "comma-separated interval counts to sweep")
	metricName = flag.String("metric", "sum", "error objective: sum or max")
	radius     = flag.Int("radius", 5, "coefficient search neighborhood in LSBs")
	force      = flag.Bool("force", false, "re-run searches even when a cached result exists")
	exportGo   = flag.String("export-go", "", "write the flattened tables as Go source to this file")
	exportJSON = flag.String("export-json", "", "write all swept records as JSON to this file")
)

func main() {
	flag.Parse()

	fracs, err := parseIntList(*fracList)
	if err != nil {
		log.Fatalf("bad -frac: %v", err)
	}
	counts, err := parseIntList(*intervals)
	if err != nil {
		log.Fatalf("bad -intervals: %v", err)
	}
	metric, err := parseMetric(*metricName)
	if err != nil {
		log.Fatal(err)
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Best result per fractional width across the swept interval counts.
	best := make(map[int]*store.Record)

	for _, frac := range fracs {
		for _, n := range counts {
			rec, err := sweepOne(db, frac, n, metric)
			if err != nil {
				log.Fatalf("fb=%d N=%d: %v", frac, n, err)
			}
			log.Printf("fb=%d N=%d: sum=%.2f max=%.2f LSB", frac, n, rec.SumAbsErr, rec.MaxAbsErr)
			if b, ok := best[frac]; !ok || rec.MaxAbsErr < b.MaxAbsErr {
				best[frac] = rec
			}
		}
	}

	if *exportJSON != "" {
		if err := writeJSON(db, *exportJSON); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *exportJSON)
	}
	if *exportGo != "" {
		if err := writeGoTables(fracs, best, *exportGo); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *exportGo)
	}
}

// sweepOne returns the cached record for (frac, n) or runs the search.
func sweepOne(db *store.Store, frac, n int, metric pwlgen.Metric) (*store.Record, error) {
	if !*force {
		rec, err := db.Get(frac, n)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	res, err := pwlgen.Search(pwlgen.Options{
		Frac:         frac,
		Intervals:    n,
		Metric:       metric,
		SearchRadius: int64(*radius),
	})
	if err != nil {
		return nil, err
	}
	rec := store.FromResult(res, metric)
	if err := db.Put(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func writeJSON(db *store.Store, path string) error {
	recs, err := db.List()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// writeGoTables renders the flattened tables in the layout of
// internal/lut/tables_gen.go. Widths without a swept result keep a nil
// slot; the runtime rejects formats without tables.
func writeGoTables(fracs []int, best map[int]*store.Record, path string) error {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by nacu-lutgen. DO NOT EDIT.\n\n")
	buf.WriteString("package lut\n\n")
	buf.WriteString("// tables holds one flattened sigmoid coefficient table per supported\n")
	buf.WriteString("// fractional width, indexed by Frac. Offsets are segment intercepts in\n")
	buf.WriteString("// the table's own format.\n")
	buf.WriteString("var tables = [FinestFrac + 1]*Table{\n")

	for _, frac := range fracs {
		rec, ok := best[frac]
		if !ok || frac > lut.FinestFrac {
			continue
		}
		tbl, err := pwlgen.FlattenTable(rec.Result())
		if err != nil {
			return fmt.Errorf("flatten fb=%d: %w", frac, err)
		}
		fmt.Fprintf(&buf, "\t%d: {Frac: %d, NumInLUT: %d, Entries: []Entry{\n", frac, tbl.Frac, tbl.NumInLUT)
		line := "\t\t"
		for _, e := range tbl.Entries {
			piece := fmt.Sprintf("{%d, %d}, ", e.Slope, e.Offset)
			if len(line)+len(piece) > 78 {
				buf.WriteString(strings.TrimRight(line, " ") + "\n")
				line = "\t\t"
			}
			line += piece
		}
		if strings.TrimSpace(line) != "" {
			buf.WriteString(strings.TrimRight(line, " ") + "\n")
		}
		buf.WriteString("\t}},\n")
	}
	buf.WriteString("}\n")
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

func parseMetric(s string) (pwlgen.Metric, error) {
	switch s {
	case "sum":
		return pwlgen.MetricSum, nil
	case "max":
		return pwlgen.MetricMax, nil
	default:
		return 0, fmt.Errorf("unknown metric %q (want sum or max)", s)
	}
}
