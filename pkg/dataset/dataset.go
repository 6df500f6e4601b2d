package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Column names of the UCI blood transfusion table. The synthetic generator
// emits the same header so downstream stages never care which source ran.
const (
	ColRecency   = "Recency (months)"
	ColFrequency = "Frequency (times)"
	ColMonetary  = "Monetary (c.c. blood)"
	ColTime      = "Time (months)"
	ColOutcome   = "whether he/she donated blood in March 2007"
	ColTarget    = "target"
)

// UnitVolume is the fixed donation volume in c.c.; monetary = frequency * UnitVolume.
const UnitVolume = 250

// SyntheticRows is the row count fabricated when the data file is absent,
// matching the size of the real transfusion table.
const SyntheticRows = 748

var (
	// ErrNoOutcomeColumn indicates the long-form outcome column is missing.
	ErrNoOutcomeColumn = errors.New("dataset: outcome column not found")
	// ErrEmpty indicates a table with a header but no data rows.
	ErrEmpty = errors.New("dataset: no data rows")
)

// Dataset is an ordered table of donation records: one float64 row per donor
// plus column names. Rows are immutable after load; the only mutation any
// stage performs is the single outcome-column rename.
type Dataset struct {
	Columns []string
	Rows    [][]float64
}

// Load reads the comma-delimited table at path. When the file does not exist
// it falls back to Synthetic(SyntheticRows, seed) and reports the fallback via
// the second return value. Any other read or parse failure is returned as an
// error; there is no second recovery path.
func Load(path string, seed int64) (*Dataset, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return Synthetic(SyntheticRows, seed), true, nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("dataset: reading %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, false, ErrEmpty
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([][]float64, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, false, fmt.Errorf("dataset: row %d has %d fields, want %d", i+1, len(rec), len(header))
		}
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, false, fmt.Errorf("dataset: row %d column %q: %w", i+1, header[j], err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return &Dataset{Columns: header, Rows: rows}, false, nil
}

// Synthetic fabricates n donation records from a seeded generator so runs are
// reproducible: recency in [0,50), frequency in [1,50), monetary locked to
// frequency*UnitVolume, time in [0,98), outcome uniform over {0,1}.
func Synthetic(n int, seed int64) *Dataset {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		frequency := float64(1 + rng.Intn(49))
		rows[i] = []float64{
			float64(rng.Intn(50)),
			frequency,
			frequency * UnitVolume,
			float64(rng.Intn(98)),
			float64(rng.Intn(2)),
		}
	}
	return &Dataset{
		Columns: []string{ColRecency, ColFrequency, ColMonetary, ColTime, ColOutcome},
		Rows:    rows,
	}
}

// Shape returns (rows, columns).
func (d *Dataset) Shape() (int, int) {
	return len(d.Rows), len(d.Columns)
}

// Head returns the first n rows (fewer when the table is shorter).
func (d *Dataset) Head(n int) [][]float64 {
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	return d.Rows[:n]
}

// Column extracts a single column by name.
func (d *Dataset) Column(name string) ([]float64, error) {
	idx := -1
	for j, c := range d.Columns {
		if c == name {
			idx = j
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("dataset: no column %q", name)
	}
	out := make([]float64, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Summary holds the descriptive statistics of one column.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe computes per-column descriptive statistics in column order.
func (d *Dataset) Describe() []Summary {
	out := make([]Summary, len(d.Columns))
	for j, name := range d.Columns {
		col, _ := d.Column(name)
		sorted := make([]float64, len(col))
		copy(sorted, col)
		sort.Float64s(sorted)

		s := Summary{Column: name, Count: len(col)}
		if len(col) > 0 {
			s.Mean = stat.Mean(col, nil)
			s.Std = stat.StdDev(col, nil)
			s.Min = sorted[0]
			s.Max = sorted[len(sorted)-1]
			s.Q25 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
			s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
			s.Q75 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
		}
		out[j] = s
	}
	return out
}
