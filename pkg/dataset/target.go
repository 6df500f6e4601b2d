package dataset

import "sort"

// RenameTarget renames the long-form outcome column to "target". The rename is
// the only mutation a Dataset ever sees; row values are untouched. Returns
// ErrNoOutcomeColumn when the exact outcome name is absent.
func (d *Dataset) RenameTarget() error {
	for j, c := range d.Columns {
		if c == ColOutcome {
			d.Columns[j] = ColTarget
			return nil
		}
	}
	return ErrNoOutcomeColumn
}

// ClassCount is the size and share of one target class.
type ClassCount struct {
	Class   int
	Count   int
	Percent float64
}

// ClassBalance tallies rows per target class in ascending class order.
func (d *Dataset) ClassBalance() ([]ClassCount, error) {
	y, err := d.Column(ColTarget)
	if err != nil {
		return nil, err
	}
	counts := map[int]int{}
	for _, v := range y {
		counts[int(v)]++
	}
	classes := make([]int, 0, len(counts))
	for c := range counts {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	out := make([]ClassCount, len(classes))
	for i, c := range classes {
		out[i] = ClassCount{
			Class:   c,
			Count:   counts[c],
			Percent: 100 * float64(counts[c]) / float64(len(y)),
		}
	}
	return out, nil
}

// Features returns the non-target columns as a matrix plus their names,
// preserving row order.
func (d *Dataset) Features() ([][]float64, []string) {
	keep := make([]int, 0, len(d.Columns))
	names := make([]string, 0, len(d.Columns))
	for j, c := range d.Columns {
		if c == ColTarget {
			continue
		}
		keep = append(keep, j)
		names = append(names, c)
	}
	X := make([][]float64, len(d.Rows))
	for i, row := range d.Rows {
		x := make([]float64, len(keep))
		for k, j := range keep {
			x[k] = row[j]
		}
		X[i] = x
	}
	return X, names
}

// Target returns the target column, or an error when it has not been derived.
func (d *Dataset) Target() ([]float64, error) {
	return d.Column(ColTarget)
}
