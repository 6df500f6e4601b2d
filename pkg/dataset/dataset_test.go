package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/dataset"
)

// TestSynthetic_SchemaAndRanges verifies the fabricated table carries the
// documented header, row count, and value ranges.
func TestSynthetic_SchemaAndRanges(t *testing.T) {
	ds := dataset.Synthetic(dataset.SyntheticRows, 42)

	rows, cols := ds.Shape()
	assert.Equal(t, 748, rows)
	assert.Equal(t, 5, cols)
	assert.Equal(t, []string{
		dataset.ColRecency,
		dataset.ColFrequency,
		dataset.ColMonetary,
		dataset.ColTime,
		dataset.ColOutcome,
	}, ds.Columns)

	for _, row := range ds.Rows {
		assert.GreaterOrEqual(t, row[0], 0.0)
		assert.Less(t, row[0], 50.0)
		assert.GreaterOrEqual(t, row[1], 1.0)
		assert.Less(t, row[1], 50.0)
		assert.Equal(t, row[1]*dataset.UnitVolume, row[2], "monetary must equal frequency*250")
		assert.GreaterOrEqual(t, row[3], 0.0)
		assert.Less(t, row[3], 98.0)
		assert.Contains(t, []float64{0, 1}, row[4])
	}
}

// TestSynthetic_Deterministic checks that one seed always fabricates the
// identical table and different seeds do not.
func TestSynthetic_Deterministic(t *testing.T) {
	a := dataset.Synthetic(100, 7)
	b := dataset.Synthetic(100, 7)
	c := dataset.Synthetic(100, 8)

	assert.Equal(t, a.Rows, b.Rows, "same seed must reproduce the table")
	assert.NotEqual(t, a.Rows, c.Rows, "different seeds should differ")
}

// TestLoad_MissingFileFallsBack verifies the single recovered error: an
// absent file yields the synthetic table, flagged as such.
func TestLoad_MissingFileFallsBack(t *testing.T) {
	ds, synthetic, err := dataset.Load(filepath.Join(t.TempDir(), "absent.data"), 42)

	require.NoError(t, err)
	assert.True(t, synthetic)
	rows, _ := ds.Shape()
	assert.Equal(t, dataset.SyntheticRows, rows)
}

// TestLoad_File parses a well-formed table verbatim.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transfusion.data")
	content := "Recency (months),Frequency (times),Monetary (c.c. blood),Time (months),whether he/she donated blood in March 2007\n" +
		"2,50,12500,98,1\n" +
		"0,13,3250,28,1\n" +
		"4,4,1000,4,0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ds, synthetic, err := dataset.Load(path, 42)

	require.NoError(t, err)
	assert.False(t, synthetic)
	rows, cols := ds.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 5, cols)
	assert.Equal(t, []float64{2, 50, 12500, 98, 1}, ds.Rows[0])
}

// TestLoad_MalformedCell ensures a non-numeric cell aborts the load instead
// of being silently patched.
func TestLoad_MalformedCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.data")
	content := "Recency (months),Frequency (times),Monetary (c.c. blood),Time (months),whether he/she donated blood in March 2007\n" +
		"2,abc,12500,98,1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, _, err := dataset.Load(path, 42)
	assert.Error(t, err)
}

// TestLoad_HeaderOnly rejects a table with no data rows.
func TestLoad_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.data")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n"), 0o644))

	_, _, err := dataset.Load(path, 42)
	assert.ErrorIs(t, err, dataset.ErrEmpty)
}

// TestHead caps at the available rows.
func TestHead(t *testing.T) {
	ds := dataset.Synthetic(3, 42)
	assert.Len(t, ds.Head(5), 3)
	assert.Len(t, ds.Head(2), 2)
}

// TestDescribe_KnownColumn checks summary statistics on a hand-computed column.
func TestDescribe_KnownColumn(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"x"},
		Rows:    [][]float64{{1}, {2}, {3}, {4}},
	}

	summaries := ds.Describe()
	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 1.0, s.Min, 1e-12)
	assert.InDelta(t, 4.0, s.Max, 1e-12)
}
