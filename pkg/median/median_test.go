package median_test

import (
	"slices"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/collections/pkg/median"
	"github.com/dmitrymomot/collections/pkg/order"
)

func TestTracker(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		tr := median.NewOrdered[int]()

		_, _, ok := tr.Median()
		assert.False(t, ok)
		_, ok = median.Mean(tr)
		assert.False(t, ok)
		assert.True(t, tr.IsEmpty())
		assert.Equal(t, 0, tr.Len())
	})

	t.Run("sequential inserts", func(t *testing.T) {
		tr := median.NewOrdered[int]()

		type pair struct{ lo, hi int }
		wantPairs := []pair{{1, 1}, {1, 2}, {2, 2}, {2, 3}, {3, 3}}
		wantMeans := []float64{1, 1.5, 2, 2.5, 3}

		for i, v := range []int{1, 2, 3, 4, 5} {
			tr.Insert(v)

			lo, hi, ok := tr.Median()
			require.True(t, ok)
			assert.Equal(t, wantPairs[i], pair{lo, hi}, "after inserting %d", v)

			m, ok := median.Mean(tr)
			require.True(t, ok)
			assert.InDelta(t, wantMeans[i], m, 1e-9)
		}
		assert.Equal(t, 5, tr.Len())
	})

	t.Run("second value smaller than first", func(t *testing.T) {
		tr := median.NewOrdered[int]()
		tr.Insert(5)
		tr.Insert(1)

		lo, hi, ok := tr.Median()
		require.True(t, ok)
		assert.Equal(t, 1, lo)
		assert.Equal(t, 5, hi)
	})

	t.Run("custom order", func(t *testing.T) {
		type reading struct {
			sensor string
			value  float64
		}
		tr := median.New(order.By(func(r reading) float64 { return r.value }, order.Less[float64]))
		tr.Insert(reading{"a", 20.5})
		tr.Insert(reading{"b", 19.0})
		tr.Insert(reading{"c", 22.1})

		lo, hi, ok := tr.Median()
		require.True(t, ok)
		assert.Equal(t, "a", lo.sensor)
		assert.Equal(t, lo, hi)
	})
}

func TestTracker_Random(t *testing.T) {
	f := fuzz.NewWithSeed(99).NilChance(0).NumElements(1, 300)
	for range 50 {
		var in []int32
		f.Fuzz(&in)

		tr := median.NewOrdered[int32]()
		var seen []int32
		for _, v := range in {
			tr.Insert(v)
			seen = append(seen, v)

			sorted := slices.Clone(seen)
			slices.Sort(sorted)
			n := len(sorted)

			lo, hi, ok := tr.Median()
			require.True(t, ok)
			if n%2 == 1 {
				require.Equal(t, sorted[n/2], lo)
				require.Equal(t, sorted[n/2], hi)
			} else {
				require.Equal(t, sorted[n/2-1], lo)
				require.Equal(t, sorted[n/2], hi)
			}
		}
	}
}

func BenchmarkTracker_Insert(b *testing.B) {
	tr := median.NewOrdered[int]()

	b.ResetTimer()
	for i := range b.N {
		tr.Insert((i * 7919) % 10007)
	}
}
