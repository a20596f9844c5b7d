package heap_test

import (
	"slices"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/collections/pkg/heap"
	"github.com/dmitrymomot/collections/pkg/order"
)

func TestSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       []int
		fn       order.Func[int]
		expected []int
	}{
		{name: "empty", in: nil, fn: order.Less[int], expected: []int{}},
		{name: "single", in: []int{7}, fn: order.Less[int], expected: []int{7}},
		{name: "ascending", in: []int{1, 2, 21, 6, 33, 8, 9, 13, 7}, fn: order.Less[int], expected: []int{1, 2, 6, 7, 8, 9, 13, 21, 33}},
		{name: "descending", in: []int{4, 1, 3, 1}, fn: order.Greater[int], expected: []int{4, 3, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.in)
			got := heap.Sort(tt.in, tt.fn)
			assert.Equal(t, tt.expected, append([]int{}, got...))
			assert.Equal(t, in, tt.in, "input must not be modified")
		})
	}

	t.Run("matches slices.Sort on random input", func(t *testing.T) {
		f := fuzz.NewWithSeed(7).NumElements(0, 500)
		for range 50 {
			var in []int32
			f.Fuzz(&in)

			expected := slices.Clone(in)
			slices.Sort(expected)
			require.Equal(t, expected, heap.Sort(in, order.Less[int32]))
		}
	})
}

func TestTopK(t *testing.T) {
	t.Parallel()

	t.Run("keeps largest", func(t *testing.T) {
		top := heap.NewTopK(3, order.Greater[int])
		for _, v := range []int{5, 8, 1, 2, 7, 4, 6} {
			top.Push(v)
		}
		assert.Equal(t, 3, top.Len())
		assert.Equal(t, 3, top.K())
		assert.Equal(t, []int{8, 7, 6}, top.Values())
	})

	t.Run("keeps smallest", func(t *testing.T) {
		top := heap.NewTopK(3, order.Less[int])
		for _, v := range []int{5, 8, 1, 2, 7, 4, 6} {
			top.Push(v)
		}
		assert.Equal(t, []int{1, 2, 4}, top.Values())
	})

	t.Run("push reports retention", func(t *testing.T) {
		top := heap.NewTopK(2, order.Greater[int])
		assert.True(t, top.Push(1))
		assert.True(t, top.Push(2))
		assert.False(t, top.Push(0))
		assert.True(t, top.Push(3))
		assert.Equal(t, []int{3, 2}, top.Values())
	})

	t.Run("fewer values than k", func(t *testing.T) {
		top := heap.NewTopK(10, order.Greater[int])
		top.Push(1)
		assert.Equal(t, []int{1}, top.Values())
	})

	t.Run("invalid size panics", func(t *testing.T) {
		assert.PanicsWithValue(t, heap.ErrInvalidTopK, func() {
			heap.NewTopK(0, order.Greater[int])
		})
	})
}
