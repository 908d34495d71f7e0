package bvec

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// shapes are the tree configurations exercised by model tests.
var shapes = []Config{
	{Fanout: 3, LeafCap: 2},
	{Fanout: 3, LeafCap: 3},
	{Fanout: 4, LeafCap: 4},
	{Fanout: 5, LeafCap: 5},
	{Fanout: 7, LeafCap: 3},
	{}, // defaults
}

func newTestVec(t testing.TB, cfg Config) *Vec[int] {
	t.Helper()
	v, err := NewWithConfig[int](cfg)
	require.NoError(t, err)
	return v
}

func mustCheck(t testing.TB, v *Vec[int]) {
	t.Helper()
	require.NoError(t, v.Check())
}

func contents(v *Vec[int]) []int {
	return slices.Collect(v.Values())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	for _, cfg := range []Config{{Fanout: 2}, {LeafCap: 1}, {Fanout: -1, LeafCap: 4}} {
		_, err := NewWithConfig[int](cfg)
		require.True(t, errors.Is(err, ErrInvalidConfig), "config %+v: got %v", cfg, err)
	}
	v, err := NewWithConfig[int](Config{Fanout: 3, LeafCap: 2})
	require.NoError(t, err)
	require.Equal(t, Config{Fanout: 3, LeafCap: 2}, v.Config())
}

func TestZeroVecIsUsable(t *testing.T) {
	var v Vec[int]
	require.Equal(t, 0, v.Len())
	require.NoError(t, v.Check())
	v.PushBack(1)
	v.PushFront(0)
	require.Equal(t, []int{0, 1}, contents(&v))
	require.Equal(t, DefaultConfig(), v.Config())
	mustCheck(t, &v)
}

func TestCheckEmptyTree(t *testing.T) {
	v := New[int]()
	mustCheck(t, v)
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Height())
	require.True(t, v.IsEmpty())
}

func TestScenarioFanout3LeafCap3(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bvec")
	defer teardown()

	v := newTestVec(t, Config{Fanout: 3, LeafCap: 3})
	for x := 0; x <= 9; x++ {
		require.NoError(t, v.Insert(v.Len(), x))
		mustCheck(t, v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, contents(v))
	require.Greater(t, v.Height(), 2)

	// Indices [9,0,4] address the elements of the initial sequence; after
	// removing 9 and 0, the element 4 sits at index 3.
	for _, index := range []int{9, 0, 3} {
		_, err := v.Remove(index)
		require.NoError(t, err)
		mustCheck(t, v)
	}
	require.Equal(t, []int{1, 2, 3, 5, 6, 7, 8}, contents(v))
}

func TestScenarioPositionalRemoval(t *testing.T) {
	v := newTestVec(t, Config{Fanout: 3, LeafCap: 3})
	for x := 0; x <= 9; x++ {
		v.PushBack(x)
	}
	var removed []int
	for _, index := range []int{9, 0, 4} {
		x, err := v.Remove(index)
		require.NoError(t, err)
		removed = append(removed, x)
		mustCheck(t, v)
	}
	require.Equal(t, []int{9, 0, 5}, removed)
	require.Equal(t, []int{1, 2, 3, 4, 6, 7, 8}, contents(v))
}

func TestBoundaries(t *testing.T) {
	for _, cfg := range shapes {
		v := newTestVec(t, cfg)
		for x := range 20 {
			v.PushBack(x)
		}
		n := v.Len()
		_, err := v.Get(n)
		require.True(t, errors.Is(err, ErrIndexOutOfBounds))
		_, err = v.Get(-1)
		require.True(t, errors.Is(err, ErrIndexOutOfBounds))
		require.True(t, errors.Is(v.Insert(n+1, 0), ErrIndexOutOfBounds))
		require.True(t, errors.Is(v.Insert(-1, 0), ErrIndexOutOfBounds))
		_, err = v.Remove(n)
		require.True(t, errors.Is(err, ErrIndexOutOfBounds))
		require.True(t, errors.Is(v.Set(n, 0), ErrIndexOutOfBounds))
		require.Equal(t, n, v.Len(), "failed operations must not change the vector")

		require.NoError(t, v.Insert(n, 99))
		require.Equal(t, n+1, v.Len())
		last, ok := v.Last()
		require.True(t, ok)
		require.Equal(t, 99, last)
		mustCheck(t, v)
	}
}

func TestEmptyVectorOperations(t *testing.T) {
	v := New[string]()
	_, err := v.Get(0)
	require.True(t, errors.Is(err, ErrIndexOutOfBounds))
	_, err = v.Remove(0)
	require.True(t, errors.Is(err, ErrIndexOutOfBounds))
	_, ok := v.PopBack()
	require.False(t, ok)
	_, ok = v.PopFront()
	require.False(t, ok)
	_, ok = v.First()
	require.False(t, ok)
	require.Equal(t, "[]", v.String())
	require.Panics(t, func() { v.At(0) })
}

func TestInsertRemoveSingle(t *testing.T) {
	v := newTestVec(t, Config{Fanout: 3, LeafCap: 2})
	require.NoError(t, v.Insert(0, 7))
	require.Equal(t, 1, v.Height())
	x, err := v.Remove(0)
	require.NoError(t, err)
	require.Equal(t, 7, x)
	require.Equal(t, 0, v.Height())
	mustCheck(t, v)
}

func TestIndexRoundTrip(t *testing.T) {
	for _, cfg := range shapes {
		v := newTestVec(t, cfg)
		for x := range 500 {
			v.PushBack(x)
		}
		mustCheck(t, v)
		for i := range 500 {
			require.Equal(t, i, v.At(i))
		}
	}
}

func TestSetAndGetMut(t *testing.T) {
	v := newTestVec(t, Config{Fanout: 4, LeafCap: 4})
	for x := range 50 {
		v.PushBack(x)
	}
	require.NoError(t, v.Set(10, -10))
	p, err := v.GetMut(20)
	require.NoError(t, err)
	*p = -20
	require.Equal(t, -10, v.At(10))
	require.Equal(t, -20, v.At(20))
}

func TestRemoveInsertIdempotence(t *testing.T) {
	for _, cfg := range shapes {
		v := newTestVec(t, cfg)
		for x := range 300 {
			v.PushBack(x * 3)
		}
		want := contents(v)
		for i := 0; i < v.Len(); i += 7 {
			x, err := v.Remove(i)
			require.NoError(t, err)
			require.NoError(t, v.Insert(i, x))
			mustCheck(t, v)
		}
		require.Equal(t, want, contents(v))
	}
}

func TestPushPop(t *testing.T) {
	v := newTestVec(t, Config{Fanout: 3, LeafCap: 2})
	for x := range 40 {
		if x%2 == 0 {
			v.PushBack(x)
		} else {
			v.PushFront(x)
		}
		mustCheck(t, v)
	}
	first, _ := v.First()
	last, _ := v.Last()
	require.Equal(t, 39, first)
	require.Equal(t, 38, last)
	for v.Len() > 0 {
		_, ok := v.PopFront()
		require.True(t, ok)
		if v.Len() > 0 {
			_, ok = v.PopBack()
			require.True(t, ok)
		}
		mustCheck(t, v)
	}
	require.Equal(t, 0, v.Height())
}

func TestClear(t *testing.T) {
	v := newTestVec(t, Config{Fanout: 3, LeafCap: 3})
	for x := range 30 {
		v.PushBack(x)
	}
	require.NoError(t, v.Clear())
	mustCheck(t, v)
	require.Equal(t, 0, v.Len())
	v.PushBack(1)
	require.Equal(t, []int{1}, contents(v))
}

// TestRandomModel runs random insertions and removals against a slice.
func TestRandomModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bvec")
	defer teardown()

	rng := rand.New(rand.NewSource(123))
	for _, cfg := range shapes {
		v := newTestVec(t, cfg)
		var model []int
		for step := range 3000 {
			if len(model) == 0 || rng.Intn(3) > 0 {
				index := rng.Intn(len(model) + 1)
				model = slices.Insert(model, index, step)
				require.NoError(t, v.Insert(index, step))
			} else {
				index := rng.Intn(len(model))
				want := model[index]
				model = slices.Delete(model, index, index+1)
				got, err := v.Remove(index)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
			if step%97 == 0 {
				mustCheck(t, v)
			}
		}
		mustCheck(t, v)
		require.Equal(t, model, contents(v))

		// drain in random order
		for len(model) > 0 {
			index := rng.Intn(len(model))
			want := model[index]
			model = slices.Delete(model, index, index+1)
			got, err := v.Remove(index)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
		mustCheck(t, v)
		require.True(t, v.IsEmpty())
	}
}

func TestHeightStaysLogarithmic(t *testing.T) {
	v := newTestVec(t, Config{Fanout: 3, LeafCap: 2})
	for x := range 1 << 12 {
		v.PushBack(x)
	}
	// every internal node has at least 2 children, every leaf at least 1 element
	require.LessOrEqual(t, v.Height(), 13)
	mustCheck(t, v)
}

func FuzzVecAgainstSlice(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 200, 201, 5, 130})
	f.Add([]byte{255, 0, 255, 0, 128, 128, 1})
	f.Fuzz(func(t *testing.T, ops []byte) {
		v := newTestVec(t, Config{Fanout: 3, LeafCap: 3})
		var model []int
		for i, op := range ops {
			switch {
			case op < 128:
				index := int(op) % (len(model) + 1)
				model = slices.Insert(model, index, i)
				require.NoError(t, v.Insert(index, i))
			case len(model) > 0:
				index := int(op) % len(model)
				want := model[index]
				model = slices.Delete(model, index, index+1)
				got, err := v.Remove(index)
				require.NoError(t, err)
				require.Equal(t, want, got)
			default:
				_, err := v.Remove(0)
				require.True(t, errors.Is(err, ErrIndexOutOfBounds))
			}
			require.Equal(t, len(model), v.Len())
		}
		mustCheck(t, v)
		require.Equal(t, append([]int{}, model...), append([]int{}, contents(v)...))
	})
}
