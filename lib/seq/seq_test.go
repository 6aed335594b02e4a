package seq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/storozhukBM/figures/lib/seq"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	for _, s := range []*seq.Seq[int]{seq.New[int](), {}} {
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, 0, s.Cap())
		assert.True(t, s.IsEmpty())
		assert.Empty(t, s.Slice())
		assert.Equal(t, "seq{len: 0 cap: 0}", s.String())
	}
}

func TestPushAndIndex(t *testing.T) {
	t.Parallel()
	s := seq.New[int]()
	for i := 0; i < 10; i++ {
		s.Push(i)
	}
	require.Equal(t, 10, s.Len())
	require.False(t, s.IsEmpty())
	for i := 0; i < 10; i++ {
		v, err := s.Get(i)
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestGrowthLaw(t *testing.T) {
	t.Parallel()
	s := seq.New[int]()
	expectedCapacities := []int{1, 2, 4, 4, 8, 8, 8, 8, 16, 16, 16, 16, 16, 16, 16, 16, 32}
	for i, expectedCap := range expectedCapacities {
		s.Push(i)
		require.Equal(t, i+1, s.Len())
		require.Equal(t, expectedCap, s.Cap(), "capacity after %d pushes", i+1)
	}
	stats := s.Stats()
	require.Equal(t, 6, stats.Grows)
	require.Equal(t, 1+2+4+8+16, stats.Relocated)
	require.Equal(t, "{Len: 17 Cap: 32 Grows: 6 Relocated: 31}", stats.String())
}

func TestErase(t *testing.T) {
	t.Parallel()
	cases := []struct {
		idx      int
		expected []int
	}{
		{idx: 0, expected: []int{2, 3}},
		{idx: 1, expected: []int{1, 3}},
		{idx: 2, expected: []int{1, 2}},
	}
	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("idx_%d", c.idx), func(t *testing.T) {
			t.Parallel()
			s := seq.Of(1, 2, 3)
			require.NoError(t, s.Erase(c.idx))
			require.Equal(t, c.expected, s.Slice())
			require.Equal(t, 4, s.Cap(), "erase should never shrink capacity")
		})
	}
}

func TestOutOfRange(t *testing.T) {
	t.Parallel()
	s := seq.Of(1)
	before := s.Stats()

	_, getErr := s.Get(1)
	require.True(t, errors.Is(getErr, seq.OutOfRangeError), "unexpected error: %v", getErr)
	require.EqualError(t, getErr, "index out of range [1] with length 1")

	_, refErr := s.Ref(-1)
	require.ErrorIs(t, refErr, seq.OutOfRangeError)
	require.ErrorIs(t, s.Set(5, 42), seq.OutOfRangeError)
	require.ErrorIs(t, s.Erase(2), seq.OutOfRangeError)
	require.ErrorIs(t, s.Erase(1), seq.OutOfRangeError)

	require.Equal(t, before, s.Stats())
	require.Equal(t, []int{1}, s.Slice())

	_, emptyErr := seq.New[int]().Get(0)
	require.ErrorIs(t, emptyErr, seq.OutOfRangeError)
}

func TestRefAndSet(t *testing.T) {
	t.Parallel()
	s := seq.Of(1, 2, 3)
	ref, err := s.Ref(1)
	require.NoError(t, err)
	*ref = 20
	require.NoError(t, s.Set(2, 30))
	require.Equal(t, []int{1, 20, 30}, s.Slice())
}

func TestClear(t *testing.T) {
	t.Parallel()
	s := seq.Of(1, 2, 3)
	s.Clear()
	require.Equal(t, 0, s.Len())
	require.True(t, s.IsEmpty())
	require.Equal(t, 4, s.Cap())

	s.Push(7)
	require.Equal(t, []int{7}, s.Slice())
	require.Equal(t, 4, s.Cap(), "push after clear should reuse the storage")
}

func TestCopy(t *testing.T) {
	t.Parallel()
	original := seq.Of(1, 2, 3)

	copied := original.Clone()
	require.Equal(t, original.Len(), copied.Len())
	require.Equal(t, original.Cap(), copied.Cap(), "copy should preserve capacity")
	require.Equal(t, original.Slice(), copied.Slice())

	require.NoError(t, copied.Set(0, 100))
	copied.Push(4)
	require.NoError(t, original.Erase(2))
	require.Equal(t, []int{1, 2}, original.Slice())
	require.Equal(t, []int{100, 2, 3, 4}, copied.Slice())

	assigned := seq.Of(9, 9, 9, 9, 9)
	assigned.CopyFrom(original)
	require.Equal(t, []int{1, 2}, assigned.Slice())
	require.Equal(t, original.Cap(), assigned.Cap())

	assigned.CopyFrom(assigned)
	require.Equal(t, []int{1, 2}, assigned.Slice())
}

func TestCopySharesHandles(t *testing.T) {
	t.Parallel()
	type figure struct{ name string }
	original := seq.Of(&figure{"a"}, &figure{"b"})

	shallow := original.Clone()
	first, _ := shallow.Get(0)
	first.name = "changed"
	fromOriginal, _ := original.Get(0)
	require.Equal(t, "changed", fromOriginal.name, "clone duplicates handles, not targets")

	deep := original.CloneFunc(func(f *figure) *figure {
		c := *f
		return &c
	})
	second, _ := deep.Get(1)
	second.name = "deep"
	fromOriginal, _ = original.Get(1)
	require.Equal(t, "b", fromOriginal.name)
	require.Equal(t, original.Cap(), deep.Cap())
}

func TestMove(t *testing.T) {
	t.Parallel()
	source := seq.Of(1, 2)

	moved := source.Move()
	require.Equal(t, []int{1, 2}, moved.Slice())
	require.Equal(t, 0, source.Len())
	require.Equal(t, 0, source.Cap())

	target := seq.Of(5, 6, 7)
	target.MoveFrom(moved)
	require.Equal(t, []int{1, 2}, target.Slice())
	require.Equal(t, 2, target.Cap())
	require.Equal(t, 0, moved.Len())
	require.Equal(t, 0, moved.Cap())

	target.MoveFrom(target)
	require.Equal(t, []int{1, 2}, target.Slice())

	source.Push(3)
	require.Equal(t, []int{3}, source.Slice(), "moved-from seq should be reusable")
}

func TestAll(t *testing.T) {
	t.Parallel()
	s := seq.Of("a", "b", "c")
	var visited []string
	for i, v := range s.All() {
		require.Len(t, visited, i)
		visited = append(visited, v)
	}
	require.Equal(t, []string{"a", "b", "c"}, visited)

	count := 0
	for range s.All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestRandomizedOperations(t *testing.T) {
	t.Parallel()
	s := &seqCheckingStand{target: seq.New[int]()}
	for i := 0; i < 1000; i++ {
		if s.target.Len() > 0 && randomdata.Number(0, 3) == 0 {
			s.erase(t, randomdata.Number(0, s.target.Len()))
			continue
		}
		s.push(t, randomdata.Number(-1000, 1000))
	}
	s.target.Clear()
	s.model = nil
	s.check(t)
}

type seqCheckingStand struct {
	target *seq.Seq[int]
	model  []int
}

func (s *seqCheckingStand) push(t *testing.T, v int) {
	s.target.Push(v)
	s.model = append(s.model, v)
	s.check(t)
}

func (s *seqCheckingStand) erase(t *testing.T, idx int) {
	capBefore := s.target.Cap()
	require.NoError(t, s.target.Erase(idx))
	s.model = append(s.model[:idx], s.model[idx+1:]...)
	require.Equal(t, capBefore, s.target.Cap())
	s.check(t)
}

func (s *seqCheckingStand) check(t *testing.T) {
	require.Equal(t, len(s.model), s.target.Len())
	require.GreaterOrEqual(t, s.target.Cap(), s.target.Len())
	if len(s.model) == 0 {
		require.Empty(t, s.target.Slice())
		return
	}
	require.Equal(t, s.model, s.target.Slice())
}
