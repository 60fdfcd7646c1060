package sparsemap_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/sparsemap"
)

func panicErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New("non-error panic")
		}
	}()
	f()

	return nil
}

type point struct{ x, y int }

func hashPoint(p point) uint64 {
	return sparsemap.Mix64(uint64(uint32(p.x))<<32 | uint64(uint32(p.y)))
}

func TestMap_InsertGetReplace(t *testing.T) {
	t.Parallel()

	m := sparsemap.New[string, int](sparsemap.HashString)
	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("a", 10)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 10, m.Get("a"))
	assert.Equal(t, 2, m.Get("b"))
	assert.True(t, m.ContainsKey("b"))
	assert.False(t, m.ContainsKey("c"))

	v, ok := m.Lookup("c")
	assert.False(t, ok)
	assert.Zero(t, v)
}

// TestMap_ThousandCoordinates inserts 1 000 distinct coordinates starting
// from the default capacity of 4, crossing many grow-rehashes.
func TestMap_ThousandCoordinates(t *testing.T) {
	t.Parallel()

	m := sparsemap.New[point, int](hashPoint)
	require.Equal(t, sparsemap.DefaultCapacity, m.Capacity())

	for i := 0; i < 1000; i++ {
		m.Insert(point{i % 40, i / 40}, i)
	}
	require.Equal(t, 1000, m.Len())
	assert.GreaterOrEqual(t, m.Capacity(), 1000)

	for i := 0; i < 1000; i++ {
		p := point{i % 40, i / 40}
		require.True(t, m.ContainsKey(p), "missing %v", p)
		assert.Equal(t, i, m.Get(p))
	}
}

// TestMap_RoundTripAgainstBuiltin interleaves inserts and removes across
// grow and shrink resizes and compares the final contents with a Go map.
func TestMap_RoundTripAgainstBuiltin(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	m := sparsemap.New[int, int](sparsemap.HashInt[int])
	ref := make(map[int]int)
	removed := make(map[int]bool)

	for step := 0; step < 20000; step++ {
		k := rng.Intn(3000)
		// Bias toward inserts in the first half, removes in the second,
		// so the table both grows and shrinks.
		insert := rng.Float64() < 0.7
		if step > 10000 {
			insert = rng.Float64() < 0.25
		}

		if insert {
			m.Insert(k, step)
			ref[k] = step
			delete(removed, k)
			continue
		}
		if _, ok := ref[k]; ok {
			assert.Equal(t, ref[k], m.Remove(k))
			delete(ref, k)
			removed[k] = true
		} else {
			assert.False(t, m.ContainsKey(k))
		}
	}

	require.Equal(t, len(ref), m.Len())
	for k, v := range ref {
		assert.Equal(t, v, m.Get(k))
	}
	for k := range removed {
		assert.False(t, m.ContainsKey(k), "removed key %d still present", k)
	}
}

func TestMap_ShrinkPreservesPairs(t *testing.T) {
	t.Parallel()

	m := sparsemap.New[int, string](sparsemap.HashInt[int])
	for i := 0; i < 512; i++ {
		m.Insert(i, "v")
	}
	grown := m.Capacity()
	for i := 0; i < 500; i++ {
		m.Remove(i)
	}
	assert.Less(t, m.Capacity(), grown)
	assert.GreaterOrEqual(t, m.Capacity(), sparsemap.DefaultMinCapacity)
	for i := 500; i < 512; i++ {
		assert.True(t, m.ContainsKey(i))
	}
	assert.Equal(t, 12, m.Len())
}

func TestMap_ContractViolations(t *testing.T) {
	t.Parallel()

	m := sparsemap.New[int, int](sparsemap.HashInt[int])
	m.Insert(1, 1)

	assert.ErrorIs(t, panicErr(func() { m.Get(2) }), sparsemap.ErrNotFound)
	assert.ErrorIs(t, panicErr(func() { m.Remove(2) }), sparsemap.ErrNotFound)
	assert.Equal(t, 1, m.Len())
}

func TestMap_Clear(t *testing.T) {
	t.Parallel()

	m := sparsemap.New[int, int](sparsemap.HashInt[int], sparsemap.WithCapacity(8))
	for i := 0; i < 100; i++ {
		m.Insert(i, i)
	}
	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 8, m.Capacity())
	assert.False(t, m.ContainsKey(5))
}

func TestIterator_VisitsEveryPairOnce(t *testing.T) {
	t.Parallel()

	m := sparsemap.New[point, int](hashPoint)
	for x := 0; x < 30; x++ {
		for y := 0; y < 7; y++ {
			m.Insert(point{x, y}, x*100+y)
		}
	}

	seen := make(map[point]int)
	it := m.Begin()
	for it.Next() {
		_, dup := seen[it.Key()]
		require.False(t, dup, "duplicate key %v", it.Key())
		seen[it.Key()] = it.Value()
	}
	assert.Len(t, seen, m.Len())
	assert.Equal(t, m.Len(), it.Visited())
	assert.False(t, it.HasNext())
	for p, v := range seen {
		assert.Equal(t, p.x*100+p.y, v)
	}
}

func TestIterator_EmptyMap(t *testing.T) {
	t.Parallel()

	m := sparsemap.New[int, int](sparsemap.HashInt[int])
	it := m.Begin()
	assert.False(t, it.HasNext())
	assert.False(t, it.Next())
	assert.ErrorIs(t, panicErr(func() { it.Key() }), sparsemap.ErrIteratorExhausted)
}

func TestIterator_ModificationDetected(t *testing.T) {
	t.Parallel()

	m := sparsemap.New[int, int](sparsemap.HashInt[int])
	m.Insert(1, 1)
	m.Insert(2, 2)

	it := m.Begin()
	require.True(t, it.Next())
	m.Insert(3, 3)

	assert.ErrorIs(t, panicErr(func() { it.Next() }), sparsemap.ErrConcurrentModification)
	assert.ErrorIs(t, panicErr(func() { it.Value() }), sparsemap.ErrConcurrentModification)
}

func TestAll_EarlyBreak(t *testing.T) {
	t.Parallel()

	m := sparsemap.New[int, int](sparsemap.HashInt[int])
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}
	n := 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Keys())
}
