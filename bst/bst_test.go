package bst_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusplanner/avl"
	"github.com/katalvlaran/campusplanner/bst"
	"github.com/katalvlaran/campusplanner/building"
)

func TestEmpty(t *testing.T) {
	tr := bst.New()
	assert.Zero(t, tr.Height())
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.InOrder())
	_, ok := tr.Search(42)
	assert.False(t, ok)
}

func TestScenario(t *testing.T) {
	tr := bst.New()
	for _, id := range []int{50, 30, 70, 20, 40, 60, 80, 10} {
		require.True(t, tr.Insert(building.Building{ID: id}))
	}
	assert.Equal(t, 4, tr.Height())
	assert.Equal(t, 8, tr.Len())
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80}, building.IDs(tr.InOrder()))
}

func TestDuplicateIgnored(t *testing.T) {
	tr := bst.New()
	require.True(t, tr.Insert(building.Building{ID: 1, Name: "first"}))
	assert.False(t, tr.Insert(building.Building{ID: 1, Name: "second"}))
	b, ok := tr.Search(1)
	require.True(t, ok)
	assert.Equal(t, "first", b.Name)
	assert.Equal(t, 1, tr.Len())
}

func TestSortedInputDegenerates(t *testing.T) {
	const n = 200
	plain, balanced := bst.New(), avl.New()
	for id := 1; id <= n; id++ {
		plain.Insert(building.Building{ID: id})
		balanced.Insert(building.Building{ID: id})
	}
	assert.Equal(t, n, plain.Height())
	assert.Less(t, balanced.Height(), 10)
	assert.Equal(t, building.IDs(balanced.InOrder()), building.IDs(plain.InOrder()))
}

func TestRandomMatchesSortedUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tr := bst.New()
	seen := map[int]bool{}
	var want []int
	for i := 0; i < 500; i++ {
		id := rng.Intn(1000)
		assert.Equal(t, !seen[id], tr.Insert(building.Building{ID: id}))
		if !seen[id] {
			seen[id] = true
			want = append(want, id)
		}
	}
	slices.Sort(want)
	assert.Equal(t, want, building.IDs(tr.InOrder()))
	for _, id := range want {
		_, ok := tr.Search(id)
		assert.True(t, ok)
	}
}

func TestAllStopsEarly(t *testing.T) {
	tr := bst.New()
	for _, id := range []int{4, 2, 6, 1, 3} {
		tr.Insert(building.Building{ID: id})
	}
	var got []int
	for b := range tr.All() {
		got = append(got, b.ID)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}
