package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockAddAndCount(t *testing.T) {
	s := NewStock()
	s.Add("farm", 3)
	s.Add("farm", 2)
	s.Add("quarry", 1)

	assert.Equal(t, 5, s.Count("farm"))
	assert.Equal(t, 1, s.Count("quarry"))
	assert.Equal(t, 0, s.Count("brickworks"))

	// Non-positive adds are ignored.
	s.Add("farm", 0)
	s.Add("farm", -4)
	assert.Equal(t, 5, s.Count("farm"))
}

func TestStockLevelZeroIsDerived(t *testing.T) {
	s := NewStock()
	s.Add("farm", 5)

	require.True(t, s.Promote("farm", 0))
	require.True(t, s.Promote("farm", 0))
	require.True(t, s.Promote("farm", 1))

	// 5 total: one at level 2, one at level 1, remainder 3 at level 0.
	assert.Equal(t, 3, s.CountAtLevel("farm", 0))
	assert.Equal(t, 1, s.CountAtLevel("farm", 1))
	assert.Equal(t, 1, s.CountAtLevel("farm", 2))
	assert.Equal(t, 5, s.Count("farm"))

	assert.Equal(t, map[int]int{0: 3, 1: 1, 2: 1}, s.Distribution("farm"))
}

func TestStockPromoteRequiresSource(t *testing.T) {
	s := NewStock()

	// Nothing built at all.
	assert.False(t, s.Promote("farm", 0))

	s.Add("farm", 1)
	assert.False(t, s.Promote("farm", 1)) // nothing at level 1 yet
	assert.True(t, s.Promote("farm", 0))

	// The only instance now sits at level 1; the remainder is empty.
	assert.False(t, s.Promote("farm", 0))
	assert.Equal(t, 0, s.CountAtLevel("farm", 0))
	assert.Equal(t, 1, s.CountAtLevel("farm", 1))
}

func TestStockCountAtOrAbove(t *testing.T) {
	s := NewStock()
	s.Add("farm", 4)
	s.Promote("farm", 0)
	s.Promote("farm", 0)
	s.Promote("farm", 1)

	assert.Equal(t, 4, s.CountAtOrAbove("farm", 0))
	assert.Equal(t, 2, s.CountAtOrAbove("farm", 1))
	assert.Equal(t, 1, s.CountAtOrAbove("farm", 2))
	assert.Equal(t, 0, s.CountAtOrAbove("farm", 3))
}

func TestStockDistributionIsACopy(t *testing.T) {
	s := NewStock()
	s.Add("farm", 2)

	dist := s.Distribution("farm")
	dist[0] = 99
	assert.Equal(t, 2, s.CountAtLevel("farm", 0))
}

func TestStockBuildingIDsSorted(t *testing.T) {
	s := NewStock()
	s.Add("quarry", 1)
	s.Add("farm", 1)
	s.Add("lumber_camp", 1)

	assert.Equal(t, []string{"farm", "lumber_camp", "quarry"}, s.BuildingIDs())
}
