// National building stock — per-type instance counts and the upgrade
// level distribution. Level 0 is never stored; it is always the
// remainder after the upgraded instances.
package engine

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Stock tracks constructed buildings by type and upgrade level.
type Stock struct {
	counts map[string]int
	// levels[buildingID][level] = instances at exactly that level, for
	// levels >= 1 only.
	levels map[string]map[int]int
}

// NewStock creates an empty stock.
func NewStock() *Stock {
	return &Stock{
		counts: make(map[string]int),
		levels: make(map[string]map[int]int),
	}
}

// Count returns the total instances of a building type.
func (s *Stock) Count(buildingID string) int {
	return s.counts[buildingID]
}

// CountAtLevel returns instances at exactly a level. Level 0 is the
// derived remainder.
func (s *Stock) CountAtLevel(buildingID string, level int) int {
	if level <= 0 {
		return s.baseCount(buildingID)
	}
	return s.levels[buildingID][level]
}

// CountAtOrAbove returns instances at or above a level.
func (s *Stock) CountAtOrAbove(buildingID string, level int) int {
	if level <= 0 {
		return s.counts[buildingID]
	}
	n := 0
	for lvl, c := range s.levels[buildingID] {
		if lvl >= level {
			n += c
		}
	}
	return n
}

func (s *Stock) baseCount(buildingID string) int {
	n := s.counts[buildingID]
	for _, c := range s.levels[buildingID] {
		n -= c
	}
	if n < 0 {
		return 0
	}
	return n
}

// Distribution returns the level distribution including the derived
// level 0 remainder. The map is safe to mutate.
func (s *Stock) Distribution(buildingID string) map[int]int {
	dist := make(map[int]int, len(s.levels[buildingID])+1)
	for lvl, c := range s.levels[buildingID] {
		if c > 0 {
			dist[lvl] = c
		}
	}
	if base := s.baseCount(buildingID); base > 0 {
		dist[0] = base
	}
	return dist
}

// Add constructs n new instances at level 0.
func (s *Stock) Add(buildingID string, n int) {
	if n <= 0 {
		return
	}
	s.counts[buildingID] += n
}

// Promote moves one instance from a level to the next. Promoting from
// level 0 draws from the remainder; a missing source instance is a
// no-op so a stale staged action cannot corrupt the distribution.
func (s *Stock) Promote(buildingID string, fromLevel int) bool {
	if fromLevel < 0 {
		return false
	}
	if fromLevel == 0 {
		if s.baseCount(buildingID) < 1 {
			return false
		}
	} else {
		if s.levels[buildingID][fromLevel] < 1 {
			return false
		}
		s.levels[buildingID][fromLevel]--
	}
	if s.levels[buildingID] == nil {
		s.levels[buildingID] = make(map[int]int)
	}
	s.levels[buildingID][fromLevel+1]++
	return true
}

// BuildingIDs returns the ids present in the stock in sorted order.
func (s *Stock) BuildingIDs() []string {
	ids := maps.Keys(s.counts)
	slices.Sort(ids)
	return ids
}
