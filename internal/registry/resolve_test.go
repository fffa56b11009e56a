package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveConfigBase(t *testing.T) {
	reg := Default()

	cfg := reg.EffectiveConfig("farm", 0)
	assert.Equal(t, "Farm", cfg.Name)
	assert.Equal(t, 3.2, cfg.Output[ResourceFood])
	assert.Equal(t, StratumPeasant, cfg.Owner)

	// Negative levels resolve to the base profile too.
	assert.Equal(t, cfg, reg.EffectiveConfig("farm", -3))
}

func TestEffectiveConfigOverrideFallback(t *testing.T) {
	reg := Default()

	cfg := reg.EffectiveConfig("farm", 1)
	assert.Equal(t, "Irrigated Fields", cfg.Name)
	assert.Equal(t, 5.2, cfg.Output[ResourceFood])
	assert.Equal(t, 3.0, cfg.Jobs[StratumPeasant])
	assert.Equal(t, 0.08, cfg.Input[ResourceTools])

	// The upgrade table omits Owner, so it falls back to the base.
	assert.Equal(t, StratumPeasant, cfg.Owner)
}

func TestEffectiveConfigPastTable(t *testing.T) {
	reg := Default()

	base := reg.EffectiveConfig("farm", 0)
	assert.Equal(t, base, reg.EffectiveConfig("farm", 99))

	// No upgrade table at all.
	plot := reg.EffectiveConfig("subsistence_plot", 2)
	assert.Equal(t, "Subsistence Plot", plot.Name)
}

func TestEffectiveConfigUnknownBuilding(t *testing.T) {
	reg := Default()
	assert.Equal(t, EffectiveConfig{}, reg.EffectiveConfig("cathedral", 0))
}

func TestAggregateStockRemainder(t *testing.T) {
	reg := Default()

	// 5 farms: 2 at level 1, 1 at level 2, remainder 2 at level 0.
	agg := reg.AggregateStock("farm", 5, map[int]int{1: 2, 2: 1})
	require.Equal(t, 5, agg.Count)

	assert.InDelta(t, 2*3.2+2*5.2+1*7.2, agg.Output[ResourceFood], 1e-9)
	assert.InDelta(t, 2*2+2*3+1*4, agg.Jobs[StratumPeasant], 1e-9)
}

func TestAggregateStockIgnoresExplicitLevelZero(t *testing.T) {
	reg := Default()

	agg := reg.AggregateStock("farm", 2, map[int]int{0: 99, 1: 1})
	assert.InDelta(t, 5.2+3.2, agg.Output[ResourceFood], 1e-9)
}

func TestAggregateStockClampsOverflow(t *testing.T) {
	reg := Default()

	// More upgraded instances claimed than exist: clamp, no remainder.
	agg := reg.AggregateStock("farm", 3, map[int]int{1: 5})
	assert.InDelta(t, 3*5.2, agg.Output[ResourceFood], 1e-9)
}

func TestAggregateStockEmpty(t *testing.T) {
	reg := Default()

	agg := reg.AggregateStock("farm", 0, map[int]int{1: 2})
	assert.Equal(t, 0, agg.Count)
	assert.Empty(t, agg.Output)
}

func TestPerInstanceAverage(t *testing.T) {
	reg := Default()

	agg := reg.AggregateStock("farm", 4, map[int]int{1: 2})
	avg := agg.PerInstanceAverage()
	assert.Equal(t, 1, avg.Count)
	assert.InDelta(t, (2*5.2+2*3.2)/4, avg.Output[ResourceFood], 1e-9)
}

func TestLayeredLookupDefaults(t *testing.T) {
	reg := Default()

	// Silver is always priced 1; unknown resources fall back to 1.
	assert.Equal(t, 1.0, reg.BasePrice(ResourceSilver))
	assert.Equal(t, 1.0, reg.BasePrice(Resource("obsidian")))

	// Unknown strata fall back to the head-tax floor.
	assert.Equal(t, 0.01, reg.HeadTaxBase(Stratum("nomad")))
}

func TestBuildingIDsStable(t *testing.T) {
	reg := Default()
	ids := reg.BuildingIDs()
	require.NotEmpty(t, ids)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}
