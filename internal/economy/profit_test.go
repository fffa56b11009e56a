package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/dominion/internal/registry"
)

// Baseline brickworks numbers at registry prices: output 3 brick at 4,
// inputs 1 stone at 2 and 0.5 wood at 1.5, 3 workers at 1.4, business
// tax base 0.3.
func TestProfitContract(t *testing.T) {
	reg := registry.Default()
	eval := NewMarketEvaluator(NewResolver(nil, reg), NewTaxPolicy(), reg)

	r := eval.Profit("brickworks", reg.EffectiveConfig("brickworks", 0))
	assert.InDelta(t, 12.0, r.OutputValue, 1e-9)
	assert.InDelta(t, 2.75, r.InputCost, 1e-9)
	assert.InDelta(t, 4.2, r.WageCost, 1e-9)
	assert.InDelta(t, 0.3, r.BusinessTax, 1e-9)
	assert.InDelta(t, r.OutputValue-r.InputCost-r.WageCost-r.BusinessTax, r.Profit, 1e-9)
}

func TestProfitTransactionTaxAdjustsPrices(t *testing.T) {
	reg := registry.Default()
	policy := NewTaxPolicy()
	policy.ResourceTaxRates[registry.ResourceBrick] = 0.1
	policy.ResourceTaxRates[registry.ResourceStone] = 0.1
	eval := NewMarketEvaluator(NewResolver(nil, reg), policy, reg)

	// The seller nets less on outputs, the buyer pays more on inputs.
	r := eval.Profit("brickworks", reg.EffectiveConfig("brickworks", 0))
	assert.InDelta(t, 12.0*0.9, r.OutputValue, 1e-9)
	assert.InDelta(t, 2*1.1+0.75, r.InputCost, 1e-9)
}

func TestProfitIgnoresTariffs(t *testing.T) {
	reg := registry.Default()
	neutral := NewMarketEvaluator(NewResolver(nil, reg), NewTaxPolicy(), reg)
	base := neutral.Profit("brickworks", reg.EffectiveConfig("brickworks", 0))

	policy := NewTaxPolicy()
	policy.ImportTariffs[registry.ResourceStone] = 5
	policy.ExportTariffs[registry.ResourceBrick] = 0.1
	tariffed := NewMarketEvaluator(NewResolver(nil, reg), policy, reg)

	// Tariffs only touch cross-border flows; domestic profit is unchanged.
	assert.Equal(t, base, tariffed.Profit("brickworks", reg.EffectiveConfig("brickworks", 0)))
}

func TestProfitBusinessSubsidy(t *testing.T) {
	reg := registry.Default()
	policy := NewTaxPolicy()
	policy.ToggleBusinessTax("brickworks")
	eval := NewMarketEvaluator(NewResolver(nil, reg), policy, reg)

	r := eval.Profit("brickworks", reg.EffectiveConfig("brickworks", 0))
	assert.InDelta(t, -0.3, r.BusinessTax, 1e-9)
}

func TestProfitAtLevel(t *testing.T) {
	reg := registry.Default()
	eval := NewMarketEvaluator(NewResolver(nil, reg), NewTaxPolicy(), reg)

	base := ProfitAtLevel(eval, reg, "brickworks", 0)
	upgraded := ProfitAtLevel(eval, reg, "brickworks", 1)
	assert.Greater(t, upgraded.Profit, base.Profit)
}

func TestResolverPrecedence(t *testing.T) {
	reg := registry.Default()
	snap := &Snapshot{
		Prices: map[registry.Resource]float64{registry.ResourceWood: 2.5},
		Wages:  map[registry.Stratum]float64{registry.StratumPeasant: 1.3},
	}
	res := NewResolver(snap, reg)

	// Snapshot wins, registry baseline backs it up, floor last.
	assert.Equal(t, 2.5, res.PriceOf(registry.ResourceWood))
	assert.Equal(t, 2.0, res.PriceOf(registry.ResourceStone))
	assert.Equal(t, 1.3, res.WageOf(registry.StratumPeasant))
	assert.Equal(t, 1.2, res.WageOf(registry.StratumMiner))
	assert.Equal(t, DefaultWageFloor, res.WageOf(registry.Stratum("nomad")))

	// Silver is pinned to 1 no matter what the snapshot claims.
	snap.Prices[registry.ResourceSilver] = 9
	assert.Equal(t, 1.0, res.PriceOf(registry.ResourceSilver))
}

func TestSnapshotGeneratorDeterminism(t *testing.T) {
	reg := registry.Default()
	a := NewSnapshotGenerator(7, reg).At(120)
	b := NewSnapshotGenerator(7, reg).At(120)
	require.Equal(t, a, b)

	c := NewSnapshotGenerator(8, reg).At(120)
	assert.NotEqual(t, a.Prices, c.Prices)
}

func TestSnapshotGeneratorBounds(t *testing.T) {
	reg := registry.Default()
	gen := NewSnapshotGenerator(7, reg)

	for day := 1; day <= 400; day += 13 {
		snap := gen.At(day)
		for res, p := range snap.Prices {
			base := reg.BasePrice(res)
			assert.GreaterOrEqual(t, p, base*(1-gen.Volatility)-1e-9)
			assert.LessOrEqual(t, p, base*(1+gen.Volatility)+1e-9)
		}
		for _, w := range snap.Wages {
			assert.GreaterOrEqual(t, w, DefaultWageFloor)
		}
		// The currency never drifts.
		_, ok := snap.Prices[registry.ResourceSilver]
		assert.False(t, ok)
	}
}
