// Snapshot generation — smooth daily price and wage drift driven by
// simplex noise, so a run is self-contained without the full market
// subsystem. Deterministic for a given seed.
package economy

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/dominion/internal/registry"
)

// SnapshotGenerator produces per-day market snapshots around the
// registry's baseline prices and wages.
type SnapshotGenerator struct {
	reg        *registry.Registry
	priceNoise opensimplex.Noise
	wageNoise  opensimplex.Noise

	// Volatility is the maximum relative deviation from baseline
	// (0.25 = prices wander within ±25%).
	Volatility float64

	// TimeScale stretches the noise field across days; larger values
	// drift slower.
	TimeScale float64
}

// NewSnapshotGenerator creates a deterministic generator for a seed.
func NewSnapshotGenerator(seed int64, reg *registry.Registry) *SnapshotGenerator {
	return &SnapshotGenerator{
		reg:        reg,
		priceNoise: opensimplex.NewNormalized(seed),
		wageNoise:  opensimplex.NewNormalized(seed + 1),
		Volatility: 0.25,
		TimeScale:  45,
	}
}

// At generates the snapshot for a simulation day.
func (g *SnapshotGenerator) At(day int) *Snapshot {
	snap := &Snapshot{
		Day:    day,
		Prices: map[registry.Resource]float64{},
		Wages:  map[registry.Stratum]float64{},
		Supply: map[registry.Resource]float64{},
		Demand: map[registry.Resource]float64{},
	}

	t := float64(day) / g.TimeScale
	for i, res := range g.reg.ResourceKeys() {
		if res == registry.ResourceSilver {
			continue
		}
		base := g.reg.BasePrice(res)
		// NewNormalized yields [0,1); recenter to [-1,1).
		n := g.priceNoise.Eval2(t, float64(i)*7.13)*2 - 1
		snap.Prices[res] = base * (1 + g.Volatility*n)

		// Supply/demand shown relative to a unit flow; purely
		// informational for display consumers.
		snap.Supply[res] = 1 + 0.5*g.priceNoise.Eval2(t+100, float64(i)*3.7)
		snap.Demand[res] = 1 + 0.5*g.priceNoise.Eval2(t+200, float64(i)*3.7)
	}

	for i, s := range g.reg.StratumKeys() {
		base := g.reg.WageBase(s)
		if base <= 0 {
			continue
		}
		n := g.wageNoise.Eval2(t, float64(i)*5.31)*2 - 1
		w := base * (1 + 0.5*g.Volatility*n)
		if w < DefaultWageFloor {
			w = DefaultWageFloor
		}
		snap.Wages[s] = w
	}
	return snap
}
