// Market snapshot — the per-tick immutable view of prices and wages,
// plus the layered-default resolver every consumer goes through.
package economy

import "github.com/talgya/dominion/internal/registry"

// DefaultWageFloor is paid for any stratum missing from the snapshot.
const DefaultWageFloor = 0.5

// Snapshot is the market state for one simulation day. It is produced
// upstream (or by the generator in this package) and treated as
// read-only by every consumer.
type Snapshot struct {
	Day    int
	Prices map[registry.Resource]float64
	Wages  map[registry.Stratum]float64

	// Supply and Demand carry the per-resource flow breakdown for
	// display; they do not feed the profit formulas.
	Supply map[registry.Resource]float64
	Demand map[registry.Resource]float64
}

// Resolver answers price and wage lookups with a single documented
// precedence order:
//
//	price: snapshot price → registry base price → 1
//	wage:  snapshot wage  → registry wage base  → wage floor
//
// Silver always resolves to price 1. There is no error path — every
// lookup returns a definite value.
type Resolver struct {
	snap      *Snapshot
	reg       *registry.Registry
	wageFloor float64
}

// NewResolver builds a resolver over a snapshot. A nil snapshot is
// valid and resolves everything from registry baselines.
func NewResolver(snap *Snapshot, reg *registry.Registry) *Resolver {
	return &Resolver{snap: snap, reg: reg, wageFloor: DefaultWageFloor}
}

// WithWageFloor overrides the configured minimum wage.
func (r *Resolver) WithWageFloor(floor float64) *Resolver {
	r.wageFloor = floor
	return r
}

// PriceOf resolves a resource price.
func (r *Resolver) PriceOf(res registry.Resource) float64 {
	if res == registry.ResourceSilver {
		return 1
	}
	if r.snap != nil {
		if p, ok := r.snap.Prices[res]; ok && p > 0 {
			return p
		}
	}
	if r.reg != nil {
		return r.reg.BasePrice(res)
	}
	return 1
}

// WageOf resolves a stratum wage.
func (r *Resolver) WageOf(s registry.Stratum) float64 {
	if r.snap != nil {
		if w, ok := r.snap.Wages[s]; ok && w > 0 {
			return w
		}
	}
	if r.reg != nil {
		if w := r.reg.WageBase(s); w > 0 {
			return w
		}
	}
	return r.wageFloor
}

// Registry exposes the registry handle for consumers that resolve
// building profiles alongside prices.
func (r *Resolver) Registry() *registry.Registry {
	return r.reg
}
