// Building profit evaluation. The evaluator is injected into the
// investment agents; only its contract is fixed here — a richer market
// subsystem may substitute its own pricing behind the same interface.
package economy

import "github.com/talgya/dominion/internal/registry"

// ProfitResult breaks a building instance's daily profit into its parts.
type ProfitResult struct {
	Profit      float64
	OutputValue float64
	InputCost   float64
	WageCost    float64
	BusinessTax float64
}

// Evaluator computes per-instance profit for a resolved building profile.
type Evaluator interface {
	Profit(buildingID string, cfg registry.EffectiveConfig) ProfitResult
}

// MarketEvaluator is the reference evaluator:
//
//	profit = outputValue − inputCost − wageCost − businessTax
//	outputValue = Σ output[res]·price[res]·(1 − resourceTaxRate[res])
//	inputCost   = Σ input[res]·price[res]·(1 + resourceTaxRate[res])
//	wageCost    = Σ jobs[stratum]·wage[stratum]
//
// Tariffs never appear here: this is domestic trade only.
type MarketEvaluator struct {
	Resolver *Resolver
	Policy   *TaxPolicy
	Registry *registry.Registry
}

// NewMarketEvaluator wires the reference evaluator.
func NewMarketEvaluator(res *Resolver, policy *TaxPolicy, reg *registry.Registry) *MarketEvaluator {
	return &MarketEvaluator{Resolver: res, Policy: policy, Registry: reg}
}

// Profit evaluates one instance of a building at the given profile.
func (e *MarketEvaluator) Profit(buildingID string, cfg registry.EffectiveConfig) ProfitResult {
	var r ProfitResult

	for res, amount := range cfg.Output {
		price := e.Resolver.PriceOf(res)
		r.OutputValue += amount * SalePrice(price, e.Policy.ResourceTaxRate(res))
	}
	for res, amount := range cfg.Input {
		price := e.Resolver.PriceOf(res)
		r.InputCost += amount * PurchasePrice(price, e.Policy.ResourceTaxRate(res))
	}
	for stratum, slots := range cfg.Jobs {
		r.WageCost += slots * e.Resolver.WageOf(stratum)
	}

	if b := e.Registry.Building(buildingID); b != nil && b.BusinessTaxBase != 0 {
		r.BusinessTax = BusinessTax(b.BusinessTaxBase, e.Policy.BusinessTaxMultiplier(buildingID))
	}

	r.Profit = r.OutputValue - r.InputCost - r.WageCost - r.BusinessTax
	return r
}

// ProfitAtLevel resolves a building's profile at a level and evaluates it.
func ProfitAtLevel(e Evaluator, reg *registry.Registry, buildingID string, level int) ProfitResult {
	return e.Profit(buildingID, reg.EffectiveConfig(buildingID, level))
}
