// Foreign investment — outside nations buying into the domestic
// building stock. Mirrors the official AI's cooldown/budget/weighted
// shape but picks an operating mode alongside the building, and splits
// profit between local retention and repatriation.
package agents

import (
	"math"

	"github.com/talgya/dominion/internal/economy"
	"github.com/talgya/dominion/internal/registry"
)

// OperatingMode determines where a foreign-owned building sources
// inputs and sells outputs.
type OperatingMode string

const (
	// ModeLocal trades entirely on the host market.
	ModeLocal OperatingMode = "local"
	// ModeDumping ships inputs from home and sells locally.
	ModeDumping OperatingMode = "dumping"
	// ModeBuyback sources locally and ships outputs home.
	ModeBuyback OperatingMode = "buyback"
)

// TransportCostFactor inflates any flow that crosses the border.
const TransportCostFactor = 1.2

// Foreign investment pacing.
const (
	NationInvestmentCooldown = 120
	MinNationWealthToInvest  = 5000.0
	MaxNationInvestRatio     = 0.25
	ForeignCostMarkup        = 1.5
)

// Nation is a foreign power that can hold investments here.
type Nation struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Wealth float64 `json:"wealth"`
	Epoch  int     `json:"epoch"`

	// Relation to the host nation, -100..100. Investment requires a
	// friendly relation and shapes the negotiated tax rate.
	Relation float64 `json:"relation"`

	// Home market view; missing entries fall back to host baselines.
	Prices map[registry.Resource]float64 `json:"prices"`
	Wages  map[registry.Stratum]float64  `json:"wages"`

	RiskTolerance     float64 `json:"risk_tolerance"`
	LastInvestmentDay int     `json:"last_investment_day"`
}

// OperatingRecord is a foreign investment's per-tick operating data.
type OperatingRecord struct {
	Profit            float64 `json:"profit"`
	OutputValue       float64 `json:"output_value"`
	InputCost         float64 `json:"input_cost"`
	WageCost          float64 `json:"wage_cost"`
	RetainedProfit    float64 `json:"retained_profit"`
	RepatriatedProfit float64 `json:"repatriated_profit"`
	EffectiveTaxRate  float64 `json:"effective_tax_rate"`
}

// ForeignInvestment is one foreign-owned building instance.
type ForeignInvestment struct {
	ID          string          `json:"id"`
	OwnerNation string          `json:"owner_nation"`
	BuildingID  string          `json:"building_id"`
	Amount      float64         `json:"amount"` // silver invested
	Mode        OperatingMode   `json:"mode"`
	Operating   OperatingRecord `json:"operating"`
}

// ForeignAction is the staged result of a nation's investment pass.
type ForeignAction struct {
	NationID   string        `json:"nation_id"`
	BuildingID string        `json:"building_id"`
	Mode       OperatingMode `json:"mode"`
	Cost       float64       `json:"cost"`
	Profit     float64       `json:"profit"`
}

// homePrice resolves a resource price on the investor's home market,
// falling back to the host resolver's baseline.
func (n *Nation) homePrice(res registry.Resource, host *economy.Resolver) float64 {
	if p, ok := n.Prices[res]; ok && p > 0 {
		return p
	}
	return host.PriceOf(res)
}

// OverseasProfit evaluates a foreign-owned building under an operating
// mode. Cross-border flows pay the transport factor and the host's
// import/export tariffs; local flows pay the domestic transaction tax.
// Wages are always paid on the host market.
func OverseasProfit(n *Nation, buildingID string, cfg registry.EffectiveConfig, mode OperatingMode, host *economy.Resolver, policy *economy.TaxPolicy) OperatingRecord {
	var rec OperatingRecord

	inputHome := mode == ModeDumping
	outputHome := mode == ModeBuyback

	for res, amount := range cfg.Input {
		if inputHome {
			// Imported inputs: home price, transport, import tariff.
			rec.InputCost += amount * n.homePrice(res, host) * TransportCostFactor * policy.ImportTariff(res)
		} else {
			rec.InputCost += amount * economy.PurchasePrice(host.PriceOf(res), policy.ResourceTaxRate(res))
		}
	}
	for res, amount := range cfg.Output {
		if outputHome {
			// Exported outputs: home price net of transport, export tariff
			// scales what the host lets leave.
			rec.OutputValue += amount * n.homePrice(res, host) / TransportCostFactor * policy.ExportTariff(res)
		} else {
			rec.OutputValue += amount * economy.SalePrice(host.PriceOf(res), policy.ResourceTaxRate(res))
		}
	}
	for stratum, slots := range cfg.Jobs {
		rec.WageCost += slots * host.WageOf(stratum)
	}

	rec.Profit = rec.OutputValue - rec.InputCost - rec.WageCost
	rec.EffectiveTaxRate = NegotiatedTaxRate(n.Relation)
	rec.RetainedProfit, rec.RepatriatedProfit = RepatriationSplit(rec.Profit, rec.EffectiveTaxRate)
	return rec
}

// NegotiatedTaxRate derives the effective tax rate on repatriated
// profit from the diplomatic relation: hostile hosts keep up to 60%,
// close allies as little as 10%.
func NegotiatedTaxRate(relation float64) float64 {
	if relation < -100 {
		relation = -100
	}
	if relation > 100 {
		relation = 100
	}
	// relation -100 → 0.6, +100 → 0.1
	return 0.35 - relation*0.0025
}

// RepatriationSplit divides profit between the share kept in the host
// economy and the share sent home. The effective tax rate is the
// fraction forced to stay local. For non-positive profit both parts are
// zero — losses are not repatriated.
func RepatriationSplit(profit, effectiveTaxRate float64) (retained, repatriated float64) {
	if profit <= 0 {
		return 0, 0
	}
	rate := math.Min(1, math.Max(0, effectiveTaxRate))
	retained = profit * rate
	return retained, profit - retained
}

// ProcessNationInvestment runs one nation's investment pass for the
// day. The same gate ladder as the official AI (cooldown, wealth,
// stochastic trigger, budget), then a weighted draw over building+mode
// pairs scored by operating profit.
func ProcessNationInvestment(n *Nation, ctx *Context, policy *economy.TaxPolicy) *ForeignAction {
	if ctx.Day-n.LastInvestmentDay < NationInvestmentCooldown {
		return nil
	}
	if n.Wealth < MinNationWealthToInvest {
		return nil
	}
	if n.Relation <= 40 {
		return nil
	}

	risk := n.RiskTolerance
	if risk <= 0 {
		risk = 0.5
	}
	if ctx.Rand.Float() > risk*wealthDrive(n.Wealth/10) {
		return nil
	}

	budget := n.Wealth * MaxNationInvestRatio * risk

	type candidate struct {
		id     string
		mode   OperatingMode
		cost   float64
		profit float64
		weight float64
	}
	var candidates []candidate
	totalWeight := 0.0

	modes := []OperatingMode{ModeLocal, ModeDumping, ModeBuyback}
	for _, id := range ctx.Registry.BuildingIDs() {
		b := ctx.Registry.Building(id)
		if !investable(b, ctx) || b.Epoch > n.Epoch {
			continue
		}
		count := ctx.Stock.Count(id)
		if count < 1 {
			continue
		}

		scaled := economy.ConstructionCost(b.BaseCost, count, ctx.GrowthFactor)
		cost := economy.SilverCost(scaled, ctx.Resolver) * ForeignCostMarkup
		if cost > budget {
			continue
		}

		cfg := ctx.Registry.EffectiveConfig(id, 0)
		for _, mode := range modes {
			rec := OverseasProfit(n, id, cfg, mode, ctx.Resolver, policy)
			if rec.Profit <= 0 {
				continue
			}
			w := math.Max(0.01, rec.Profit)
			candidates = append(candidates, candidate{id: id, mode: mode, cost: cost, profit: rec.Profit, weight: w})
			totalWeight += w
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	pick := ctx.Rand.Float() * totalWeight
	for _, c := range candidates {
		pick -= c.weight
		if pick <= 0 {
			return &ForeignAction{NationID: n.ID, BuildingID: c.id, Mode: c.mode, Cost: c.cost, Profit: c.profit}
		}
	}
	last := candidates[len(candidates)-1]
	return &ForeignAction{NationID: n.ID, BuildingID: last.id, Mode: last.mode, Cost: last.cost, Profit: last.profit}
}
