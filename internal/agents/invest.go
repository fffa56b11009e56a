// Official investment pass — gated, budgeted, weighted selection of a
// single new building, and deterministic ROI ranking for upgrades.
package agents

import (
	"math"

	"github.com/talgya/dominion/internal/economy"
	"github.com/talgya/dominion/internal/entropy"
	"github.com/talgya/dominion/internal/registry"
)

// StockView is the read-only view of the building stock the agents
// evaluate against.
type StockView interface {
	// Count returns the total constructed instances of a building type.
	Count(buildingID string) int
	// CountAtOrAbove returns instances already at or above a level.
	CountAtOrAbove(buildingID string, level int) int
}

// Context carries the immutable per-tick inputs for one evaluation pass.
type Context struct {
	Registry  *registry.Registry
	Evaluator economy.Evaluator
	Resolver  *economy.Resolver
	Stock     StockView

	GrowthFactor float64
	Epoch        int
	Techs        map[string]bool

	// LeftCabinet halves investment drive while a left-leaning faction
	// dominates the cabinet.
	LeftCabinet bool

	Day  int
	Rand entropy.Source
}

// InvestmentAction is the staged result of a successful investment
// pass: at most one per official per tick.
type InvestmentAction struct {
	OfficialID string  `json:"official_id"`
	BuildingID string  `json:"building_id"`
	Cost       float64 `json:"cost"`
	Profit     float64 `json:"profit"`
}

// UpgradeAction is the staged result of a successful upgrade pass.
type UpgradeAction struct {
	OfficialID    string  `json:"official_id"`
	PropertyIndex int     `json:"property_index"`
	BuildingID    string  `json:"building_id"`
	FromLevel     int     `json:"from_level"`
	ToLevel       int     `json:"to_level"`
	Cost          float64 `json:"cost"`
	ProfitGain    float64 `json:"profit_gain"`
}

// wealthDrive scales investment appetite with wealth, capped at 2.2.
func wealthDrive(wealth float64) float64 {
	ratio := math.Max(1, wealth/400)
	return math.Min(2.2, 1+math.Log10(ratio)*0.6)
}

// ProcessInvestment runs one official's investment pass for the day and
// returns the staged action, or nil for the defined no-action outcome.
//
// Gate order is fixed: stance, cooldown, wealth, stochastic trigger.
// The stance gate comes first — a stance with probability 0 never
// reaches candidate evaluation regardless of wealth or cooldowns.
func ProcessInvestment(o *Official, ctx *Context) *InvestmentAction {
	if ctx.Rand.Float() > InvestProbability(o.Stance) {
		return nil
	}
	if ctx.Day-o.Profile.LastInvestmentDay < InvestmentCooldown {
		return nil
	}
	if o.Wealth < MinWealthToInvest {
		return nil
	}

	factionMod := 1.0
	if ctx.LeftCabinet {
		factionMod = 0.5
	}
	drive := wealthDrive(o.Wealth)
	investChance := o.Profile.RiskTolerance * factionMod * drive
	if ctx.Rand.Float() > investChance {
		return nil
	}

	budget := o.Wealth * MaxInvestRatio * o.Profile.RiskTolerance * drive
	if budget <= 0 {
		return nil
	}

	type candidate struct {
		id     string
		cost   float64
		profit float64
		weight float64
	}
	var candidates []candidate
	totalWeight := 0.0

	for _, id := range ctx.Registry.BuildingIDs() {
		b := ctx.Registry.Building(id)
		if !investable(b, ctx) {
			continue
		}

		count := ctx.Stock.Count(id)
		if count < 1 {
			// Agents only follow where the nation has already built.
			continue
		}

		scaled := economy.ConstructionCost(b.BaseCost, count, ctx.GrowthFactor)
		cost := economy.SilverCost(scaled, ctx.Resolver)
		if cost > budget {
			continue
		}

		profit := ctx.Evaluator.Profit(id, ctx.Registry.EffectiveConfig(id, 0)).Profit
		if profit <= 0 {
			continue
		}

		pref := 1.0
		if o.Profile.PrefersCategory(b.Category) {
			pref = 2.0
		}
		w := math.Max(0.01, profit*pref)
		candidates = append(candidates, candidate{id: id, cost: cost, profit: profit, weight: w})
		totalWeight += w
	}

	if len(candidates) == 0 {
		return nil
	}

	// Weighted draw: walk the cumulative weights.
	pick := ctx.Rand.Float() * totalWeight
	for _, c := range candidates {
		pick -= c.weight
		if pick <= 0 {
			return &InvestmentAction{
				OfficialID: o.ID,
				BuildingID: c.id,
				Cost:       c.cost,
				Profit:     c.profit,
			}
		}
	}
	// Floating point residue: fall back to the last candidate.
	last := candidates[len(candidates)-1]
	return &InvestmentAction{OfficialID: o.ID, BuildingID: last.id, Cost: last.cost, Profit: last.profit}
}

// investable filters the registry down to buildings agents may buy:
// privately ownable, unlocked, and employing someone besides the owner
// working alone (no one-person subsistence plots).
func investable(b *registry.BuildingDefinition, ctx *Context) bool {
	if b == nil || b.Owner == "" || len(b.BaseCost) == 0 {
		return false
	}
	if b.Epoch > ctx.Epoch {
		return false
	}
	if b.RequiresTech != "" && !ctx.Techs[b.RequiresTech] {
		return false
	}
	for role, slots := range b.Jobs {
		if role != b.Owner || slots > 1 {
			return true
		}
	}
	return false
}

// ProcessUpgrade runs one official's upgrade pass. Candidate ranking is
// deterministic: every owned property below its maximum level is scored
// by ROI and the best affordable one wins — no weighting draw.
func ProcessUpgrade(o *Official, ctx *Context) *UpgradeAction {
	if len(o.Properties) == 0 {
		return nil
	}
	if ctx.Day-o.Profile.LastUpgradeDay < UpgradeCooldown {
		return nil
	}
	if o.Wealth < MinWealthToUpgrade {
		return nil
	}

	factionMod := 1.0
	if ctx.LeftCabinet {
		factionMod = 0.7
	}
	if ctx.Rand.Float() > o.Profile.RiskTolerance*factionMod {
		return nil
	}

	var best *UpgradeAction
	bestROI := 0.0

	for i, prop := range o.Properties {
		b := ctx.Registry.Building(prop.BuildingID)
		if b == nil {
			continue
		}
		next := prop.Level + 1
		if next > ctx.Registry.MaxUpgradeLevel(prop.BuildingID) {
			continue
		}

		up := ctx.Registry.UpgradeLevelConfig(prop.BuildingID, next)
		if up == nil || len(up.Cost) == 0 {
			continue
		}

		existing := ctx.Stock.CountAtOrAbove(prop.BuildingID, next)
		scaled := economy.UpgradeCost(up.Cost, existing, ctx.GrowthFactor)
		cost := economy.SilverCost(scaled, ctx.Resolver)
		if cost <= 0 || cost > o.Wealth*MaxUpgradeWealthShare {
			continue
		}

		current := ctx.Evaluator.Profit(prop.BuildingID, ctx.Registry.EffectiveConfig(prop.BuildingID, prop.Level)).Profit
		upgraded := ctx.Evaluator.Profit(prop.BuildingID, ctx.Registry.EffectiveConfig(prop.BuildingID, next)).Profit
		gain := upgraded - current
		if gain <= 0 {
			continue
		}

		roi := gain / cost
		if best == nil || roi > bestROI {
			bestROI = roi
			best = &UpgradeAction{
				OfficialID:    o.ID,
				PropertyIndex: i,
				BuildingID:    prop.BuildingID,
				FromLevel:     prop.Level,
				ToLevel:       next,
				Cost:          cost,
				ProfitGain:    gain,
			}
		}
	}
	return best
}
