// Package agents implements the autonomous investors: government
// officials and foreign nations. Decisions are pure functions over the
// day's market snapshot; wealth and ownership mutations are staged as
// action values and applied by the engine's commit step.
package agents

import (
	"github.com/talgya/dominion/internal/entropy"
	"github.com/talgya/dominion/internal/registry"
)

// Investment pacing constants, in simulation days.
const (
	InvestmentCooldown = 90
	UpgradeCooldown    = 60

	MinWealthToInvest  = 500.0
	MinWealthToUpgrade = 200.0

	// MaxInvestRatio caps the share of wealth an official commits to a
	// single new investment.
	MaxInvestRatio = 0.4

	// MaxUpgradeWealthShare caps a single upgrade at half of wealth.
	MaxUpgradeWealthShare = 0.5
)

// Property is one building instance an official owns.
type Property struct {
	BuildingID string `json:"building_id"`
	Level      int    `json:"level"`
}

// InvestmentProfile holds an official's investment temperament and the
// cooldown bookkeeping for both action kinds.
type InvestmentProfile struct {
	PreferredCategories []registry.Category `json:"preferred_categories"`
	RiskTolerance       float64             `json:"risk_tolerance"`
	InvestmentThreshold float64             `json:"investment_threshold"`
	LastInvestmentDay   int                 `json:"last_investment_day"`
	LastUpgradeDay      int                 `json:"last_upgrade_day"`
}

// Official is a cabinet member who can privately invest.
type Official struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Stratum registry.Stratum `json:"stratum"` // stratum of origin
	Stance  string           `json:"stance"`  // political stance id

	Wealth float64 `json:"wealth"`
	Salary float64 `json:"salary"` // daily income, used by financial status

	Profile    InvestmentProfile `json:"profile"`
	Properties []Property        `json:"properties"`
}

// stratumPrefs maps each stratum of origin to its investment leanings.
var stratumPrefs = map[registry.Stratum]struct {
	cats []registry.Category
	risk float64
}{
	registry.StratumLandowner:  {cats: []registry.Category{registry.CategoryGather}, risk: 0.4},
	registry.StratumMerchant:   {cats: []registry.Category{registry.CategoryCivic, registry.CategoryIndustry}, risk: 0.7},
	registry.StratumCapitalist: {cats: []registry.Category{registry.CategoryIndustry, registry.CategoryGather}, risk: 0.8},
	registry.StratumScribe:     {cats: []registry.Category{registry.CategoryCivic}, risk: 0.3},
	registry.StratumCleric:     {cats: []registry.Category{registry.CategoryCivic}, risk: 0.3},
	registry.StratumPeasant:    {cats: []registry.Category{registry.CategoryGather}, risk: 0.4},
	registry.StratumWorker:     {cats: []registry.Category{registry.CategoryIndustry}, risk: 0.5},
	registry.StratumArtisan:    {cats: []registry.Category{registry.CategoryIndustry}, risk: 0.5},
	registry.StratumEngineer:   {cats: []registry.Category{registry.CategoryIndustry}, risk: 0.6},
	registry.StratumNavigator:  {cats: []registry.Category{registry.CategoryCivic, registry.CategoryGather}, risk: 0.6},
}

// GenerateProfile builds an investment profile from the official's
// stratum of origin and political stance. Left-leaning stances shed
// industry holdings; right-leaning ones acquire a taste for them.
// Cooldowns start half-elapsed so fresh officials don't all act on the
// same day.
func GenerateProfile(stratum registry.Stratum, stanceID string, currentDay int, rng entropy.Source) InvestmentProfile {
	base, ok := stratumPrefs[stratum]
	if !ok {
		base.cats = []registry.Category{registry.CategoryGather}
		base.risk = 0.5
	}

	cats := append([]registry.Category(nil), base.cats...)
	switch SpectrumOf(stanceID) {
	case SpectrumLeft:
		cats = removeCategory(cats, registry.CategoryIndustry)
		cats = appendMissing(cats, registry.CategoryGather)
	case SpectrumRight:
		cats = appendMissing(cats, registry.CategoryIndustry)
	}

	return InvestmentProfile{
		PreferredCategories: cats,
		RiskTolerance:       base.risk * (0.8 + rng.Float()*0.4),
		InvestmentThreshold: 0.2 + rng.Float()*0.3,
		LastInvestmentDay:   currentDay - InvestmentCooldown/2,
		LastUpgradeDay:      currentDay - UpgradeCooldown/2,
	}
}

func removeCategory(cats []registry.Category, drop registry.Category) []registry.Category {
	out := cats[:0]
	for _, c := range cats {
		if c != drop {
			out = append(out, c)
		}
	}
	return out
}

func appendMissing(cats []registry.Category, add registry.Category) []registry.Category {
	for _, c := range cats {
		if c == add {
			return cats
		}
	}
	return append(cats, add)
}

// PrefersCategory reports whether a category is in the preferred set.
func (p *InvestmentProfile) PrefersCategory(cat registry.Category) bool {
	for _, c := range p.PreferredCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// FinancialStatus classifies an official's personal finances.
type FinancialStatus string

const (
	StatusSatisfied     FinancialStatus = "satisfied"
	StatusUncomfortable FinancialStatus = "uncomfortable"
	StatusStruggling    FinancialStatus = "struggling"
	StatusDesperate     FinancialStatus = "desperate"
)

// StatusEffect captures how financial strain degrades an official's
// work: an effect multiplier on their administration and a daily
// corruption probability.
type StatusEffect struct {
	EffectMult float64
	Corruption float64
}

var statusEffects = map[FinancialStatus]StatusEffect{
	StatusSatisfied:     {EffectMult: 1.0, Corruption: 0},
	StatusUncomfortable: {EffectMult: 0.9, Corruption: 0.01},
	StatusStruggling:    {EffectMult: 0.7, Corruption: 0.03},
	StatusDesperate:     {EffectMult: 0.3, Corruption: 0.1},
}

// EffectOf returns the degradation profile for a status.
func EffectOf(status FinancialStatus) StatusEffect {
	return statusEffects[status]
}

// FinancialStatusOf classifies an official against their daily expense.
// Wealth below 10 days of expenses is desperate; income under 80% of
// expenses is struggling; wealth under 60 days is merely uncomfortable.
func FinancialStatusOf(o *Official, dailyExpense float64) FinancialStatus {
	expense := dailyExpense
	if expense < 1 {
		expense = 1
	}
	if o.Wealth < expense*10 {
		return StatusDesperate
	}
	if o.Salary/expense < 0.8 {
		return StatusStruggling
	}
	if o.Wealth < expense*60 {
		return StatusUncomfortable
	}
	return StatusSatisfied
}
