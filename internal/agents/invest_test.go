package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/dominion/internal/economy"
	"github.com/talgya/dominion/internal/entropy"
	"github.com/talgya/dominion/internal/registry"
)

// fakeStock is a map-backed StockView for agent tests.
type fakeStock struct {
	counts map[string]int
	levels map[string]map[int]int
}

func (f *fakeStock) Count(id string) int { return f.counts[id] }

func (f *fakeStock) CountAtOrAbove(id string, level int) int {
	total := 0
	for l, n := range f.levels[id] {
		if l >= level {
			total += n
		}
	}
	return total
}

func testContext(seed int64, stock *fakeStock) *Context {
	reg := registry.Default()
	res := economy.NewResolver(nil, reg)
	return &Context{
		Registry:     reg,
		Evaluator:    economy.NewMarketEvaluator(res, economy.NewTaxPolicy(), reg),
		Resolver:     res,
		Stock:        stock,
		GrowthFactor: economy.DefaultGrowthFactor,
		Epoch:        2,
		Techs:        map[string]bool{"kilns": true},
		Day:          1000,
		Rand:         entropy.NewSeeded(seed),
	}
}

func readyOfficial(stance string, wealth float64) *Official {
	return &Official{
		ID:     "o-1",
		Name:   "Aldric Voss",
		Stance: stance,
		Wealth: wealth,
		Profile: InvestmentProfile{
			PreferredCategories: []registry.Category{registry.CategoryIndustry},
			RiskTolerance:       0.8,
			LastInvestmentDay:   -1000,
			LastUpgradeDay:      -1000,
		},
	}
}

func TestStanceTable(t *testing.T) {
	assert.Equal(t, 0.0, InvestProbability("marxism"))
	assert.Equal(t, 1.0, InvestProbability("classical_liberalism"))
	assert.Equal(t, DefaultInvestProbability, InvestProbability("futurism"))

	assert.Equal(t, SpectrumLeft, SpectrumOf("marxism"))
	assert.Equal(t, SpectrumRight, SpectrumOf("feudalism"))
	assert.Equal(t, SpectrumCenter, SpectrumOf("futurism"))
}

func TestMarxistNeverInvests(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 2, "brickworks": 1}}
	o := readyOfficial("marxism", 1e6)

	ctx := testContext(3, stock)
	for i := 0; i < 200; i++ {
		assert.Nil(t, ProcessInvestment(o, ctx))
	}
}

func TestInvestmentWealthGate(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 2}}
	o := readyOfficial("classical_liberalism", MinWealthToInvest-1)

	ctx := testContext(3, stock)
	for i := 0; i < 50; i++ {
		assert.Nil(t, ProcessInvestment(o, ctx))
	}
}

func TestInvestmentCooldownGate(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 2}}
	o := readyOfficial("classical_liberalism", 1e5)
	o.Profile.LastInvestmentDay = 990 // 10 days ago

	ctx := testContext(3, stock)
	for i := 0; i < 50; i++ {
		assert.Nil(t, ProcessInvestment(o, ctx))
	}
}

func TestInvestmentRespectsBudget(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 2, "brickworks": 1}}

	fired := 0
	for seed := int64(0); seed < 100; seed++ {
		ctx := testContext(seed, stock)
		o := readyOfficial("classical_liberalism", 2000)

		a := ProcessInvestment(o, ctx)
		if a == nil {
			continue
		}
		fired++

		budget := o.Wealth * MaxInvestRatio * o.Profile.RiskTolerance * wealthDrive(o.Wealth)
		assert.LessOrEqual(t, a.Cost, budget+1e-9)
		assert.Greater(t, a.Profit, 0.0)
		assert.Equal(t, o.ID, a.OfficialID)
		assert.Contains(t, []string{"farm", "brickworks"}, a.BuildingID)
	}
	// Risk 0.8 and a liberal stance should fire on a healthy share of days.
	assert.Greater(t, fired, 20)
}

func TestStanceGateConvergence(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 2}}
	ctx := testContext(7, stock)

	// Risk 1.0 caps the wealth drive above 1, so every other gate stays
	// open and the firing rate converges on the stance probability.
	o := readyOfficial("republicanism", 1e5)
	o.Profile.RiskTolerance = 1.0

	const trials = 10000
	fired := 0
	for i := 0; i < trials; i++ {
		if ProcessInvestment(o, ctx) != nil {
			fired++
		}
	}
	assert.InDelta(t, 0.6, float64(fired)/trials, 0.02)
}

func TestLeftCabinetDampensInvestment(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 2}}
	const trials = 10000

	rate := func(left bool) float64 {
		ctx := testContext(11, stock)
		ctx.LeftCabinet = left
		o := readyOfficial("classical_liberalism", 500)
		o.Profile.RiskTolerance = 0.5

		fired := 0
		for i := 0; i < trials; i++ {
			if ProcessInvestment(o, ctx) != nil {
				fired++
			}
		}
		return float64(fired) / trials
	}

	// A left cabinet halves the stochastic trigger chance.
	drive := wealthDrive(500)
	assert.InDelta(t, 0.5*drive, rate(false), 0.03)
	assert.InDelta(t, 0.5*0.5*drive, rate(true), 0.03)
}

func TestLeftCabinetDampensUpgrades(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 3}}
	const trials = 10000

	rate := func(left bool) float64 {
		ctx := testContext(13, stock)
		ctx.LeftCabinet = left
		o := readyOfficial("classical_liberalism", 1300)
		o.Profile.RiskTolerance = 0.5
		o.Properties = []Property{{BuildingID: "farm", Level: 0}}

		fired := 0
		for i := 0; i < trials; i++ {
			if ProcessUpgrade(o, ctx) != nil {
				fired++
			}
		}
		return float64(fired) / trials
	}

	// Upgrades are dampened more gently: 0.7 against 0.5 for new builds.
	assert.InDelta(t, 0.5, rate(false), 0.03)
	assert.InDelta(t, 0.5*0.7, rate(true), 0.03)
}

func TestInvestableRequiresHiredLabor(t *testing.T) {
	ctx := testContext(3, &fakeStock{})
	reg := ctx.Registry

	// Owner-run enterprises with hired hands qualify, including those
	// whose hires share the owner's stratum; one-person subsistence
	// does not.
	assert.True(t, investable(reg.Building("farm"), ctx))
	assert.True(t, investable(reg.Building("brickworks"), ctx))
	assert.False(t, investable(reg.Building("subsistence_plot"), ctx))
}

func TestInvestmentSkipsUnbuiltAndLockedBuildings(t *testing.T) {
	// No brickworks in the stock and no kilns tech: nothing to buy even
	// though farms are profitable on paper.
	stock := &fakeStock{counts: map[string]int{"subsistence_plot": 50}}

	ctx := testContext(3, stock)
	ctx.Techs = map[string]bool{}
	o := readyOfficial("classical_liberalism", 1e5)

	for i := 0; i < 50; i++ {
		assert.Nil(t, ProcessInvestment(o, ctx))
	}
}

func TestUpgradePicksBestROI(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 3, "brickworks": 2}}
	ctx := testContext(3, stock)

	o := readyOfficial("classical_liberalism", 1300)
	o.Profile.RiskTolerance = 1.0
	o.Properties = []Property{
		{BuildingID: "farm", Level: 0},
		{BuildingID: "brickworks", Level: 0},
	}

	// The kiln upgrade costs more but returns far more per silver spent.
	farmGain := upgradeGain(ctx, "farm", 0)
	brickGain := upgradeGain(ctx, "brickworks", 0)
	require.Greater(t, brickGain/640, farmGain/455)

	a := ProcessUpgrade(o, ctx)
	require.NotNil(t, a)
	assert.Equal(t, "brickworks", a.BuildingID)
	assert.Equal(t, 1, a.PropertyIndex)
	assert.Equal(t, 0, a.FromLevel)
	assert.Equal(t, 1, a.ToLevel)
	assert.InDelta(t, 640.0, a.Cost, 1e-9)
	assert.InDelta(t, brickGain, a.ProfitGain, 1e-9)
}

func TestUpgradeHonorsWealthShareCap(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 3, "brickworks": 2}}
	ctx := testContext(3, stock)

	// Half of 1000 cannot cover the 640 kiln, so the farm upgrade wins
	// despite its weaker return.
	o := readyOfficial("classical_liberalism", 1000)
	o.Profile.RiskTolerance = 1.0
	o.Properties = []Property{
		{BuildingID: "farm", Level: 0},
		{BuildingID: "brickworks", Level: 0},
	}

	a := ProcessUpgrade(o, ctx)
	require.NotNil(t, a)
	assert.Equal(t, "farm", a.BuildingID)
	assert.InDelta(t, 455.0, a.Cost, 1e-9)
}

func TestUpgradeNoPropertiesNoAction(t *testing.T) {
	ctx := testContext(3, &fakeStock{counts: map[string]int{}})
	o := readyOfficial("classical_liberalism", 1e5)
	o.Profile.RiskTolerance = 1.0

	assert.Nil(t, ProcessUpgrade(o, ctx))
}

func TestUpgradeScalesWithExistingUpgrades(t *testing.T) {
	stock := &fakeStock{
		counts: map[string]int{"brickworks": 5},
		levels: map[string]map[int]int{"brickworks": {1: 3}},
	}
	ctx := testContext(3, stock)

	o := readyOfficial("classical_liberalism", 5000)
	o.Profile.RiskTolerance = 1.0
	o.Properties = []Property{{BuildingID: "brickworks", Level: 0}}

	a := ProcessUpgrade(o, ctx)
	require.NotNil(t, a)
	assert.Greater(t, a.Cost, 640.0)
}

func upgradeGain(ctx *Context, id string, level int) float64 {
	current := ctx.Evaluator.Profit(id, ctx.Registry.EffectiveConfig(id, level)).Profit
	next := ctx.Evaluator.Profit(id, ctx.Registry.EffectiveConfig(id, level+1)).Profit
	return next - current
}

func TestGenerateProfileSpectrumShiftsCategories(t *testing.T) {
	rng := entropy.NewSeeded(9)

	left := GenerateProfile(registry.StratumCapitalist, "marxism", 100, rng)
	assert.False(t, left.PrefersCategory(registry.CategoryIndustry))
	assert.True(t, left.PrefersCategory(registry.CategoryGather))

	right := GenerateProfile(registry.StratumScribe, "colonialism", 100, rng)
	assert.True(t, right.PrefersCategory(registry.CategoryIndustry))
	assert.True(t, right.PrefersCategory(registry.CategoryCivic))
}

func TestGenerateProfileCooldownsStartHalfElapsed(t *testing.T) {
	rng := entropy.NewSeeded(9)
	p := GenerateProfile(registry.StratumMerchant, "mercantilism", 200, rng)

	assert.Equal(t, 200-InvestmentCooldown/2, p.LastInvestmentDay)
	assert.Equal(t, 200-UpgradeCooldown/2, p.LastUpgradeDay)
	assert.GreaterOrEqual(t, p.RiskTolerance, 0.7*0.8)
	assert.LessOrEqual(t, p.RiskTolerance, 0.7*1.2)
}

func TestFinancialStatus(t *testing.T) {
	o := &Official{Wealth: 50, Salary: 10}
	assert.Equal(t, StatusDesperate, FinancialStatusOf(o, 10))

	o = &Official{Wealth: 5000, Salary: 7}
	assert.Equal(t, StatusStruggling, FinancialStatusOf(o, 10))

	o = &Official{Wealth: 500, Salary: 10}
	assert.Equal(t, StatusUncomfortable, FinancialStatusOf(o, 10))

	o = &Official{Wealth: 1000, Salary: 10}
	assert.Equal(t, StatusSatisfied, FinancialStatusOf(o, 10))

	assert.Equal(t, 1.0, EffectOf(StatusSatisfied).EffectMult)
	assert.Equal(t, 0.1, EffectOf(StatusDesperate).Corruption)
}
