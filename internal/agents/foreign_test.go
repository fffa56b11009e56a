package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/dominion/internal/economy"
	"github.com/talgya/dominion/internal/registry"
)

func TestNegotiatedTaxRate(t *testing.T) {
	assert.InDelta(t, 0.6, NegotiatedTaxRate(-100), 1e-9)
	assert.InDelta(t, 0.35, NegotiatedTaxRate(0), 1e-9)
	assert.InDelta(t, 0.1, NegotiatedTaxRate(100), 1e-9)

	// Relations outside the scale clamp to the endpoints.
	assert.InDelta(t, 0.6, NegotiatedTaxRate(-250), 1e-9)
	assert.InDelta(t, 0.1, NegotiatedTaxRate(250), 1e-9)
}

func TestRepatriationSplit(t *testing.T) {
	retained, repatriated := RepatriationSplit(100, 0.35)
	assert.InDelta(t, 35.0, retained, 1e-9)
	assert.InDelta(t, 65.0, repatriated, 1e-9)

	// Losses stay with the investor.
	retained, repatriated = RepatriationSplit(-5, 0.35)
	assert.Equal(t, 0.0, retained)
	assert.Equal(t, 0.0, repatriated)

	retained, repatriated = RepatriationSplit(0, 0.35)
	assert.Equal(t, 0.0, retained)
	assert.Equal(t, 0.0, repatriated)

	// Broken rates clamp to the unit interval.
	retained, repatriated = RepatriationSplit(100, 2)
	assert.InDelta(t, 100.0, retained, 1e-9)
	assert.Equal(t, 0.0, repatriated)

	retained, repatriated = RepatriationSplit(100, -1)
	assert.Equal(t, 0.0, retained)
	assert.InDelta(t, 100.0, repatriated, 1e-9)
}

func TestOverseasProfitLocalMode(t *testing.T) {
	reg := registry.Default()
	host := economy.NewResolver(nil, reg)
	n := &Nation{ID: "velmark", Relation: 60}

	rec := OverseasProfit(n, "brickworks", reg.EffectiveConfig("brickworks", 0), ModeLocal, host, economy.NewTaxPolicy())

	// Local mode trades at host prices with no business tax levied; the
	// negotiated rate taxes repatriation instead.
	assert.InDelta(t, 12.0, rec.OutputValue, 1e-9)
	assert.InDelta(t, 2.75, rec.InputCost, 1e-9)
	assert.InDelta(t, 4.2, rec.WageCost, 1e-9)
	assert.InDelta(t, 5.05, rec.Profit, 1e-9)
	assert.InDelta(t, NegotiatedTaxRate(60), rec.EffectiveTaxRate, 1e-9)
	assert.InDelta(t, rec.Profit*rec.EffectiveTaxRate, rec.RetainedProfit, 1e-9)
	assert.InDelta(t, rec.Profit-rec.RetainedProfit, rec.RepatriatedProfit, 1e-9)
}

func TestOverseasProfitDumpingMode(t *testing.T) {
	reg := registry.Default()
	host := economy.NewResolver(nil, reg)
	n := &Nation{
		ID: "velmark",
		Prices: map[registry.Resource]float64{
			registry.ResourceStone: 1.0,
			registry.ResourceWood:  1.0,
		},
	}

	policy := economy.NewTaxPolicy()
	rec := OverseasProfit(n, "brickworks", reg.EffectiveConfig("brickworks", 0), ModeDumping, host, policy)

	// Inputs ship from home: cheap home prices times transport.
	assert.InDelta(t, (1.0+0.5)*1.0*TransportCostFactor, rec.InputCost, 1e-9)
	assert.InDelta(t, 12.0, rec.OutputValue, 1e-9)

	// An import tariff on stone lands only on the imported flow.
	policy.ImportTariffs[registry.ResourceStone] = 1.5
	tariffed := OverseasProfit(n, "brickworks", reg.EffectiveConfig("brickworks", 0), ModeDumping, host, policy)
	assert.InDelta(t, 1.0*1.2*1.5+0.5*1.2, tariffed.InputCost, 1e-9)
}

func TestOverseasProfitBuybackMode(t *testing.T) {
	reg := registry.Default()
	host := economy.NewResolver(nil, reg)
	n := &Nation{
		ID:     "velmark",
		Prices: map[registry.Resource]float64{registry.ResourceBrick: 6.0},
	}

	policy := economy.NewTaxPolicy()
	rec := OverseasProfit(n, "brickworks", reg.EffectiveConfig("brickworks", 0), ModeBuyback, host, policy)

	// Outputs ship home at the better home price, net of transport.
	assert.InDelta(t, 3.0*6.0/TransportCostFactor, rec.OutputValue, 1e-9)
	assert.InDelta(t, 2.75, rec.InputCost, 1e-9)

	policy.ExportTariffs[registry.ResourceBrick] = 0.8
	tariffed := OverseasProfit(n, "brickworks", reg.EffectiveConfig("brickworks", 0), ModeBuyback, host, policy)
	assert.InDelta(t, 3.0*6.0/1.2*0.8, tariffed.OutputValue, 1e-9)
}

func TestHomePriceFallsBackToHost(t *testing.T) {
	reg := registry.Default()
	host := economy.NewResolver(nil, reg)
	n := &Nation{ID: "velmark"}

	// No home market data: buyback degrades to host pricing over transport.
	rec := OverseasProfit(n, "brickworks", reg.EffectiveConfig("brickworks", 0), ModeBuyback, host, economy.NewTaxPolicy())
	assert.InDelta(t, 3.0*4.0/TransportCostFactor, rec.OutputValue, 1e-9)
}

func readyNation() *Nation {
	return &Nation{
		ID:                "velmark",
		Name:              "Velmark",
		Wealth:            50000,
		Epoch:             2,
		Relation:          80,
		RiskTolerance:     1.0,
		LastInvestmentDay: -1000,
	}
}

func TestNationInvestmentGates(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 2, "brickworks": 1}}
	policy := economy.NewTaxPolicy()

	cold := readyNation()
	cold.LastInvestmentDay = 950 // 50 days ago
	assert.Nil(t, ProcessNationInvestment(cold, testContext(3, stock), policy))

	poor := readyNation()
	poor.Wealth = MinNationWealthToInvest - 1
	assert.Nil(t, ProcessNationInvestment(poor, testContext(3, stock), policy))

	// Relation must strictly exceed the friendliness bar.
	wary := readyNation()
	wary.Relation = 40
	assert.Nil(t, ProcessNationInvestment(wary, testContext(3, stock), policy))
}

func TestNationInvestmentStagesAction(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 2, "brickworks": 1}}
	policy := economy.NewTaxPolicy()

	n := readyNation()
	a := ProcessNationInvestment(n, testContext(3, stock), policy)
	require.NotNil(t, a)

	assert.Equal(t, n.ID, a.NationID)
	assert.Contains(t, []string{"farm", "brickworks"}, a.BuildingID)
	assert.Contains(t, []OperatingMode{ModeLocal, ModeDumping, ModeBuyback}, a.Mode)
	assert.Greater(t, a.Profit, 0.0)

	// Foreigners pay the markup on top of the scaled construction cost.
	budget := n.Wealth * MaxNationInvestRatio * n.RiskTolerance
	assert.LessOrEqual(t, a.Cost, budget)
	switch a.BuildingID {
	case "farm":
		assert.InDelta(t, 16*1.5*ForeignCostMarkup, a.Cost, 1e-9)
	case "brickworks":
		assert.InDelta(t, (69*2+35*1.5)*ForeignCostMarkup, a.Cost, 1e-9)
	}
}

func TestNationInvestmentHonorsNationEpoch(t *testing.T) {
	stock := &fakeStock{counts: map[string]int{"farm": 2, "brickworks": 1}}
	policy := economy.NewTaxPolicy()

	// A backward nation cannot run a brickworks even if the host can.
	n := readyNation()
	n.Epoch = 1

	for seed := int64(0); seed < 20; seed++ {
		a := ProcessNationInvestment(n, testContext(seed, stock), policy)
		require.NotNil(t, a)
		assert.Equal(t, "farm", a.BuildingID)
	}
}
