// Simulation ties the registry, market, politics, and agent systems
// together and advances them one day at a time.
package engine

import (
	"log/slog"

	"github.com/talgya/dominion/internal/agents"
	"github.com/talgya/dominion/internal/economy"
	"github.com/talgya/dominion/internal/entropy"
	"github.com/talgya/dominion/internal/politics"
	"github.com/talgya/dominion/internal/registry"
)

// Simulation holds the complete nation state and wires systems together.
type Simulation struct {
	Registry *registry.Registry
	Policy   *economy.TaxPolicy

	Coalition  *politics.State
	Population map[registry.Stratum]int

	// Officials keep their roster order; processing order never depends
	// on map iteration.
	Officials []*agents.Official
	Nations   []*agents.Nation
	Foreign   []*agents.ForeignInvestment

	Stock *Stock

	Day          int
	Epoch        int
	Techs        map[string]bool
	GrowthFactor float64
	Treasury     float64

	// Latest derived state, refreshed every day before agents act.
	Snapshot  *economy.Snapshot
	Modifiers politics.Modifiers

	Events []Event

	gen  *economy.SnapshotGenerator
	rand entropy.Source
}

// Event is a notable occurrence in the nation.
type Event struct {
	Day         int    `json:"day"`
	Description string `json:"description"`
	Category    string `json:"category"` // "economy", "politics", "diplomacy"
}

// Config bundles the inputs for a new simulation.
type Config struct {
	Registry     *registry.Registry
	Seed         int64
	Epoch        int
	GrowthFactor float64
	Officials    int
}

// NewSimulation builds a nation with a generated cabinet, a baseline
// population, and an empty treasury.
func NewSimulation(cfg Config) *Simulation {
	reg := cfg.Registry
	if reg == nil {
		reg = registry.Default()
	}
	gf := cfg.GrowthFactor
	if gf <= 0 {
		gf = economy.DefaultGrowthFactor
	}

	rng := entropy.NewSeeded(cfg.Seed)
	population := defaultPopulation()

	sim := &Simulation{
		Registry:     reg,
		Policy:       economy.NewTaxPolicy(),
		Population:   population,
		Stock:        NewStock(),
		Epoch:        cfg.Epoch,
		Techs:        make(map[string]bool),
		GrowthFactor: gf,
		gen:          economy.NewSnapshotGenerator(cfg.Seed, reg),
		rand:         rng,
	}

	sim.Coalition = &politics.State{
		Members:   []registry.Stratum{registry.StratumLandowner, registry.StratumCleric},
		Influence: politics.InfluenceFromPopulation(reg, population),
		Approval:  map[registry.Stratum]float64{},
	}

	sim.Officials = agents.GenerateRoster(agents.RosterConfig{
		Count:      cfg.Officials,
		CurrentDay: 0,
	}, reg, rng)

	sim.Nations = defaultNations(rng)
	sim.seedStock()
	return sim
}

// defaultNations seeds the neighboring powers that may invest here.
func defaultNations(rng entropy.Source) []*agents.Nation {
	templates := []struct {
		id, name string
		wealth   float64
		epoch    int
		relation float64
	}{
		{"velmark", "Kingdom of Velmark", 12000, 2, 55},
		{"ostrava", "Ostrava League", 8000, 2, 30},
		{"caldris", "Caldris Empire", 20000, 3, -10},
	}

	nations := make([]*agents.Nation, 0, len(templates))
	for _, t := range templates {
		nations = append(nations, &agents.Nation{
			ID:            t.id,
			Name:          t.name,
			Wealth:        t.wealth * (0.8 + rng.Float()*0.4),
			Epoch:         t.epoch,
			Relation:      t.relation,
			RiskTolerance: 0.3 + rng.Float()*0.4,
		})
	}
	return nations
}

// defaultPopulation is a small early-epoch nation.
func defaultPopulation() map[registry.Stratum]int {
	return map[registry.Stratum]int{
		registry.StratumPeasant:   4000,
		registry.StratumWorker:    800,
		registry.StratumArtisan:   300,
		registry.StratumMerchant:  150,
		registry.StratumLandowner: 60,
		registry.StratumCleric:    80,
		registry.StratumScribe:    40,
	}
}

// seedStock places the founding buildings so agents have something to
// follow; private investment requires at least one existing instance.
func (s *Simulation) seedStock() {
	for _, id := range s.Registry.BuildingIDs() {
		b := s.Registry.Building(id)
		if b.Epoch > s.Epoch {
			continue
		}
		switch b.Category {
		case registry.CategoryGather:
			s.Stock.Add(id, 3)
		case registry.CategoryCivic:
			s.Stock.Add(id, 1)
		}
	}
}

func (s *Simulation) recordEvent(category, description string) {
	s.Events = append(s.Events, Event{Day: s.Day, Description: description, Category: category})
}

func (s *Simulation) nationByID(id string) *agents.Nation {
	for _, n := range s.Nations {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// leftCabinet reports whether left-spectrum officials hold the majority.
func (s *Simulation) leftCabinet() bool {
	left := 0
	for _, o := range s.Officials {
		if agents.SpectrumOf(o.Stance) == agents.SpectrumLeft {
			left++
		}
	}
	return left*2 > len(s.Officials)
}

// RunDay advances the simulation one day: derive the market and
// legitimacy state, let every agent stage decisions against it, commit
// the batch, then settle foreign operations and taxes.
func (s *Simulation) RunDay() {
	s.Day++

	s.Snapshot = s.gen.At(s.Day)
	resolver := economy.NewResolver(s.Snapshot, s.Registry)
	evaluator := economy.NewMarketEvaluator(resolver, s.Policy, s.Registry)

	s.Coalition.Influence = politics.InfluenceFromPopulation(s.Registry, s.Population)
	s.Modifiers = s.Coalition.Derive(s.Registry.StratumKeys())
	s.driftApproval()

	ctx := &agents.Context{
		Registry:     s.Registry,
		Evaluator:    evaluator,
		Resolver:     resolver,
		Stock:        s.Stock,
		GrowthFactor: s.GrowthFactor,
		Epoch:        s.Epoch,
		Techs:        s.Techs,
		LeftCabinet:  s.leftCabinet(),
		Day:          s.Day,
		Rand:         s.rand,
	}

	batch := &ActionBatch{}
	for _, o := range s.Officials {
		batch.StageInvestment(o, agents.ProcessInvestment(o, ctx))
		batch.StageUpgrade(o, agents.ProcessUpgrade(o, ctx))
	}
	for _, n := range s.Nations {
		batch.StageForeign(agents.ProcessNationInvestment(n, ctx, s.Policy))
	}
	s.Commit(batch)

	tariffs := s.settleForeign(resolver)
	s.collectTaxes(evaluator, tariffs)
	s.payWagesAndProfits(evaluator)

	if s.Day%30 == 0 {
		slog.Info("month closed",
			"day", s.Day,
			"treasury", s.Treasury,
			"legitimacy", s.Modifiers.Legitimacy,
			"level", s.Modifiers.Level,
			"events", len(s.Events))
	}
}

// driftApproval moves every stratum's approval toward its daily target.
// An illegitimate government drags the target down by the approval
// penalty.
func (s *Simulation) driftApproval() {
	target := 50.0 + s.Modifiers.ApprovalPenalty
	for _, key := range s.Registry.StratumKeys() {
		if s.Population[key] <= 0 {
			continue
		}
		cur, ok := s.Coalition.Approval[key]
		if !ok {
			cur = 50
		}
		cur += (target - cur) * 0.02
		if cur < 0 {
			cur = 0
		}
		if cur > 100 {
			cur = 100
		}
		s.Coalition.Approval[key] = cur
	}
}

// settleForeign refreshes every foreign investment's operating record,
// credits repatriated profit to the owner and retained profit to the
// treasury, and returns the day's tariff revenue.
func (s *Simulation) settleForeign(resolver *economy.Resolver) float64 {
	tariffs := 0.0
	for _, fi := range s.Foreign {
		n := s.nationByID(fi.OwnerNation)
		if n == nil {
			continue
		}
		level := 0
		cfg := s.Registry.EffectiveConfig(fi.BuildingID, level)
		fi.Operating = agents.OverseasProfit(n, fi.BuildingID, cfg, fi.Mode, resolver, s.Policy)

		n.Wealth += fi.Operating.RepatriatedProfit
		s.Treasury += fi.Operating.RetainedProfit

		tariffs += s.tariffRevenue(fi, cfg, n, resolver)
	}
	return tariffs
}

// tariffRevenue is the treasury's cut of one investment's cross-border
// flows: the portion of each flow's value above (or below, for a
// subsidy) the untaxed baseline.
func (s *Simulation) tariffRevenue(fi *agents.ForeignInvestment, cfg registry.EffectiveConfig, n *agents.Nation, resolver *economy.Resolver) float64 {
	rev := 0.0
	switch fi.Mode {
	case agents.ModeDumping:
		for res, amount := range cfg.Input {
			base := amount * resolver.PriceOf(res) * agents.TransportCostFactor
			rev += base * (s.Policy.ImportTariff(res) - 1)
		}
	case agents.ModeBuyback:
		for res, amount := range cfg.Output {
			base := amount * resolver.PriceOf(res) / agents.TransportCostFactor
			rev += base * (1 - s.Policy.ExportTariff(res))
		}
	}
	return rev
}

// collectTaxes gathers the day's head, transaction, business, and
// tariff revenue and applies the legitimacy efficiency.
func (s *Simulation) collectTaxes(evaluator *economy.MarketEvaluator, tariffs float64) {
	var b economy.TaxBreakdown

	for _, key := range s.Registry.StratumKeys() {
		count := s.Population[key]
		if count <= 0 {
			continue
		}
		due := economy.HeadTaxDue(count, s.Registry.HeadTaxBase(key), s.Policy.HeadTaxRate(key))
		if due >= 0 {
			b.HeadTax += due
		} else {
			b.Subsidy += -due
		}
	}

	for _, id := range s.Stock.BuildingIDs() {
		def := s.Registry.Building(id)
		if def == nil {
			continue
		}
		for level, count := range s.Stock.Distribution(id) {
			if count <= 0 {
				continue
			}
			cfg := s.Registry.EffectiveConfig(id, level)

			if def.BusinessTaxBase != 0 {
				tax := economy.BusinessTax(def.BusinessTaxBase, s.Policy.BusinessTaxMultiplier(id)) * float64(count)
				if tax >= 0 {
					b.BusinessTax += tax
				} else {
					b.Subsidy += -tax
				}
			}

			for res, amount := range cfg.Output {
				rate := s.Policy.ResourceTaxRate(res)
				take := amount * evaluator.Resolver.PriceOf(res) * rate * float64(count)
				if take >= 0 {
					b.TransactionTax += take
				} else {
					b.Subsidy += -take
				}
			}
		}
	}

	if tariffs >= 0 {
		b.Tariff = tariffs
	} else {
		b.Subsidy += -tariffs
	}

	collected := economy.Collect(b, s.Modifiers.TaxEfficiency)
	s.Treasury += collected.Total
}

// payWagesAndProfits pays salaries and credits each official their
// properties' operating profit for the day.
func (s *Simulation) payWagesAndProfits(evaluator *economy.MarketEvaluator) {
	for _, o := range s.Officials {
		o.Wealth += o.Salary
		for _, prop := range o.Properties {
			cfg := s.Registry.EffectiveConfig(prop.BuildingID, prop.Level)
			r := evaluator.Profit(prop.BuildingID, cfg)
			o.Wealth += r.Profit
		}
		if o.Wealth < 0 {
			o.Wealth = 0
		}
	}
}
