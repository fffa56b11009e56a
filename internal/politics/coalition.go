// Coalition membership rules and sensitivity profiles.
package politics

import "github.com/talgya/dominion/internal/registry"

// Sensitivity is the behavioral profile a stratum carries depending on
// whether it sits in the ruling coalition. Coalition strata expect more
// and tolerate less.
type Sensitivity struct {
	TaxThreshold           float64 // tax burden share that triggers unrest
	IncomeMultiplier       float64 // income expectation vs subsistence
	BasicShortagePressure  float64
	LuxuryShortagePressure float64
}

// SensitivityFor returns the profile for coalition vs ordinary strata.
func SensitivityFor(coalitionMember bool) Sensitivity {
	if coalitionMember {
		return Sensitivity{
			TaxThreshold:           0.20,
			IncomeMultiplier:       1.50,
			BasicShortagePressure:  1.2,
			LuxuryShortagePressure: 0.5,
		}
	}
	return Sensitivity{
		TaxThreshold:           0.50,
		IncomeMultiplier:       1.08,
		BasicShortagePressure:  0.6,
		LuxuryShortagePressure: 0.2,
	}
}

// EligibleMembers filters the strata that may join a ruling coalition:
// politically voiceless strata and empty strata are excluded.
func EligibleMembers(reg *registry.Registry, population map[registry.Stratum]int) []registry.Stratum {
	var eligible []registry.Stratum
	for _, key := range reg.StratumKeys() {
		if key == registry.StratumUnemployed || key == registry.StratumSlave {
			continue
		}
		if population[key] <= 0 {
			continue
		}
		eligible = append(eligible, key)
	}
	return eligible
}

// InfluenceFromPopulation derives per-stratum influence from headcount
// and the registry's influence baselines.
func InfluenceFromPopulation(reg *registry.Registry, population map[registry.Stratum]int) map[registry.Stratum]float64 {
	influence := make(map[registry.Stratum]float64, len(population))
	for _, key := range reg.StratumKeys() {
		count := population[key]
		if count <= 0 {
			continue
		}
		def := reg.StratumDef(key)
		if def == nil || def.InfluenceBase <= 0 {
			continue
		}
		influence[key] = float64(count) * def.InfluenceBase
	}
	return influence
}
