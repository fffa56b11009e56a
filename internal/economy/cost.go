// Package economy provides the cost model, tax policy, market snapshot,
// and building profit evaluation.
package economy

import (
	"math"

	"github.com/talgya/dominion/internal/registry"
)

// DefaultGrowthFactor is the per-unit construction cost inflation used
// when no difficulty override applies.
const DefaultGrowthFactor = 1.15

// GrowthFactorForDifficulty maps a difficulty name to its cost growth
// factor. Unknown difficulties use the default.
func GrowthFactorForDifficulty(difficulty string) float64 {
	switch difficulty {
	case "easy":
		return 1.12
	case "hard":
		return 1.18
	default:
		return DefaultGrowthFactor
	}
}

// ConstructionCost returns the scaled cost of the next unit of a
// building type. instanceIndex is the count already owned before this
// purchase, so the first unit (index 0) costs the base amount and each
// further unit costs growthFactor times more than the last, rounded up
// per resource. Construction cost must keep rising per unit so that
// horizontal scaling has diminishing returns.
func ConstructionCost(base map[registry.Resource]float64, instanceIndex int, growthFactor float64) map[registry.Resource]float64 {
	if instanceIndex < 0 {
		instanceIndex = 0
	}
	mult := math.Pow(growthFactor, float64(instanceIndex))
	scaled := make(map[registry.Resource]float64, len(base))
	for res, amount := range base {
		scaled[res] = math.Ceil(amount * mult)
	}
	return scaled
}

// UpgradeCostMultiplier returns the concave scaling multiplier for the
// next upgrade when existingCount units already sit at or above the
// target level: 1 + (growthFactor−1)·existingCount^0.9.
//
// This is intentionally NOT the construction exponential. Upgrade cost
// must grow strictly slower than construction cost at the same count so
// that vertical scaling stays viable late-game. Changing either formula
// breaks that asymmetry.
func UpgradeCostMultiplier(existingCount int, growthFactor float64) float64 {
	if existingCount <= 0 {
		return 1
	}
	rate := growthFactor - 1
	return 1 + rate*math.Pow(float64(existingCount), 0.9)
}

// UpgradeCost scales a target level's base cost by the concave
// multiplier, rounded up per resource. existingCount is the number of
// instances already at or above the target level.
func UpgradeCost(base map[registry.Resource]float64, existingCount int, growthFactor float64) map[registry.Resource]float64 {
	if existingCount <= 0 {
		scaled := make(map[registry.Resource]float64, len(base))
		for res, amount := range base {
			scaled[res] = amount
		}
		return scaled
	}
	mult := UpgradeCostMultiplier(existingCount, growthFactor)
	scaled := make(map[registry.Resource]float64, len(base))
	for res, amount := range base {
		scaled[res] = math.Ceil(amount * mult)
	}
	return scaled
}

// SilverCost converts a resource cost mapping into its silver
// equivalent at current market prices. Silver passes through unpriced.
func SilverCost(cost map[registry.Resource]float64, res *Resolver) float64 {
	total := 0.0
	for r, amount := range cost {
		if r == registry.ResourceSilver {
			total += amount
			continue
		}
		total += res.PriceOf(r) * amount
	}
	return total
}
