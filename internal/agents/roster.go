// Roster generation — creates the initial cabinet of officials with
// names, strata of origin, stances, and investment profiles.
package agents

import (
	"github.com/google/uuid"

	"github.com/talgya/dominion/internal/entropy"
	"github.com/talgya/dominion/internal/registry"
)

// RosterConfig controls initial cabinet generation.
type RosterConfig struct {
	Count      int
	CurrentDay int

	// Stances the current government makes available; empty means the
	// whole stance table.
	AllowedStances []string
}

// officialStrata are the strata officials can come from, weighted.
// Landed and mercantile elites dominate early cabinets.
var officialStrata = []struct {
	stratum registry.Stratum
	weight  float64
}{
	{registry.StratumLandowner, 0.30},
	{registry.StratumMerchant, 0.20},
	{registry.StratumScribe, 0.15},
	{registry.StratumCleric, 0.15},
	{registry.StratumCapitalist, 0.10},
	{registry.StratumEngineer, 0.05},
	{registry.StratumArtisan, 0.05},
}

// GenerateRoster creates a cabinet of officials. Wealth is seeded from
// the stratum's baseline so landowners start richer than scribes.
func GenerateRoster(cfg RosterConfig, reg *registry.Registry, rng entropy.Source) []*Official {
	count := cfg.Count
	if count <= 0 {
		count = 6
	}
	stanceIDs := cfg.AllowedStances
	if len(stanceIDs) == 0 {
		stanceIDs = StanceIDs()
	}

	officials := make([]*Official, 0, count)
	for i := 0; i < count; i++ {
		stratum := drawStratum(rng)
		stance := stanceIDs[rng.Intn(len(stanceIDs))]

		wealth := startingWealth(stratum, reg, rng)
		o := &Official{
			ID:      uuid.NewString(),
			Name:    generateName(rng),
			Stratum: stratum,
			Stance:  stance,
			Wealth:  wealth,
			Salary:  reg.WageBase(stratum) * 3,
			Profile: GenerateProfile(stratum, stance, cfg.CurrentDay, rng),
		}
		officials = append(officials, o)
	}
	return officials
}

func drawStratum(rng entropy.Source) registry.Stratum {
	total := 0.0
	for _, s := range officialStrata {
		total += s.weight
	}
	pick := rng.Float() * total
	for _, s := range officialStrata {
		pick -= s.weight
		if pick <= 0 {
			return s.stratum
		}
	}
	return officialStrata[len(officialStrata)-1].stratum
}

// startingWealth scales with the stratum's wage baseline: roughly one
// to three years of income, jittered.
func startingWealth(stratum registry.Stratum, reg *registry.Registry, rng entropy.Source) float64 {
	base := reg.WageBase(stratum) * 360
	return base * (1 + rng.Float()*2)
}

func generateName(rng entropy.Source) string {
	first := givenNames[rng.Intn(len(givenNames))]
	last := familyNames[rng.Intn(len(familyNames))]
	return first + " " + last
}

// Name pools for procedural generation.
var givenNames = []string{
	"Aldric", "Brenna", "Cedric", "Daria", "Erik", "Freya", "Gareth",
	"Helene", "Ivan", "Juno", "Kael", "Lena", "Magnus", "Nessa",
	"Oswin", "Petra", "Quinn", "Runa", "Stellan", "Thea", "Ulric",
	"Vera", "Wren", "Yara", "Zander", "Astrid", "Beric", "Calla",
	"Dorian", "Eira", "Falk", "Gwen", "Hugo", "Inga", "Jorik",
}

var familyNames = []string{
	"Voss", "Thornwood", "Blackwood", "Ashford", "Ironhand", "Dunmore",
	"Greenvale", "Stormcrow", "Frostborn", "Hearthstone", "Millward",
	"Copperfield", "Ravenmoor", "Silverdale", "Stoneheart", "Deepwell",
	"Brightwater", "Redforge", "Windholm", "Marshwood", "Goldhaven",
	"Riverstone", "Steelworth", "Holloway", "Dawnridge", "Farrow",
	"Thatcher", "Caldwell", "Frost", "Harper", "Mercer", "Ward",
}
