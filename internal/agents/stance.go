// Political stances and their fixed investment probabilities. The
// stance gate is a hard behavioral filter evaluated before anything
// else in the investment pass, not a weighting factor.
package agents

import "sort"

// Spectrum places a stance on the left/center/right axis.
type Spectrum uint8

const (
	SpectrumLeft Spectrum = iota
	SpectrumCenter
	SpectrumRight
)

// Stance describes one political stance an official may hold.
type Stance struct {
	ID       string
	Name     string
	Spectrum Spectrum

	// InvestProbability gates private investment entirely: an official
	// only proceeds to candidate evaluation when a random draw falls
	// under this value.
	InvestProbability float64
}

// DefaultInvestProbability applies to stances missing from the table
// and to officials with no stance at all.
const DefaultInvestProbability = 0.5

var stances = map[string]Stance{
	"primitive_communism":    {ID: "primitive_communism", Name: "Primitive Communism", Spectrum: SpectrumLeft, InvestProbability: 0.1},
	"tribal_elder":           {ID: "tribal_elder", Name: "Tribal Eldership", Spectrum: SpectrumRight, InvestProbability: 0.5},
	"warrior_cult":           {ID: "warrior_cult", Name: "Warrior Cult", Spectrum: SpectrumRight, InvestProbability: 0.5},
	"aristocratic_oligarchy": {ID: "aristocratic_oligarchy", Name: "Aristocratic Oligarchy", Spectrum: SpectrumRight, InvestProbability: 0.7},
	"theocracy":              {ID: "theocracy", Name: "Theocracy", Spectrum: SpectrumRight, InvestProbability: 0.4},
	"republicanism":          {ID: "republicanism", Name: "Republicanism", Spectrum: SpectrumCenter, InvestProbability: 0.6},
	"populares":              {ID: "populares", Name: "Populares", Spectrum: SpectrumLeft, InvestProbability: 0.3},
	"legalism":               {ID: "legalism", Name: "Legalism", Spectrum: SpectrumRight, InvestProbability: 0.6},
	"confucianism":           {ID: "confucianism", Name: "Confucianism", Spectrum: SpectrumCenter, InvestProbability: 0.4},
	"mohism":                 {ID: "mohism", Name: "Mohism", Spectrum: SpectrumLeft, InvestProbability: 0.3},
	"taoism":                 {ID: "taoism", Name: "Taoism", Spectrum: SpectrumCenter, InvestProbability: 0.2},
	"feudalism":              {ID: "feudalism", Name: "Feudalism", Spectrum: SpectrumRight, InvestProbability: 0.6},
	"peasant_revolt":         {ID: "peasant_revolt", Name: "Peasant Revolt", Spectrum: SpectrumLeft, InvestProbability: 0.1},
	"guild_corporatism":      {ID: "guild_corporatism", Name: "Guild Corporatism", Spectrum: SpectrumCenter, InvestProbability: 0.7},
	"mercantilism":           {ID: "mercantilism", Name: "Mercantilism", Spectrum: SpectrumCenter, InvestProbability: 0.8},
	"absolutism":             {ID: "absolutism", Name: "Absolutism", Spectrum: SpectrumRight, InvestProbability: 0.5},
	"humanism":               {ID: "humanism", Name: "Humanism", Spectrum: SpectrumCenter, InvestProbability: 0.5},
	"colonialism":            {ID: "colonialism", Name: "Colonialism", Spectrum: SpectrumRight, InvestProbability: 0.8},
	"classical_liberalism":   {ID: "classical_liberalism", Name: "Classical Liberalism", Spectrum: SpectrumCenter, InvestProbability: 1.0},
	"enlightened_despotism":  {ID: "enlightened_despotism", Name: "Enlightened Despotism", Spectrum: SpectrumCenter, InvestProbability: 0.6},
	"conservatism":           {ID: "conservatism", Name: "Conservatism", Spectrum: SpectrumRight, InvestProbability: 0.6},
	"utopian_socialism":      {ID: "utopian_socialism", Name: "Utopian Socialism", Spectrum: SpectrumLeft, InvestProbability: 0.2},
	"physiocracy":            {ID: "physiocracy", Name: "Physiocracy", Spectrum: SpectrumCenter, InvestProbability: 0.7},
	"marxism":                {ID: "marxism", Name: "Marxism", Spectrum: SpectrumLeft, InvestProbability: 0},
}

// StanceByID looks up a stance; ok is false for unknown ids.
func StanceByID(id string) (Stance, bool) {
	s, ok := stances[id]
	return s, ok
}

// InvestProbability returns the stance gate probability for a stance id.
func InvestProbability(stanceID string) float64 {
	if s, ok := stances[stanceID]; ok {
		return s.InvestProbability
	}
	return DefaultInvestProbability
}

// SpectrumOf returns a stance's spectrum, defaulting to center.
func SpectrumOf(stanceID string) Spectrum {
	if s, ok := stances[stanceID]; ok {
		return s.Spectrum
	}
	return SpectrumCenter
}

// StanceIDs returns the known stance ids in sorted order. Roster
// generation indexes into this with a seeded draw, so the order must be
// stable for runs to be reproducible.
func StanceIDs() []string {
	ids := make([]string, 0, len(stances))
	for id := range stances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
