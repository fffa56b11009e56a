// Package politics implements the ruling-coalition legitimacy engine.
// Legitimacy is re-derived every tick from coalition membership,
// per-stratum influence, and approval — never cached.
package politics

import "github.com/talgya/dominion/internal/registry"

// LegitimacyThreshold is the coalition influence share below which a
// government is illegitimate.
const LegitimacyThreshold = 0.40

// Level is the categorical legitimacy band.
type Level string

const (
	LevelHigh         Level = "high"         // legitimacy >= 80
	LevelMedium       Level = "medium"       // 60–79
	LevelLow          Level = "low"          // 40–59
	LevelIllegitimate Level = "illegitimate" // < 40
)

// State is the coalition input for one tick. Influence and Approval
// cover all strata; Members lists the ruling coalition. Mutated only by
// player command, read-only during a tick.
type State struct {
	Members   []registry.Stratum
	Influence map[registry.Stratum]float64
	Approval  map[registry.Stratum]float64 // 0–100, default 50
}

// IsMember reports whether a stratum sits in the ruling coalition.
func (s *State) IsMember(key registry.Stratum) bool {
	for _, m := range s.Members {
		if m == key {
			return true
		}
	}
	return false
}

// InfluenceShare returns the coalition's share of total influence, 0–1.
func (s *State) InfluenceShare() float64 {
	if len(s.Members) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range s.Influence {
		total += v
	}
	if total <= 0 {
		return 0
	}
	coalition := 0.0
	for _, m := range s.Members {
		coalition += s.Influence[m]
	}
	return coalition / total
}

// Legitimacy derives the 0–100 legitimacy scalar: influence share ×100,
// dampened when the influence-weighted coalition approval falls below
// 50 (factor = 0.5 + avg/100, never above 1).
func (s *State) Legitimacy() float64 {
	base := s.InfluenceShare() * 100

	if len(s.Members) > 0 && len(s.Approval) > 0 {
		totalWeight := 0.0
		weighted := 0.0
		for _, m := range s.Members {
			approval, ok := s.Approval[m]
			if !ok {
				approval = 50
			}
			weight := s.Influence[m]
			if weight <= 0 {
				weight = 1
			}
			weighted += approval * weight
			totalWeight += weight
		}
		avg := 50.0
		if totalWeight > 0 {
			avg = weighted / totalWeight
		}
		if avg < 50 {
			base *= 0.5 + avg/100
		}
	}

	if base < 0 {
		return 0
	}
	if base > 100 {
		return 100
	}
	return base
}

// LevelOf maps a legitimacy scalar onto its band.
func LevelOf(legitimacy float64) Level {
	switch {
	case legitimacy >= 80:
		return LevelHigh
	case legitimacy >= 60:
		return LevelMedium
	case legitimacy >= 40:
		return LevelLow
	default:
		return LevelIllegitimate
	}
}

// TaxModifier maps legitimacy linearly onto tax collection efficiency:
// 0 → 0.3, 100 → 1.0.
func TaxModifier(legitimacy float64) float64 {
	if legitimacy < 0 {
		legitimacy = 0
	}
	if legitimacy > 100 {
		legitimacy = 100
	}
	return 0.3 + (legitimacy/100)*0.7
}

// OrganizationModifier returns the organization-growth speed multiplier
// for a stratum. Coalition members always organize faster (their
// expectations run higher); for everyone else high legitimacy slows
// radicalization and an illegitimate government accelerates it.
func OrganizationModifier(legitimacy float64, coalitionMember bool) float64 {
	if coalitionMember {
		return 1.5
	}
	switch LevelOf(legitimacy) {
	case LevelHigh:
		return 0.3
	case LevelMedium:
		return 0.6
	case LevelLow:
		return 1.0
	default:
		return 1.5
	}
}

// ApprovalModifier returns the world-wide approval adjustment. Only an
// illegitimate government is penalized.
func ApprovalModifier(legitimacy float64) float64 {
	if LevelOf(legitimacy) == LevelIllegitimate {
		return -15
	}
	return 0
}

// Modifiers bundles the derived multiplier set handed to the economy.
type Modifiers struct {
	Legitimacy         float64
	Level              Level
	TaxEfficiency      float64
	ApprovalPenalty    float64
	OrganizationGrowth map[registry.Stratum]float64
}

// Derive computes the full modifier set for the given strata.
func (s *State) Derive(strata []registry.Stratum) Modifiers {
	leg := s.Legitimacy()
	m := Modifiers{
		Legitimacy:         leg,
		Level:              LevelOf(leg),
		TaxEfficiency:      TaxModifier(leg),
		ApprovalPenalty:    ApprovalModifier(leg),
		OrganizationGrowth: make(map[registry.Stratum]float64, len(strata)),
	}
	for _, key := range strata {
		m.OrganizationGrowth[key] = OrganizationModifier(leg, s.IsMember(key))
	}
	return m
}
