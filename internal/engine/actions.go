// Staged actions — agent decisions are evaluated against the start-of-
// day state and applied together at the end of the tick, so the order
// officials are processed in never changes what any of them saw.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/dominion/internal/agents"
)

// ActionBatch accumulates the day's staged decisions.
type ActionBatch struct {
	Investments []stagedInvestment
	Upgrades    []stagedUpgrade
	Foreign     []agents.ForeignAction
}

type stagedInvestment struct {
	official *agents.Official
	action   agents.InvestmentAction
}

type stagedUpgrade struct {
	official *agents.Official
	action   agents.UpgradeAction
}

// StageInvestment records an official's investment for the commit step.
func (b *ActionBatch) StageInvestment(o *agents.Official, a *agents.InvestmentAction) {
	if a == nil {
		return
	}
	b.Investments = append(b.Investments, stagedInvestment{official: o, action: *a})
}

// StageUpgrade records an official's upgrade for the commit step.
func (b *ActionBatch) StageUpgrade(o *agents.Official, a *agents.UpgradeAction) {
	if a == nil {
		return
	}
	b.Upgrades = append(b.Upgrades, stagedUpgrade{official: o, action: *a})
}

// StageForeign records a nation's investment for the commit step.
func (b *ActionBatch) StageForeign(a *agents.ForeignAction) {
	if a == nil {
		return
	}
	b.Foreign = append(b.Foreign, *a)
}

// Commit applies the batch to the simulation state. Wealth is
// re-checked at commit time; an agent whose wealth no longer covers the
// staged cost forfeits the action.
func (s *Simulation) Commit(batch *ActionBatch) {
	for _, st := range batch.Investments {
		o, a := st.official, st.action
		if o.Wealth < a.Cost {
			slog.Debug("investment forfeited", "official", o.Name, "building", a.BuildingID)
			continue
		}
		o.Wealth -= a.Cost
		o.Profile.LastInvestmentDay = s.Day
		o.Properties = append(o.Properties, agents.Property{BuildingID: a.BuildingID})
		s.Stock.Add(a.BuildingID, 1)
		s.recordEvent("economy", fmt.Sprintf("%s invested %.0f silver in a new %s",
			o.Name, a.Cost, a.BuildingID))
	}

	for _, st := range batch.Upgrades {
		o, a := st.official, st.action
		if o.Wealth < a.Cost {
			continue
		}
		if a.PropertyIndex < 0 || a.PropertyIndex >= len(o.Properties) {
			continue
		}
		prop := &o.Properties[a.PropertyIndex]
		if prop.BuildingID != a.BuildingID || prop.Level != a.FromLevel {
			continue
		}
		if !s.Stock.Promote(a.BuildingID, a.FromLevel) {
			continue
		}
		o.Wealth -= a.Cost
		o.Profile.LastUpgradeDay = s.Day
		prop.Level = a.ToLevel
		s.recordEvent("economy", fmt.Sprintf("%s upgraded a %s to level %d",
			o.Name, a.BuildingID, a.ToLevel))
	}

	for _, a := range batch.Foreign {
		n := s.nationByID(a.NationID)
		if n == nil || n.Wealth < a.Cost {
			continue
		}
		n.Wealth -= a.Cost
		n.LastInvestmentDay = s.Day
		s.Stock.Add(a.BuildingID, 1)
		s.Foreign = append(s.Foreign, &agents.ForeignInvestment{
			ID:          uuid.NewString(),
			OwnerNation: a.NationID,
			BuildingID:  a.BuildingID,
			Amount:      a.Cost,
			Mode:        a.Mode,
		})
		s.recordEvent("diplomacy", fmt.Sprintf("%s opened a %s operating in %s mode",
			n.Name, a.BuildingID, a.Mode))
	}
}
