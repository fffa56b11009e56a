package registry

import (
	"sort"
)

// Registry is the immutable lookup table for building, upgrade, stratum,
// and resource definitions. Construct once, pass by handle.
type Registry struct {
	buildings map[string]*BuildingDefinition
	upgrades  map[string][]UpgradeLevel
	strata    map[Stratum]*StratumDefinition
	resources map[Resource]*ResourceDefinition

	// order holds building ids sorted lexicographically so every
	// iteration over the registry is reproducible.
	order []string
}

// New builds a registry from definition tables. Input maps are copied;
// the caller may discard them afterwards.
func New(
	buildings []BuildingDefinition,
	upgrades map[string][]UpgradeLevel,
	strata []StratumDefinition,
	resources []ResourceDefinition,
) *Registry {
	r := &Registry{
		buildings: make(map[string]*BuildingDefinition, len(buildings)),
		upgrades:  make(map[string][]UpgradeLevel, len(upgrades)),
		strata:    make(map[Stratum]*StratumDefinition, len(strata)),
		resources: make(map[Resource]*ResourceDefinition, len(resources)),
	}

	for i := range buildings {
		b := buildings[i]
		r.buildings[b.ID] = &b
		r.order = append(r.order, b.ID)
	}
	sort.Strings(r.order)

	for id, levels := range upgrades {
		r.upgrades[id] = append([]UpgradeLevel(nil), levels...)
	}
	for i := range strata {
		s := strata[i]
		r.strata[s.Key] = &s
	}
	for i := range resources {
		res := resources[i]
		r.resources[res.Key] = &res
	}
	return r
}

// Default builds the registry from the built-in tables.
func Default() *Registry {
	return New(defaultBuildings(), defaultUpgrades(), defaultStrata(), defaultResources())
}

// Building returns a building definition, or nil when the id is unknown.
func (r *Registry) Building(id string) *BuildingDefinition {
	return r.buildings[id]
}

// BuildingIDs returns all building ids in stable lexicographic order.
func (r *Registry) BuildingIDs() []string {
	return append([]string(nil), r.order...)
}

// MaxUpgradeLevel returns the highest defined upgrade level for a
// building (0 when the building has no upgrade table).
func (r *Registry) MaxUpgradeLevel(id string) int {
	return len(r.upgrades[id])
}

// UpgradeLevelConfig returns the raw override entry for a level,
// or nil when the level is out of range.
func (r *Registry) UpgradeLevelConfig(id string, level int) *UpgradeLevel {
	levels := r.upgrades[id]
	if level < 1 || level > len(levels) {
		return nil
	}
	return &levels[level-1]
}

// StratumDef returns a stratum definition, or nil when unknown.
func (r *Registry) StratumDef(key Stratum) *StratumDefinition {
	return r.strata[key]
}

// HeadTaxBase returns the per-capita reference tax for a stratum,
// falling back to 0.01 for strata without an explicit baseline.
func (r *Registry) HeadTaxBase(key Stratum) float64 {
	if def := r.strata[key]; def != nil && def.HeadTaxBase > 0 {
		return def.HeadTaxBase
	}
	return 0.01
}

// WageBase returns the reference daily wage for a stratum, or 0 when
// the stratum has no baseline (the market layer applies its own floor).
func (r *Registry) WageBase(key Stratum) float64 {
	if def := r.strata[key]; def != nil {
		return def.WageBase
	}
	return 0
}

// BasePrice returns the configured base price for a resource. Silver is
// always 1; unknown resources fall back to 1.
func (r *Registry) BasePrice(key Resource) float64 {
	if key == ResourceSilver {
		return 1
	}
	if def := r.resources[key]; def != nil && def.BasePrice > 0 {
		return def.BasePrice
	}
	return 1
}

// ResourceKeys returns all resource keys in stable order.
func (r *Registry) ResourceKeys() []Resource {
	keys := make([]Resource, 0, len(r.resources))
	for k := range r.resources {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// StratumKeys returns all stratum keys in stable order.
func (r *Registry) StratumKeys() []Stratum {
	keys := make([]Stratum, 0, len(r.strata))
	for k := range r.strata {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
