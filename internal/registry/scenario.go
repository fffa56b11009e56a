// Scenario loading — YAML files that extend or replace the built-in tables.
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk shape of a definition override file. Sections
// left empty keep the built-in defaults; a listed building replaces the
// default with the same id or adds a new one.
type Scenario struct {
	Buildings []BuildingDefinition      `yaml:"buildings"`
	Upgrades  map[string][]UpgradeLevel `yaml:"upgrades"`
	Strata    []StratumDefinition       `yaml:"strata"`
	Resources []ResourceDefinition      `yaml:"resources"`
}

// LoadScenario reads a scenario file and merges it over the defaults,
// returning a fresh immutable registry.
func LoadScenario(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return FromScenario(sc), nil
}

// FromScenario merges a scenario over the built-in defaults.
func FromScenario(sc Scenario) *Registry {
	buildings := mergeByKey(defaultBuildings(), sc.Buildings, func(b BuildingDefinition) string { return b.ID })
	strata := mergeByKey(defaultStrata(), sc.Strata, func(s StratumDefinition) string { return string(s.Key) })
	resources := mergeByKey(defaultResources(), sc.Resources, func(r ResourceDefinition) string { return string(r.Key) })

	upgrades := defaultUpgrades()
	for id, levels := range sc.Upgrades {
		upgrades[id] = levels
	}
	return New(buildings, upgrades, strata, resources)
}

// mergeByKey overlays entries from over onto base, matching by key.
func mergeByKey[T any](base, over []T, key func(T) string) []T {
	index := make(map[string]int, len(base))
	for i, item := range base {
		index[key(item)] = i
	}
	for _, item := range over {
		if i, ok := index[key(item)]; ok {
			base[i] = item
			continue
		}
		index[key(item)] = len(base)
		base = append(base, item)
	}
	return base
}
