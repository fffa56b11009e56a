// Package registry holds the immutable building, upgrade, resource, and
// stratum tables. A Registry is constructed once at startup and passed by
// handle into every system — nothing reads these tables through globals.
package registry

// Resource identifies a tradeable resource. Silver is the currency and
// always trades at price 1.
type Resource string

const (
	ResourceFood    Resource = "food"
	ResourceWood    Resource = "wood"
	ResourceStone   Resource = "stone"
	ResourcePlank   Resource = "plank"
	ResourceBrick   Resource = "brick"
	ResourceTools   Resource = "tools"
	ResourceCloth   Resource = "cloth"
	ResourceIron    Resource = "iron"
	ResourceCopper  Resource = "copper"
	ResourceCoal    Resource = "coal"
	ResourceSteel   Resource = "steel"
	ResourcePapyrus Resource = "papyrus"
	ResourceDye     Resource = "dye"
	ResourceCulture Resource = "culture"
	ResourceSilver  Resource = "silver"
)

// Stratum identifies a population class. Strata hold jobs, pay taxes,
// and carry coalition influence.
type Stratum string

const (
	StratumPeasant    Stratum = "peasant"
	StratumSerf       Stratum = "serf"
	StratumLumberjack Stratum = "lumberjack"
	StratumMiner      Stratum = "miner"
	StratumWorker     Stratum = "worker"
	StratumArtisan    Stratum = "artisan"
	StratumMerchant   Stratum = "merchant"
	StratumLandowner  Stratum = "landowner"
	StratumCapitalist Stratum = "capitalist"
	StratumEngineer   Stratum = "engineer"
	StratumScribe     Stratum = "scribe"
	StratumCleric     Stratum = "cleric"
	StratumSoldier    Stratum = "soldier"
	StratumOfficial   Stratum = "official"
	StratumNavigator  Stratum = "navigator"
	StratumUnemployed Stratum = "unemployed"
	StratumSlave      Stratum = "slave"
)

// Category groups buildings for investment preferences.
type Category string

const (
	CategoryGather   Category = "gather"
	CategoryIndustry Category = "industry"
	CategoryCivic    Category = "civic"
	CategoryMilitary Category = "military"
)

// BuildingDefinition is the static description of one building type.
// Loaded once; never mutated after registry construction.
type BuildingDefinition struct {
	ID       string               `yaml:"id"`
	Name     string               `yaml:"name"`
	Category Category             `yaml:"category"`
	BaseCost map[Resource]float64 `yaml:"base_cost"`
	Input    map[Resource]float64 `yaml:"input"`
	Output   map[Resource]float64 `yaml:"output"`
	Jobs     map[Stratum]float64  `yaml:"jobs"`

	// Owner is the stratum that collects residual profit.
	// Empty means the building has no private owner and is never an
	// investment candidate.
	Owner Stratum `yaml:"owner,omitempty"`

	// BusinessTaxBase is the per-operation reference tax amount.
	BusinessTaxBase float64 `yaml:"business_tax_base,omitempty"`

	Epoch        int    `yaml:"epoch"`
	RequiresTech string `yaml:"requires_tech,omitempty"`
}

// UpgradeLevel overrides parts of a building's profile for one level.
// Level N is stored at index N-1; level 0 is always the base definition.
// Omitted fields fall back to the base profile field-by-field.
type UpgradeLevel struct {
	Name   string               `yaml:"name,omitempty"`
	Cost   map[Resource]float64 `yaml:"cost"`
	Input  map[Resource]float64 `yaml:"input,omitempty"`
	Output map[Resource]float64 `yaml:"output,omitempty"`
	Jobs   map[Stratum]float64  `yaml:"jobs,omitempty"`
	Owner  Stratum              `yaml:"owner,omitempty"`
}

// StratumDefinition carries the per-stratum economic baselines.
type StratumDefinition struct {
	Key           Stratum `yaml:"key"`
	Name          string  `yaml:"name"`
	HeadTaxBase   float64 `yaml:"head_tax_base"`  // per-capita reference tax
	WageBase      float64 `yaml:"wage_base"`      // reference daily wage
	InfluenceBase float64 `yaml:"influence_base"` // political weight per member
}

// ResourceDefinition carries the per-resource price baseline.
type ResourceDefinition struct {
	Key       Resource `yaml:"key"`
	Name      string   `yaml:"name"`
	BasePrice float64  `yaml:"base_price"`
}

// EffectiveConfig is a building's resolved profile at one upgrade level.
type EffectiveConfig struct {
	Name   string
	Input  map[Resource]float64
	Output map[Resource]float64
	Jobs   map[Stratum]float64
	Owner  Stratum
}
