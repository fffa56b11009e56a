// Built-in definition tables. A scenario file can replace any of these;
// they make the simulator runnable out of the box.
package registry

func defaultResources() []ResourceDefinition {
	return []ResourceDefinition{
		{Key: ResourceFood, Name: "Food", BasePrice: 1},
		{Key: ResourceWood, Name: "Wood", BasePrice: 1.5},
		{Key: ResourceStone, Name: "Stone", BasePrice: 2},
		{Key: ResourcePlank, Name: "Plank", BasePrice: 4},
		{Key: ResourceBrick, Name: "Brick", BasePrice: 4},
		{Key: ResourceTools, Name: "Tools", BasePrice: 8},
		{Key: ResourceCloth, Name: "Cloth", BasePrice: 5},
		{Key: ResourceIron, Name: "Iron", BasePrice: 6},
		{Key: ResourceCopper, Name: "Copper", BasePrice: 5},
		{Key: ResourceCoal, Name: "Coal", BasePrice: 3},
		{Key: ResourceSteel, Name: "Steel", BasePrice: 12},
		{Key: ResourcePapyrus, Name: "Papyrus", BasePrice: 4},
		{Key: ResourceDye, Name: "Dye", BasePrice: 7},
		{Key: ResourceCulture, Name: "Culture", BasePrice: 10},
		{Key: ResourceSilver, Name: "Silver", BasePrice: 1},
	}
}

func defaultStrata() []StratumDefinition {
	return []StratumDefinition{
		{Key: StratumSlave, Name: "Slave", HeadTaxBase: 0, WageBase: 0.2, InfluenceBase: 0},
		{Key: StratumSerf, Name: "Serf", HeadTaxBase: 0.005, WageBase: 0.6, InfluenceBase: 0.3},
		{Key: StratumPeasant, Name: "Peasant", HeadTaxBase: 0.01, WageBase: 1, InfluenceBase: 0.5},
		{Key: StratumLumberjack, Name: "Lumberjack", HeadTaxBase: 0.01, WageBase: 1.1, InfluenceBase: 0.5},
		{Key: StratumMiner, Name: "Miner", HeadTaxBase: 0.01, WageBase: 1.2, InfluenceBase: 0.5},
		{Key: StratumWorker, Name: "Worker", HeadTaxBase: 0.012, WageBase: 1.4, InfluenceBase: 0.6},
		{Key: StratumArtisan, Name: "Artisan", HeadTaxBase: 0.015, WageBase: 2, InfluenceBase: 0.8},
		{Key: StratumMerchant, Name: "Merchant", HeadTaxBase: 0.03, WageBase: 3.5, InfluenceBase: 1.5},
		{Key: StratumLandowner, Name: "Landowner", HeadTaxBase: 0.04, WageBase: 4, InfluenceBase: 2},
		{Key: StratumCapitalist, Name: "Capitalist", HeadTaxBase: 0.05, WageBase: 6, InfluenceBase: 2.5},
		{Key: StratumEngineer, Name: "Engineer", HeadTaxBase: 0.02, WageBase: 3, InfluenceBase: 1},
		{Key: StratumScribe, Name: "Scribe", HeadTaxBase: 0.015, WageBase: 2.2, InfluenceBase: 0.9},
		{Key: StratumCleric, Name: "Cleric", HeadTaxBase: 0.015, WageBase: 2, InfluenceBase: 1.2},
		{Key: StratumSoldier, Name: "Soldier", HeadTaxBase: 0.01, WageBase: 1.8, InfluenceBase: 1},
		{Key: StratumOfficial, Name: "Official", HeadTaxBase: 0.03, WageBase: 4, InfluenceBase: 2},
		{Key: StratumNavigator, Name: "Navigator", HeadTaxBase: 0.02, WageBase: 2.5, InfluenceBase: 0.8},
		{Key: StratumUnemployed, Name: "Unemployed", HeadTaxBase: 0, WageBase: 0, InfluenceBase: 0.1},
	}
}

func defaultBuildings() []BuildingDefinition {
	return []BuildingDefinition{
		{
			ID: "farm", Name: "Farm", Category: CategoryGather,
			BaseCost: map[Resource]float64{ResourceWood: 12},
			Output:   map[Resource]float64{ResourceFood: 3.2},
			Jobs:     map[Stratum]float64{StratumPeasant: 2},
			Owner:    StratumPeasant, BusinessTaxBase: 0.2, Epoch: 0,
		},
		{
			ID: "lumber_camp", Name: "Lumber Camp", Category: CategoryGather,
			BaseCost: map[Resource]float64{ResourceWood: 20, ResourceStone: 5},
			Output:   map[Resource]float64{ResourceWood: 3.2},
			Jobs:     map[Stratum]float64{StratumLumberjack: 2},
			Owner:    StratumLumberjack, BusinessTaxBase: 0.2, Epoch: 0,
		},
		{
			ID: "quarry", Name: "Quarry", Category: CategoryGather,
			BaseCost: map[Resource]float64{ResourceWood: 35, ResourceStone: 10},
			Input:    map[Resource]float64{ResourceTools: 0.05},
			Output:   map[Resource]float64{ResourceStone: 2.5},
			Jobs:     map[Stratum]float64{StratumMiner: 2},
			Owner:    StratumMiner, BusinessTaxBase: 0.25, Epoch: 0,
		},
		{
			ID: "trading_post", Name: "Trading Post", Category: CategoryCivic,
			BaseCost: map[Resource]float64{ResourceWood: 50, ResourceStone: 10},
			Output:   map[Resource]float64{ResourceFood: 2, ResourceSilver: 0.8},
			Jobs:     map[Stratum]float64{StratumMerchant: 1},
			Owner:    StratumMerchant, BusinessTaxBase: 0.4, Epoch: 0,
			RequiresTech: "barter",
		},
		{
			ID: "loom_house", Name: "Loom House", Category: CategoryIndustry,
			BaseCost: map[Resource]float64{ResourceWood: 60, ResourceStone: 20},
			Input:    map[Resource]float64{ResourceTools: 0.02},
			Output:   map[Resource]float64{ResourceCloth: 2.4},
			Jobs:     map[Stratum]float64{StratumPeasant: 2},
			Owner:    StratumPeasant, BusinessTaxBase: 0.3, Epoch: 1,
			RequiresTech: "weaving",
		},
		{
			ID: "copper_mine", Name: "Copper Mine", Category: CategoryGather,
			BaseCost: map[Resource]float64{ResourceWood: 80, ResourceTools: 10},
			Input:    map[Resource]float64{ResourceTools: 0.08, ResourceFood: 0.3},
			Output:   map[Resource]float64{ResourceCopper: 1.6},
			Jobs:     map[Stratum]float64{StratumMiner: 3},
			Owner:    StratumMiner, BusinessTaxBase: 0.3, Epoch: 1,
			RequiresTech: "copper_mining",
		},
		{
			ID: "brickworks", Name: "Brickworks", Category: CategoryIndustry,
			BaseCost: map[Resource]float64{ResourceStone: 60, ResourceWood: 30},
			Input:    map[Resource]float64{ResourceStone: 1.0, ResourceWood: 0.5},
			Output:   map[Resource]float64{ResourceBrick: 3.0},
			Jobs:     map[Stratum]float64{StratumWorker: 3},
			Owner:    StratumWorker, BusinessTaxBase: 0.3, Epoch: 2,
			RequiresTech: "kilns",
		},
		{
			ID: "large_estate", Name: "Large Estate", Category: CategoryGather,
			BaseCost: map[Resource]float64{ResourceWood: 100, ResourcePlank: 25},
			Output:   map[Resource]float64{ResourceFood: 18},
			Jobs:     map[Stratum]float64{StratumSerf: 6, StratumLandowner: 1},
			Owner:    StratumLandowner, BusinessTaxBase: 0.8, Epoch: 3,
			RequiresTech: "feudalism",
		},
		{
			ID: "market", Name: "Market", Category: CategoryCivic,
			BaseCost: map[Resource]float64{ResourceBrick: 150, ResourcePlank: 60},
			Input:    map[Resource]float64{ResourcePapyrus: 0.05},
			Output:   map[Resource]float64{ResourceFood: 3, ResourceSilver: 5},
			Jobs:     map[Stratum]float64{StratumMerchant: 2, StratumScribe: 1},
			Owner:    StratumMerchant, BusinessTaxBase: 1, Epoch: 3,
			RequiresTech: "currency",
		},
		{
			ID: "furniture_workshop", Name: "Furniture Workshop", Category: CategoryIndustry,
			BaseCost: map[Resource]float64{ResourcePlank: 80, ResourceBrick: 40},
			Input:    map[Resource]float64{ResourcePlank: 1.5, ResourceCloth: 0.4},
			Output:   map[Resource]float64{ResourceSilver: 6},
			Jobs:     map[Stratum]float64{StratumWorker: 6, StratumArtisan: 2},
			Owner:    StratumArtisan, BusinessTaxBase: 0.6, Epoch: 4,
			RequiresTech: "joinery",
		},
		{
			ID: "metallurgy_workshop", Name: "Metallurgy Workshop", Category: CategoryIndustry,
			BaseCost: map[Resource]float64{ResourceBrick: 100, ResourceIron: 40},
			Input:    map[Resource]float64{ResourceIron: 0.8, ResourceCopper: 0.15, ResourceWood: 0.4},
			Output:   map[Resource]float64{ResourceTools: 2.5},
			Jobs:     map[Stratum]float64{StratumWorker: 3, StratumArtisan: 2, StratumEngineer: 1},
			Owner:    StratumCapitalist, BusinessTaxBase: 1.2, Epoch: 5,
			RequiresTech: "metallurgy",
		},
		{
			ID: "rail_depot", Name: "Rail Depot", Category: CategoryCivic,
			BaseCost: map[Resource]float64{ResourceSteel: 100, ResourceCoal: 60},
			Input:    map[Resource]float64{ResourceCoal: 0.2},
			Output:   map[Resource]float64{ResourceSilver: 3},
			Jobs:     map[Stratum]float64{StratumEngineer: 2, StratumMerchant: 2, StratumCapitalist: 1},
			Owner:    StratumCapitalist, BusinessTaxBase: 1.5, Epoch: 6,
			RequiresTech: "railways",
		},
		// Subsistence plot: owner works it alone, so investment agents
		// never touch it (no job role distinct from the owner's).
		{
			ID: "subsistence_plot", Name: "Subsistence Plot", Category: CategoryGather,
			BaseCost: map[Resource]float64{ResourceWood: 5},
			Output:   map[Resource]float64{ResourceFood: 1.2},
			Jobs:     map[Stratum]float64{StratumPeasant: 1},
			Owner:    StratumPeasant, Epoch: 0,
		},
	}
}

func defaultUpgrades() map[string][]UpgradeLevel {
	return map[string][]UpgradeLevel{
		"farm": {
			{
				Name:   "Irrigated Fields",
				Cost:   map[Resource]float64{ResourceWood: 50, ResourceStone: 20, ResourceTools: 5, ResourceSilver: 300},
				Input:  map[Resource]float64{ResourceTools: 0.08, ResourceWood: 0.1},
				Output: map[Resource]float64{ResourceFood: 5.2},
				Jobs:   map[Stratum]float64{StratumPeasant: 3},
			},
			{
				Name:   "Intensive Fields",
				Cost:   map[Resource]float64{ResourcePlank: 80, ResourceBrick: 40, ResourceTools: 15, ResourceSilver: 800},
				Input:  map[Resource]float64{ResourceTools: 0.15, ResourceWood: 0.2},
				Output: map[Resource]float64{ResourceFood: 7.2},
				Jobs:   map[Stratum]float64{StratumPeasant: 4},
			},
		},
		"lumber_camp": {
			{
				Name:   "Great Lumber Camp",
				Cost:   map[Resource]float64{ResourceWood: 80, ResourceStone: 30, ResourceTools: 10, ResourceSilver: 250},
				Input:  map[Resource]float64{ResourceTools: 0.1, ResourceFood: 0.3},
				Output: map[Resource]float64{ResourceWood: 4.2},
				Jobs:   map[Stratum]float64{StratumLumberjack: 3},
			},
			{
				Name:   "Forestry Estate",
				Cost:   map[Resource]float64{ResourcePlank: 60, ResourceBrick: 30, ResourceTools: 20, ResourceSilver: 600},
				Input:  map[Resource]float64{ResourceTools: 0.18, ResourceFood: 0.4},
				Output: map[Resource]float64{ResourceWood: 5.8, ResourceFood: 0.2},
				Jobs:   map[Stratum]float64{StratumLumberjack: 4},
			},
		},
		"quarry": {
			{
				Name:   "Deep Quarry",
				Cost:   map[Resource]float64{ResourceWood: 80, ResourceStone: 50, ResourceTools: 15, ResourceSilver: 300},
				Input:  map[Resource]float64{ResourceTools: 0.12, ResourceWood: 0.3, ResourceFood: 0.3},
				Output: map[Resource]float64{ResourceStone: 3.25},
				Jobs:   map[Stratum]float64{StratumMiner: 3},
			},
			{
				Name:   "Grand Quarry",
				Cost:   map[Resource]float64{ResourcePlank: 80, ResourceStone: 100, ResourceTools: 30, ResourceSilver: 700},
				Input:  map[Resource]float64{ResourceTools: 0.2, ResourceWood: 0.5, ResourceFood: 0.5},
				Output: map[Resource]float64{ResourceStone: 4.5, ResourceCopper: 0.03},
				Jobs:   map[Stratum]float64{StratumMiner: 4},
			},
		},
		"loom_house": {
			{
				Name:   "Weaving House",
				Cost:   map[Resource]float64{ResourceWood: 80, ResourceStone: 40, ResourceTools: 10, ResourceSilver: 250},
				Input:  map[Resource]float64{ResourceTools: 0.03},
				Output: map[Resource]float64{ResourceCloth: 3.1},
				Jobs:   map[Stratum]float64{StratumPeasant: 3},
			},
			{
				Name:   "Great Weaving Hall",
				Cost:   map[Resource]float64{ResourcePlank: 60, ResourceBrick: 40, ResourceTools: 20, ResourceSilver: 600},
				Input:  map[Resource]float64{ResourceTools: 0.06, ResourceDye: 0.05},
				Output: map[Resource]float64{ResourceCloth: 4.3, ResourceCulture: 0.07},
				Jobs:   map[Stratum]float64{StratumPeasant: 4},
			},
		},
		"brickworks": {
			{
				Name:   "Improved Kiln",
				Cost:   map[Resource]float64{ResourceStone: 80, ResourceWood: 40, ResourceTools: 15, ResourceSilver: 300},
				Input:  map[Resource]float64{ResourceStone: 1.2, ResourceWood: 0.6, ResourceTools: 0.03},
				Output: map[Resource]float64{ResourceBrick: 3.9},
				Jobs:   map[Stratum]float64{StratumWorker: 3},
			},
			{
				Name:   "Great Kiln",
				Cost:   map[Resource]float64{ResourceStone: 120, ResourceBrick: 80, ResourceTools: 30, ResourceSilver: 700},
				Input:  map[Resource]float64{ResourceStone: 2.0, ResourceWood: 1.0, ResourceTools: 0.06},
				Output: map[Resource]float64{ResourceBrick: 5.4, ResourceTools: 0.03},
				Jobs:   map[Stratum]float64{StratumWorker: 4},
			},
		},
		"market": {
			{
				Name:   "Grand Market",
				Cost:   map[Resource]float64{ResourceBrick: 300, ResourcePapyrus: 60, ResourceSilver: 1000},
				Input:  map[Resource]float64{ResourcePapyrus: 0.1},
				Output: map[Resource]float64{ResourceFood: 3.9, ResourceSilver: 6.5},
				Jobs:   map[Stratum]float64{StratumMerchant: 3, StratumScribe: 1},
			},
			{
				Name:   "Exchange",
				Cost:   map[Resource]float64{ResourceSteel: 200, ResourcePapyrus: 120, ResourceSilver: 2200},
				Input:  map[Resource]float64{ResourcePapyrus: 0.15},
				Output: map[Resource]float64{ResourceFood: 5.4, ResourceSilver: 9.0, ResourceCulture: 0.2},
				Jobs:   map[Stratum]float64{StratumMerchant: 4, StratumScribe: 1, StratumCapitalist: 1},
			},
		},
		"metallurgy_workshop": {
			{
				Name:   "Precision Foundry",
				Cost:   map[Resource]float64{ResourceBrick: 120, ResourceIron: 60, ResourceSilver: 600},
				Input:  map[Resource]float64{ResourceIron: 1.0, ResourceCopper: 0.2, ResourceWood: 0.5},
				Output: map[Resource]float64{ResourceTools: 3.25},
				Jobs:   map[Stratum]float64{StratumWorker: 4, StratumArtisan: 2, StratumEngineer: 1},
			},
			{
				Name:   "Grand Foundry",
				Cost:   map[Resource]float64{ResourceBrick: 200, ResourceIron: 100, ResourceSilver: 1300},
				Input:  map[Resource]float64{ResourceIron: 1.5, ResourceCopper: 0.3, ResourceWood: 0.8, ResourceCoal: 0.1},
				Output: map[Resource]float64{ResourceTools: 4.5},
				Jobs:   map[Stratum]float64{StratumWorker: 5, StratumArtisan: 2, StratumEngineer: 1},
			},
		},
		"rail_depot": {
			{
				Name:   "Grand Rail Station",
				Cost:   map[Resource]float64{ResourceSteel: 120, ResourceCoal: 80, ResourceSilver: 850},
				Input:  map[Resource]float64{ResourceCoal: 0.25},
				Output: map[Resource]float64{ResourceSilver: 3.9},
				Jobs:   map[Stratum]float64{StratumEngineer: 2, StratumMerchant: 2, StratumCapitalist: 1},
			},
			{
				Name:   "Rail Hub",
				Cost:   map[Resource]float64{ResourceSteel: 220, ResourceCoal: 150, ResourceSilver: 1900},
				Input:  map[Resource]float64{ResourceCoal: 0.4},
				Output: map[Resource]float64{ResourceSilver: 5.4, ResourceFood: 0.7, ResourceCulture: 0.14},
				Jobs:   map[Stratum]float64{StratumEngineer: 3, StratumMerchant: 2, StratumCapitalist: 1},
			},
		},
	}
}
