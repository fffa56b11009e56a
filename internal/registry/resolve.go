// Effective-config resolution and mixed-level stock aggregation.
package registry

// EffectiveConfig resolves a building's profile at an upgrade level.
// Level <= 0, an unknown building, or a level past the upgrade table all
// return the base profile — absence is never an error. A level override
// falls back to the base profile field-by-field for fields it omits.
func (r *Registry) EffectiveConfig(id string, level int) EffectiveConfig {
	b := r.buildings[id]
	if b == nil {
		return EffectiveConfig{}
	}

	base := EffectiveConfig{
		Name:   b.Name,
		Input:  b.Input,
		Output: b.Output,
		Jobs:   b.Jobs,
		Owner:  b.Owner,
	}
	if level <= 0 {
		return base
	}

	up := r.UpgradeLevelConfig(id, level)
	if up == nil {
		return base
	}

	cfg := base
	if up.Name != "" {
		cfg.Name = up.Name
	}
	if up.Input != nil {
		cfg.Input = up.Input
	}
	if up.Output != nil {
		cfg.Output = up.Output
	}
	if up.Jobs != nil {
		cfg.Jobs = up.Jobs
	}
	if up.Owner != "" {
		cfg.Owner = up.Owner
	}
	return cfg
}

// AggregateProfile is the summed profile of a mixed-level building stock.
type AggregateProfile struct {
	Input  map[Resource]float64
	Output map[Resource]float64
	Jobs   map[Stratum]float64
	Count  int
}

// AggregateStock sums the effective profiles of a building's instances
// across its level distribution. The level-0 count is always derived as
// the remainder total − Σ(levels ≥ 1); an explicit level-0 entry in the
// distribution is ignored so the invariant Σcounts == total holds by
// construction. Negative counts are clamped to 0.
func (r *Registry) AggregateStock(id string, total int, distribution map[int]int) AggregateProfile {
	agg := AggregateProfile{
		Input:  map[Resource]float64{},
		Output: map[Resource]float64{},
		Jobs:   map[Stratum]float64{},
	}
	if total <= 0 || r.buildings[id] == nil {
		return agg
	}
	agg.Count = total

	maxLevel := r.MaxUpgradeLevel(id)
	upgraded := 0
	for level := 1; level <= maxLevel; level++ {
		n := distribution[level]
		if n <= 0 {
			continue
		}
		if upgraded+n > total {
			n = total - upgraded
		}
		upgraded += n
		r.accumulate(&agg, id, level, n)
	}

	if rem := total - upgraded; rem > 0 {
		r.accumulate(&agg, id, 0, rem)
	}
	return agg
}

// PerInstanceAverage divides an aggregate by its instance count, giving
// the average per-instance profile of mixed-level stock.
func (a AggregateProfile) PerInstanceAverage() AggregateProfile {
	if a.Count <= 0 {
		return a
	}
	avg := AggregateProfile{
		Input:  make(map[Resource]float64, len(a.Input)),
		Output: make(map[Resource]float64, len(a.Output)),
		Jobs:   make(map[Stratum]float64, len(a.Jobs)),
		Count:  1,
	}
	n := float64(a.Count)
	for k, v := range a.Input {
		avg.Input[k] = v / n
	}
	for k, v := range a.Output {
		avg.Output[k] = v / n
	}
	for k, v := range a.Jobs {
		avg.Jobs[k] = v / n
	}
	return avg
}

func (r *Registry) accumulate(agg *AggregateProfile, id string, level, count int) {
	cfg := r.EffectiveConfig(id, level)
	n := float64(count)
	for k, v := range cfg.Input {
		agg.Input[k] += v * n
	}
	for k, v := range cfg.Output {
		agg.Output[k] += v * n
	}
	for k, v := range cfg.Jobs {
		agg.Jobs[k] += v * n
	}
}
