// Tax policy — four independently configurable categories, each
// symmetric around a neutral value. Negative rates and multipliers are
// subsidies, never clamped away.
package economy

import "github.com/talgya/dominion/internal/registry"

// TaxPolicy holds the player-configured tax tables. Missing entries
// resolve to the neutral value: 1 for multipliers, 0 for rates.
// Mutated only on explicit player command, read-only during a tick.
type TaxPolicy struct {
	// HeadTaxRates multiplies each stratum's per-capita tax base.
	HeadTaxRates map[registry.Stratum]float64
	// ResourceTaxRates taxes domestic transactions per resource.
	ResourceTaxRates map[registry.Resource]float64
	// ImportTariffs and ExportTariffs multiply cross-border flows only.
	ImportTariffs map[registry.Resource]float64
	ExportTariffs map[registry.Resource]float64
	// BusinessTaxRates multiplies each building's business tax base.
	BusinessTaxRates map[string]float64
}

// NewTaxPolicy returns a policy with every category at its neutral value.
func NewTaxPolicy() *TaxPolicy {
	return &TaxPolicy{
		HeadTaxRates:     map[registry.Stratum]float64{},
		ResourceTaxRates: map[registry.Resource]float64{},
		ImportTariffs:    map[registry.Resource]float64{},
		ExportTariffs:    map[registry.Resource]float64{},
		BusinessTaxRates: map[string]float64{},
	}
}

// HeadTaxRate returns the head tax multiplier for a stratum (default 1).
func (p *TaxPolicy) HeadTaxRate(s registry.Stratum) float64 {
	if p == nil {
		return 1
	}
	if rate, ok := p.HeadTaxRates[s]; ok {
		return rate
	}
	return 1
}

// ResourceTaxRate returns the transaction tax rate for a resource
// (default 0). Negative rates are subsidies.
func (p *TaxPolicy) ResourceTaxRate(r registry.Resource) float64 {
	if p == nil {
		return 0
	}
	return p.ResourceTaxRates[r]
}

// ImportTariff returns the tariff multiplier on imported flows of a
// resource (default 1 — no effect on local trade either way).
func (p *TaxPolicy) ImportTariff(r registry.Resource) float64 {
	if p == nil {
		return 1
	}
	if m, ok := p.ImportTariffs[r]; ok {
		return m
	}
	return 1
}

// ExportTariff returns the tariff multiplier on exported flows.
func (p *TaxPolicy) ExportTariff(r registry.Resource) float64 {
	if p == nil {
		return 1
	}
	if m, ok := p.ExportTariffs[r]; ok {
		return m
	}
	return 1
}

// BusinessTaxMultiplier returns the business tax multiplier for a
// building type (default 1). Negative multipliers mean the treasury
// pays a per-operation subsidy instead of collecting.
func (p *TaxPolicy) BusinessTaxMultiplier(buildingID string) float64 {
	if p == nil {
		return 1
	}
	if m, ok := p.BusinessTaxRates[buildingID]; ok {
		return m
	}
	return 1
}

// Toggle helpers flip a rate's sign (tax ↔ subsidy). Policy UIs call
// these; toggling twice restores the original value.

func (p *TaxPolicy) ToggleHeadTax(s registry.Stratum) {
	p.HeadTaxRates[s] = -p.HeadTaxRate(s)
}

func (p *TaxPolicy) ToggleResourceTax(r registry.Resource) {
	p.ResourceTaxRates[r] = -p.ResourceTaxRate(r)
}

func (p *TaxPolicy) ToggleImportTariff(r registry.Resource) {
	p.ImportTariffs[r] = -p.ImportTariff(r)
}

func (p *TaxPolicy) ToggleExportTariff(r registry.Resource) {
	p.ExportTariffs[r] = -p.ExportTariff(r)
}

func (p *TaxPolicy) ToggleBusinessTax(buildingID string) {
	p.BusinessTaxRates[buildingID] = -p.BusinessTaxMultiplier(buildingID)
}

// HeadTaxDue returns the total head tax a stratum owes for one day.
// Negative results are per-capita subsidies owed to the stratum.
func HeadTaxDue(count int, base, rate float64) float64 {
	if count <= 0 {
		return 0
	}
	return float64(count) * base * rate
}

// SalePrice returns the net unit price a seller receives after the
// domestic transaction tax (a negative rate pays the seller extra).
func SalePrice(price, rate float64) float64 {
	return price * (1 - rate)
}

// PurchasePrice returns the unit price a buyer pays after the domestic
// transaction tax (a negative rate discounts the purchase).
func PurchasePrice(price, rate float64) float64 {
	return price * (1 + rate)
}

// BusinessTax returns the per-operation business tax for a building.
func BusinessTax(base, multiplier float64) float64 {
	return base * multiplier
}

// TaxBreakdown accumulates raw collected amounts across one tick.
type TaxBreakdown struct {
	HeadTax        float64
	TransactionTax float64
	Tariff         float64
	BusinessTax    float64
	Subsidy        float64
}

// Collected is the treasury result after applying collection efficiency.
type Collected struct {
	Total      float64
	Efficiency float64
	Breakdown  TaxBreakdown
}

// Collect applies the tax-efficiency modifier (from the legitimacy
// engine) to raw collected totals. Subsidies are paid in full — low
// legitimacy loses revenue, it does not dodge obligations.
func Collect(b TaxBreakdown, efficiency float64) Collected {
	scaled := TaxBreakdown{
		HeadTax:        b.HeadTax * efficiency,
		TransactionTax: b.TransactionTax * efficiency,
		Tariff:         b.Tariff * efficiency,
		BusinessTax:    b.BusinessTax * efficiency,
		Subsidy:        b.Subsidy,
	}
	return Collected{
		Total:      scaled.HeadTax + scaled.TransactionTax + scaled.Tariff + scaled.BusinessTax - scaled.Subsidy,
		Efficiency: efficiency,
		Breakdown:  scaled,
	}
}
