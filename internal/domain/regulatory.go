package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TaxRules holds every rate table the engine reads.
// It is loaded once at start-up and treated as read-only afterwards.
type TaxRules struct {
	Metadata     RulesMetadata         `yaml:"metadata" json:"metadata" toml:"metadata"`
	Federal      FederalTaxRules       `yaml:"federal_tax" json:"federal_tax" toml:"federal_tax"`
	FICA         FICARules             `yaml:"fica" json:"fica" toml:"fica"`
	CapitalGains CapitalGainsRules     `yaml:"capital_gains" json:"capital_gains" toml:"capital_gains"`
	States       map[string]StateRules `yaml:"states" json:"states" toml:"states"`
}

// RulesMetadata describes where a rule set came from
type RulesMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year" toml:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated" toml:"last_updated"`
	Description string `yaml:"description" json:"description" toml:"description"`
}

// StatusAmounts maps a filing status to a dollar amount
type StatusAmounts map[FilingStatus]decimal.Decimal

// For returns the amount for the status, falling back to the single amount
func (m StatusAmounts) For(fs FilingStatus) decimal.Decimal {
	if v, ok := m[fs]; ok {
		return v
	}
	return m[FilingSingle]
}

// StatusBrackets maps a filing status to its bracket table
type StatusBrackets map[FilingStatus]BracketTable

// For returns the table for the status, falling back to the single table
func (m StatusBrackets) For(fs FilingStatus) BracketTable {
	if t, ok := m[fs]; ok && len(t) > 0 {
		return t
	}
	return m[FilingSingle]
}

func (m StatusBrackets) validate(name string) error {
	if len(m[FilingSingle]) == 0 {
		return &InvalidTableError{Table: name + "." + string(FilingSingle), Index: -1, Reason: "single table is required"}
	}
	keys := make([]string, 0, len(m))
	for fs := range m {
		keys = append(keys, string(fs))
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !FilingStatus(k).Valid() {
			return &InvalidTableError{Table: name, Index: -1, Reason: fmt.Sprintf("unknown filing status %q", k)}
		}
		if err := m[FilingStatus(k)].Validate(name + "." + k); err != nil {
			return err
		}
	}
	return nil
}

// FederalTaxRules holds the federal income tax tables
type FederalTaxRules struct {
	StandardDeduction StatusAmounts  `yaml:"standard_deduction" json:"standard_deduction" toml:"standard_deduction"`
	Brackets          StatusBrackets `yaml:"brackets" json:"brackets" toml:"brackets"`
	AMT               *AMTRules      `yaml:"amt,omitempty" json:"amt,omitempty" toml:"amt,omitempty"`
}

// AMTRules configures the alternative minimum tax path
type AMTRules struct {
	Exemption     StatusAmounts   `yaml:"exemption" json:"exemption" toml:"exemption"`
	PhaseoutStart StatusAmounts   `yaml:"phaseout_start" json:"phaseout_start" toml:"phaseout_start"`
	PhaseoutRate  decimal.Decimal `yaml:"phaseout_rate" json:"phaseout_rate" toml:"phaseout_rate"`
	Brackets      StatusBrackets  `yaml:"brackets" json:"brackets" toml:"brackets"`
}

// FICARules holds payroll tax parameters
type FICARules struct {
	SocialSecurityRate          decimal.Decimal `yaml:"social_security_rate" json:"social_security_rate" toml:"social_security_rate"`
	SocialSecurityWageBase      decimal.Decimal `yaml:"social_security_wage_base" json:"social_security_wage_base" toml:"social_security_wage_base"`
	MedicareRate                decimal.Decimal `yaml:"medicare_rate" json:"medicare_rate" toml:"medicare_rate"`
	AdditionalMedicareRate      decimal.Decimal `yaml:"additional_medicare_rate" json:"additional_medicare_rate" toml:"additional_medicare_rate"`
	AdditionalMedicareThreshold StatusAmounts   `yaml:"additional_medicare_threshold" json:"additional_medicare_threshold" toml:"additional_medicare_threshold"`
}

// CapitalGainsRules holds long-term gains, recapture and NIIT parameters
type CapitalGainsRules struct {
	Brackets                  StatusBrackets  `yaml:"brackets" json:"brackets" toml:"brackets"`
	DepreciationRecaptureRate decimal.Decimal `yaml:"depreciation_recapture_rate" json:"depreciation_recapture_rate" toml:"depreciation_recapture_rate"`
	NIITRate                  decimal.Decimal `yaml:"niit_rate" json:"niit_rate" toml:"niit_rate"`
	NIITThreshold             StatusAmounts   `yaml:"niit_threshold" json:"niit_threshold" toml:"niit_threshold"`
}

// StatePolicy selects how a state taxes income
type StatePolicy string

const (
	PolicyFlat        StatePolicy = "flat"
	PolicyProgressive StatePolicy = "progressive"
	PolicyNone        StatePolicy = "none"
)

// StateRules describes one state's income tax
type StateRules struct {
	Name     string          `yaml:"name" json:"name" toml:"name"`
	Policy   StatePolicy     `yaml:"policy" json:"policy" toml:"policy"`
	Rate     decimal.Decimal `yaml:"rate,omitempty" json:"rate,omitempty" toml:"rate,omitempty"`
	Brackets StatusBrackets  `yaml:"brackets,omitempty" json:"brackets,omitempty" toml:"brackets,omitempty"`

	// Deduction is optional; without it the state taxes gross income
	Deduction *StateDeduction `yaml:"deduction,omitempty" json:"deduction,omitempty" toml:"deduction,omitempty"`

	// PretaxDeductible lets payroll pre-tax deductions reduce state taxable income
	PretaxDeductible bool         `yaml:"pretax_deductible,omitempty" json:"pretax_deductible,omitempty" toml:"pretax_deductible,omitempty"`
	SpecialTaxes     []SpecialTax `yaml:"special_taxes,omitempty" json:"special_taxes,omitempty" toml:"special_taxes,omitempty"`
}

// StateDeduction is a state standard deduction plus a per-dependent exemption
type StateDeduction struct {
	Standard     StatusAmounts   `yaml:"standard" json:"standard" toml:"standard"`
	PerDependent decimal.Decimal `yaml:"per_dependent,omitempty" json:"per_dependent,omitempty" toml:"per_dependent,omitempty"`
}

// SpecialTaxBase selects what a special tax is levied on
type SpecialTaxBase string

const (
	BaseWages  SpecialTaxBase = "wages"
	BaseIncome SpecialTaxBase = "income"
)

// SpecialTax is a flat add-on levy such as a local earned income tax,
// disability insurance, or a surtax above a threshold.
type SpecialTax struct {
	Name      string           `yaml:"name" json:"name" toml:"name"`
	Rate      decimal.Decimal  `yaml:"rate" json:"rate" toml:"rate"`
	Base      SpecialTaxBase   `yaml:"base" json:"base" toml:"base"`
	Threshold decimal.Decimal  `yaml:"threshold,omitempty" json:"threshold,omitempty" toml:"threshold,omitempty"`
	WageCap   *decimal.Decimal `yaml:"wage_cap,omitempty" json:"wage_cap,omitempty" toml:"wage_cap,omitempty"`
}

// Validate checks every table in the rule set
func (r *TaxRules) Validate() error {
	if err := r.Federal.Brackets.validate("federal.brackets"); err != nil {
		return err
	}
	if r.Federal.AMT != nil {
		if err := r.Federal.AMT.Brackets.validate("federal.amt.brackets"); err != nil {
			return err
		}
		if err := checkRate("federal.amt.phaseout_rate", r.Federal.AMT.PhaseoutRate); err != nil {
			return err
		}
	}
	if err := r.CapitalGains.Brackets.validate("capital_gains.brackets"); err != nil {
		return err
	}
	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"fica.social_security_rate", r.FICA.SocialSecurityRate},
		{"fica.medicare_rate", r.FICA.MedicareRate},
		{"fica.additional_medicare_rate", r.FICA.AdditionalMedicareRate},
		{"capital_gains.depreciation_recapture_rate", r.CapitalGains.DepreciationRecaptureRate},
		{"capital_gains.niit_rate", r.CapitalGains.NIITRate},
	}
	for _, rr := range rates {
		if err := checkRate(rr.name, rr.rate); err != nil {
			return err
		}
	}
	if r.FICA.SocialSecurityWageBase.IsNegative() {
		return &InvalidTableError{Table: "fica.social_security_wage_base", Index: -1, Reason: "cannot be negative"}
	}
	if len(r.States) == 0 {
		return &InvalidTableError{Table: "states", Index: -1, Reason: "at least one state is required"}
	}
	ids := make([]string, 0, len(r.States))
	for id := range r.States {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s := r.States[id]
		if err := s.Validate(id); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the state's policy variant and its tables
func (s StateRules) Validate(id string) error {
	name := "states." + strings.ToUpper(id)
	switch s.Policy {
	case PolicyFlat:
		if err := checkRate(name+".rate", s.Rate); err != nil {
			return err
		}
	case PolicyProgressive:
		if err := s.Brackets.validate(name + ".brackets"); err != nil {
			return err
		}
	case PolicyNone:
	default:
		return &InvalidTableError{Table: name, Index: -1, Reason: fmt.Sprintf("unknown policy %q", s.Policy)}
	}
	for i, st := range s.SpecialTaxes {
		if err := checkRate(fmt.Sprintf("%s.special_taxes[%d].rate", name, i), st.Rate); err != nil {
			return err
		}
		if st.Base != BaseWages && st.Base != BaseIncome {
			return &InvalidTableError{Table: name + ".special_taxes", Index: i, Reason: fmt.Sprintf("unknown base %q", st.Base)}
		}
	}
	return nil
}

func checkRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return &InvalidTableError{Table: name, Index: -1, Reason: fmt.Sprintf("rate %s must be in [0, 1)", rate.String())}
	}
	return nil
}
