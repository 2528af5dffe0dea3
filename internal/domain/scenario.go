package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FilingStatus is the federal filing status of a household
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "married_joint"
	FilingMarriedSeparate FilingStatus = "married_separate"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// FilingStatuses lists every supported status in display order
var FilingStatuses = []FilingStatus{
	FilingSingle,
	FilingMarriedJoint,
	FilingMarriedSeparate,
	FilingHeadOfHousehold,
}

// ParseFilingStatus accepts the canonical names plus the usual abbreviations
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "s":
		return FilingSingle, nil
	case "married_joint", "married-joint", "mfj", "joint":
		return FilingMarriedJoint, nil
	case "married_separate", "married-separate", "mfs", "separate":
		return FilingMarriedSeparate, nil
	case "head_of_household", "head-of-household", "hoh":
		return FilingHeadOfHousehold, nil
	}
	return "", &InvalidScenarioError{Field: "filing_status", Reason: fmt.Sprintf("unsupported filing status %q", s)}
}

// Valid reports whether the status is one of the supported values
func (fs FilingStatus) Valid() bool {
	for _, s := range FilingStatuses {
		if fs == s {
			return true
		}
	}
	return false
}

// FilingProfile identifies who is filing and where
type FilingProfile struct {
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`
	StateID      string       `yaml:"state" json:"state"`
	Dependents   int          `yaml:"dependents,omitempty" json:"dependents,omitempty"`
}

// IncomeScenario is the unit of computation for the engine
type IncomeScenario struct {
	GrossAnnualIncome           decimal.Decimal `yaml:"gross_annual_income" json:"gross_annual_income"`
	PreTaxDeductions            decimal.Decimal `yaml:"pre_tax_deductions" json:"pre_tax_deductions"`
	CapitalGainsAmount          decimal.Decimal `yaml:"capital_gains_amount,omitempty" json:"capital_gains_amount,omitempty"`
	DepreciationRecaptureAmount decimal.Decimal `yaml:"depreciation_recapture_amount,omitempty" json:"depreciation_recapture_amount,omitempty"`
	Profile                     FilingProfile   `yaml:"filing_profile" json:"filing_profile"`
}

// WithGross returns a copy of the scenario with a different gross income
func (s IncomeScenario) WithGross(gross decimal.Decimal) IncomeScenario {
	s.GrossAnnualIncome = gross
	return s
}

// WithState returns a copy of the scenario filed in another state
func (s IncomeScenario) WithState(stateID string) IncomeScenario {
	s.Profile.StateID = stateID
	return s
}

// InvestmentIncome is the net investment income subject to NIIT
func (s IncomeScenario) InvestmentIncome() decimal.Decimal {
	return s.CapitalGainsAmount.Add(s.DepreciationRecaptureAmount)
}

// AdjustedGrossIncome is wages less pre-tax deductions plus investment income, floored at zero
func (s IncomeScenario) AdjustedGrossIncome() decimal.Decimal {
	agi := s.GrossAnnualIncome.Sub(s.PreTaxDeductions)
	if agi.IsNegative() {
		agi = decimal.Zero
	}
	return agi.Add(s.InvestmentIncome())
}

// Validate rejects negative amounts and unsupported filing statuses
func (s IncomeScenario) Validate() error {
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"gross_annual_income", s.GrossAnnualIncome},
		{"pre_tax_deductions", s.PreTaxDeductions},
		{"capital_gains_amount", s.CapitalGainsAmount},
		{"depreciation_recapture_amount", s.DepreciationRecaptureAmount},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return &InvalidScenarioError{Field: a.field, Reason: "cannot be negative"}
		}
	}
	if !s.Profile.FilingStatus.Valid() {
		return &InvalidScenarioError{Field: "filing_status", Reason: fmt.Sprintf("unsupported filing status %q", s.Profile.FilingStatus)}
	}
	if s.Profile.Dependents < 0 {
		return &InvalidScenarioError{Field: "dependents", Reason: "cannot be negative"}
	}
	if strings.TrimSpace(s.Profile.StateID) == "" {
		return &InvalidScenarioError{Field: "state", Reason: "state is required"}
	}
	return nil
}

// TaxResult is the composed tax liability for one scenario.
// TotalTax is the sum of the five components and NetIncome is GrossIncome minus TotalTax.
type TaxResult struct {
	GrossIncome      decimal.Decimal `json:"gross_income"`
	TaxableIncome    decimal.Decimal `json:"taxable_income"`
	InvestmentIncome decimal.Decimal `json:"investment_income"`

	FederalTax      decimal.Decimal `json:"federal_tax"`
	StateTax        decimal.Decimal `json:"state_tax"`
	FICATax         decimal.Decimal `json:"fica_tax"`
	CapitalGainsTax decimal.Decimal `json:"capital_gains_tax"`
	NIIT            decimal.Decimal `json:"niit"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	NetIncome       decimal.Decimal `json:"net_income"`

	// AlternativeMinimumTax is the portion of FederalTax above the regular tax
	AlternativeMinimumTax decimal.Decimal `json:"alternative_minimum_tax"`
	EffectiveRate         decimal.Decimal `json:"effective_rate"`
}

// NewTaxResult fills in the derived totals from the components
func NewTaxResult(gross, federal, state, fica, capitalGains, niit decimal.Decimal) TaxResult {
	total := federal.Add(state).Add(fica).Add(capitalGains).Add(niit)
	r := TaxResult{
		GrossIncome:     gross,
		FederalTax:      federal,
		StateTax:        state,
		FICATax:         fica,
		CapitalGainsTax: capitalGains,
		NIIT:            niit,
		TotalTax:        total,
		NetIncome:       gross.Sub(total),
	}
	if gross.IsPositive() {
		r.EffectiveRate = total.Div(gross)
	}
	return r
}

// SolverResult is the outcome of a gross-for-net search
type SolverResult struct {
	TargetNetIncome     decimal.Decimal `json:"target_net_income"`
	RequiredGrossIncome decimal.Decimal `json:"required_gross_income"`
	AchievedNetIncome   decimal.Decimal `json:"achieved_net_income"`
	Iterations          int             `json:"iterations"`
	Converged           bool            `json:"converged"`
	ConvergenceInfo     string          `json:"convergence_info,omitempty"`
	Result              *TaxResult      `json:"result,omitempty"`
}
