package calculation

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal: standard deduction only, no itemization. Pre-tax payroll
//    deductions reduce federal taxable income. Investment income is taxed
//    separately by the capital gains calculator.
//
// 2. AMT: optional. AMTI is wages less pre-tax deductions; the exemption
//    phases out above the threshold. The excess of tentative minimum tax over
//    regular tax is added to federal tax.
//
// 3. State: flat, progressive or none. Without a deduction rule the state
//    taxes gross wages plus investment income. Pre-tax deductions only count
//    where the state allows them.
//
// 4. FICA is levied on gross wages; pre-tax deductions do not reduce it.

// FederalTax is the federal liability split into its regular and AMT parts
type FederalTax struct {
	TaxableIncome         decimal.Decimal
	RegularTax            decimal.Decimal
	AlternativeMinimumTax decimal.Decimal
}

// Total is regular tax plus any AMT
func (ft FederalTax) Total() decimal.Decimal {
	return ft.RegularTax.Add(ft.AlternativeMinimumTax)
}

// FederalTaxCalculator handles federal income tax calculations
type FederalTaxCalculator struct {
	StandardDeduction domain.StatusAmounts
	Brackets          domain.StatusBrackets
	AMT               *domain.AMTRules
}

// NewFederalTaxCalculator creates a federal calculator from the federal rules
func NewFederalTaxCalculator(rules domain.FederalTaxRules) *FederalTaxCalculator {
	return &FederalTaxCalculator{
		StandardDeduction: rules.StandardDeduction,
		Brackets:          rules.Brackets,
		AMT:               rules.AMT,
	}
}

// TaxableIncome subtracts pre-tax deductions and the standard deduction from wages
func (ftc *FederalTaxCalculator) TaxableIncome(s domain.IncomeScenario) decimal.Decimal {
	taxable := s.GrossAnnualIncome.
		Sub(s.PreTaxDeductions).
		Sub(ftc.StandardDeduction.For(s.Profile.FilingStatus))
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return taxable
}

// Compute calculates federal income tax on ordinary income
func (ftc *FederalTaxCalculator) Compute(s domain.IncomeScenario) FederalTax {
	status := s.Profile.FilingStatus
	taxable := ftc.TaxableIncome(s)

	result := FederalTax{
		TaxableIncome: taxable,
		RegularTax:    ApplyBrackets(ftc.Brackets.For(status), taxable),
	}

	if ftc.AMT != nil {
		tmt := ftc.tentativeMinimumTax(s)
		if tmt.GreaterThan(result.RegularTax) {
			result.AlternativeMinimumTax = tmt.Sub(result.RegularTax)
		}
	}
	return result
}

func (ftc *FederalTaxCalculator) tentativeMinimumTax(s domain.IncomeScenario) decimal.Decimal {
	status := s.Profile.FilingStatus
	amti := decimal.Max(s.GrossAnnualIncome.Sub(s.PreTaxDeductions), decimal.Zero)

	exemption := ftc.AMT.Exemption.For(status)
	if over := amti.Sub(ftc.AMT.PhaseoutStart.For(status)); over.IsPositive() {
		exemption = decimal.Max(exemption.Sub(over.Mul(ftc.AMT.PhaseoutRate)), decimal.Zero)
	}

	return ApplyBrackets(ftc.AMT.Brackets.For(status), amti.Sub(exemption))
}

// StateTaxCalculator dispatches to each state's policy variant
type StateTaxCalculator struct {
	States map[string]domain.StateRules
	index  map[string]string
}

// NewStateTaxCalculator creates a state calculator and indexes every state
// by its code and by the slug of its name
func NewStateTaxCalculator(states map[string]domain.StateRules) *StateTaxCalculator {
	stc := &StateTaxCalculator{
		States: states,
		index:  make(map[string]string, len(states)*2),
	}
	for id, rules := range states {
		stc.index[StateKey(id)] = id
		if rules.Name != "" {
			stc.index[StateKey(rules.Name)] = id
		}
	}
	return stc
}

// StateKey normalizes a two-letter code or a state name into a lookup key
func StateKey(id string) string {
	key := strings.ToLower(strings.TrimSpace(id))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	return key
}

// Resolve finds the canonical id and rules for a state code or slug
func (stc *StateTaxCalculator) Resolve(stateID string) (string, domain.StateRules, error) {
	id, ok := stc.index[StateKey(stateID)]
	if !ok {
		return "", domain.StateRules{}, &domain.UnknownJurisdictionError{StateID: stateID}
	}
	return id, stc.States[id], nil
}

// StateIDs returns the configured state codes in sorted order
func (stc *StateTaxCalculator) StateIDs() []string {
	ids := make([]string, 0, len(stc.States))
	for id := range stc.States {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TaxableIncome applies the state's deduction rule, if any
func (stc *StateTaxCalculator) TaxableIncome(rules domain.StateRules, s domain.IncomeScenario) decimal.Decimal {
	wages := s.GrossAnnualIncome
	if rules.PretaxDeductible {
		wages = decimal.Max(wages.Sub(s.PreTaxDeductions), decimal.Zero)
	}
	taxable := wages.Add(s.InvestmentIncome())

	if rules.Deduction != nil {
		deduction := rules.Deduction.Standard.For(s.Profile.FilingStatus)
		if s.Profile.Dependents > 0 {
			deduction = deduction.Add(rules.Deduction.PerDependent.Mul(decimal.NewFromInt(int64(s.Profile.Dependents))))
		}
		taxable = taxable.Sub(deduction)
	}

	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return taxable
}

// Compute calculates state income tax plus the state's special taxes
func (stc *StateTaxCalculator) Compute(s domain.IncomeScenario) (decimal.Decimal, error) {
	_, rules, err := stc.Resolve(s.Profile.StateID)
	if err != nil {
		return decimal.Zero, err
	}
	return stc.ComputeWithRules(rules, s), nil
}

// ComputeWithRules calculates state tax for already-resolved rules
func (stc *StateTaxCalculator) ComputeWithRules(rules domain.StateRules, s domain.IncomeScenario) decimal.Decimal {
	taxable := stc.TaxableIncome(rules, s)

	var tax decimal.Decimal
	switch rules.Policy {
	case domain.PolicyFlat:
		tax = taxable.Mul(rules.Rate)
	case domain.PolicyProgressive:
		tax = ApplyBrackets(rules.Brackets.For(s.Profile.FilingStatus), taxable)
	case domain.PolicyNone:
		tax = decimal.Zero
	}

	for _, special := range rules.SpecialTaxes {
		tax = tax.Add(specialTax(special, s.GrossAnnualIncome, taxable))
	}
	return tax
}

// specialTax charges the levy's rate on its base between the threshold and the cap
func specialTax(st domain.SpecialTax, wages, taxable decimal.Decimal) decimal.Decimal {
	base := taxable
	if st.Base == domain.BaseWages {
		base = wages
	}
	if st.WageCap != nil {
		base = decimal.Min(base, *st.WageCap)
	}
	base = base.Sub(st.Threshold)
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return base.Mul(st.Rate)
}
