package calculation

import (
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// marginalStep is the income step used to estimate the combined marginal rate
var marginalStep = decimal.NewFromInt(100)

// CalculationEngine composes federal, state, payroll and capital gains taxes
// into a single net pay result. It holds no mutable state, so one engine can
// serve concurrent evaluations.
type CalculationEngine struct {
	Rules        *domain.TaxRules
	FederalCalc  *FederalTaxCalculator
	StateCalc    *StateTaxCalculator
	FICACalc     *FICACalculator
	CapGainsCalc *CapitalGainsCalculator
	Logger       Logger
}

// NewCalculationEngine creates an engine over a validated rule set
func NewCalculationEngine(rules *domain.TaxRules) *CalculationEngine {
	return &CalculationEngine{
		Rules:        rules,
		FederalCalc:  NewFederalTaxCalculator(rules.Federal),
		StateCalc:    NewStateTaxCalculator(rules.States),
		FICACalc:     NewFICACalculator(rules.FICA),
		CapGainsCalc: NewCapitalGainsCalculator(rules.CapitalGains),
		Logger:       NopLogger{},
	}
}

// SetLogger replaces the logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
}

// Evaluate computes every tax component for the scenario
func (ce *CalculationEngine) Evaluate(s domain.IncomeScenario) (domain.TaxResult, error) {
	if err := s.Validate(); err != nil {
		return domain.TaxResult{}, err
	}
	stateID, stateRules, err := ce.StateCalc.Resolve(s.Profile.StateID)
	if err != nil {
		return domain.TaxResult{}, err
	}
	result := ce.evaluate(s, stateRules)
	ce.Logger.Debugf("evaluate: gross=%s state=%s status=%s federal=%s state_tax=%s fica=%s net=%s",
		s.GrossAnnualIncome.StringFixed(2), stateID, s.Profile.FilingStatus,
		result.FederalTax.StringFixed(2), result.StateTax.StringFixed(2), result.FICATax.StringFixed(2), result.NetIncome.StringFixed(2))
	return result, nil
}

func (ce *CalculationEngine) evaluate(s domain.IncomeScenario, stateRules domain.StateRules) domain.TaxResult {
	status := s.Profile.FilingStatus

	federal := ce.FederalCalc.Compute(s)
	stateTax := ce.StateCalc.ComputeWithRules(stateRules, s)
	ficaTax := ce.FICACalc.Compute(s.GrossAnnualIncome, status)
	gains := ce.CapGainsCalc.Compute(CapitalGainsInput{
		Gains:                 s.CapitalGainsAmount,
		DepreciationRecapture: s.DepreciationRecaptureAmount,
		OrdinaryTaxableIncome: federal.TaxableIncome,
		ModifiedAGI:           s.AdjustedGrossIncome(),
		Status:                status,
	})

	result := domain.NewTaxResult(s.GrossAnnualIncome, federal.Total(), stateTax, ficaTax, gains.Tax(), gains.NIIT)
	result.TaxableIncome = federal.TaxableIncome
	result.InvestmentIncome = s.InvestmentIncome()
	result.AlternativeMinimumTax = federal.AlternativeMinimumTax
	return result
}

// NetIncome is a convenience wrapper returning only net income
func (ce *CalculationEngine) NetIncome(s domain.IncomeScenario) (decimal.Decimal, error) {
	result, err := ce.Evaluate(s)
	if err != nil {
		return decimal.Zero, err
	}
	return result.NetIncome, nil
}

// MarginalRate estimates the combined marginal rate on the next dollars of wages
func (ce *CalculationEngine) MarginalRate(s domain.IncomeScenario) (decimal.Decimal, error) {
	base, err := ce.Evaluate(s)
	if err != nil {
		return decimal.Zero, err
	}
	next, err := ce.Evaluate(s.WithGross(s.GrossAnnualIncome.Add(marginalStep)))
	if err != nil {
		return decimal.Zero, err
	}
	return next.TotalTax.Sub(base.TotalTax).Div(marginalStep), nil
}
