package compare

import (
	"fmt"

	"github.com/rgehrsitz/netpay/internal/calculation"
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareEngine evaluates the same income under different states' rules
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	Logger            calculation.Logger
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		Logger:            calculation.NopLogger{},
	}
}

// Compare evaluates gross income with the template's filing status in two
// states and reports B minus A
func (ce *CompareEngine) Compare(gross decimal.Decimal, template domain.IncomeScenario, stateA, stateB string) (*StateComparison, error) {
	scenario := template.WithGross(gross)

	resultA, err := ce.CalcEngine.Evaluate(scenario.WithState(stateA))
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate state %s: %w", stateA, err)
	}
	resultB, err := ce.CalcEngine.Evaluate(scenario.WithState(stateB))
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate state %s: %w", stateB, err)
	}

	return &StateComparison{
		GrossIncome:   gross,
		StateA:        stateA,
		StateB:        stateB,
		ResultA:       resultA,
		ResultB:       resultB,
		NetDelta:      resultB.NetIncome.Sub(resultA.NetIncome),
		StateTaxDelta: resultB.StateTax.Sub(resultA.StateTax),
	}, nil
}

// CompareStates evaluates the scenario in a base state and each alternative,
// ranks the alternatives by net income and generates recommendations
func (ce *CompareEngine) CompareStates(scenario domain.IncomeScenario, baseState string, alternatives []string) (*ComparisonSet, error) {
	baseResult, err := ce.evaluate(scenario, baseState)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base state: %w", err)
	}

	results := make([]ComparisonResult, 0, len(alternatives))
	for _, stateID := range alternatives {
		alt, err := ce.evaluate(scenario, stateID)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate state %s: %w", stateID, err)
		}
		if alt.StateID == baseResult.StateID {
			ce.Logger.Debugf("compare: skipping %s, same as base state", stateID)
			continue
		}
		results = append(results, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}
	SortByNetIncome(results)

	compSet := &ComparisonSet{
		GrossIncome:        scenario.GrossAnnualIncome,
		FilingStatus:       scenario.Profile.FilingStatus,
		BaseState:          baseResult.StateID,
		BaseResult:         &baseResult,
		AlternativeResults: results,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) evaluate(scenario domain.IncomeScenario, stateID string) (ComparisonResult, error) {
	id, rules, err := ce.CalcEngine.StateCalc.Resolve(stateID)
	if err != nil {
		return ComparisonResult{}, err
	}
	result, err := ce.CalcEngine.Evaluate(scenario.WithState(id))
	if err != nil {
		return ComparisonResult{}, err
	}
	return ce.MetricsCalculator.CalculateMetrics(id, rules, result), nil
}
