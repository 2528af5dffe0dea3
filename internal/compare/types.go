package compare

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// StateComparison is the pairwise comparison of one income in two states.
// Deltas are signed B minus A.
type StateComparison struct {
	GrossIncome   decimal.Decimal  `json:"gross_income"`
	StateA        string           `json:"state_a"`
	StateB        string           `json:"state_b"`
	ResultA       domain.TaxResult `json:"result_a"`
	ResultB       domain.TaxResult `json:"result_b"`
	NetDelta      decimal.Decimal  `json:"net_delta"`
	StateTaxDelta decimal.Decimal  `json:"state_tax_delta"`
}

// ComparisonResult is one state's outcome with metrics relative to the base state
type ComparisonResult struct {
	StateID   string             `json:"state"`
	StateName string             `json:"stateName"`
	Policy    domain.StatePolicy `json:"policy"`
	Result    domain.TaxResult   `json:"result"`

	// Key Metrics
	NetIncome     decimal.Decimal `json:"netIncome"`
	StateTax      decimal.Decimal `json:"stateTax"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`

	// Comparison to Base
	NetDiffFromBase      decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase       decimal.Decimal `json:"netPctFromBase"`
	StateTaxDiffFromBase decimal.Decimal `json:"stateTaxDiffFromBase"`
}

// ComparisonSet represents a base state compared against alternatives
type ComparisonSet struct {
	GrossIncome        decimal.Decimal     `json:"grossIncome"`
	FilingStatus       domain.FilingStatus `json:"filingStatus"`
	BaseState          string              `json:"baseState"`
	BaseResult         *ComparisonResult   `json:"baseResult"`
	AlternativeResults []ComparisonResult  `json:"alternativeResults"`
	Recommendations    []string            `json:"recommendations"`
}

// MetricsCalculator extracts key metrics from tax results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for one state's result
func (mc *MetricsCalculator) CalculateMetrics(stateID string, rules domain.StateRules, result domain.TaxResult) ComparisonResult {
	return ComparisonResult{
		StateID:       stateID,
		StateName:     rules.Name,
		Policy:        rules.Policy,
		Result:        result,
		NetIncome:     result.NetIncome,
		StateTax:      result.StateTax,
		TotalTax:      result.TotalTax,
		EffectiveRate: result.EffectiveRate,
	}
}

// CalculateComparison computes comparison metrics between a state and the base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.NetDiffFromBase = alt.NetIncome.Sub(base.NetIncome)

	if !base.NetIncome.IsZero() {
		alt.NetPctFromBase = alt.NetDiffFromBase.
			Div(base.NetIncome.Abs()).
			Mul(decimal.NewFromInt(100))
	}

	alt.StateTaxDiffFromBase = alt.StateTax.Sub(base.StateTax)
	return alt
}

// SortByNetIncome orders alternatives from highest to lowest net income
func SortByNetIncome(results []ComparisonResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].NetIncome.GreaterThan(results[j].NetIncome)
	})
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Highest take-home pay
	best := base
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].NetIncome.GreaterThan(best.NetIncome) {
			best = &compSet.AlternativeResults[i]
		}
	}
	if best != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Best Take-Home: %s keeps $%s more per year than %s",
				displayName(best), best.NetIncome.Sub(base.NetIncome).StringFixed(0), displayName(base)))
	} else {
		recommendations = append(recommendations,
			fmt.Sprintf("%s already has the highest take-home pay of the states compared", displayName(base)))
	}

	// Alternatives that cost more than the base
	worse := 0
	for _, alt := range compSet.AlternativeResults {
		if alt.NetIncome.LessThan(base.NetIncome) {
			worse++
		}
	}
	if worse > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("%d of %d alternatives would reduce take-home pay", worse, len(compSet.AlternativeResults)))
	}

	// No-income-tax states in the set
	for _, alt := range compSet.AlternativeResults {
		if alt.Policy == domain.PolicyNone && base.Policy != domain.PolicyNone {
			recommendations = append(recommendations,
				fmt.Sprintf("%s has no state income tax: saves $%s in state tax",
					displayName(&alt), alt.StateTaxDiffFromBase.Neg().StringFixed(0)))
			break
		}
	}

	return recommendations
}

func displayName(r *ComparisonResult) string {
	if r.StateName != "" {
		return r.StateName
	}
	return r.StateID
}
