package compare

import (
	"testing"

	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(gross, state int64) domain.TaxResult {
	return domain.NewTaxResult(decimal.NewFromInt(gross), decimal.NewFromInt(10000), decimal.NewFromInt(state),
		decimal.Zero, decimal.Zero, decimal.Zero)
}

func TestCalculateMetrics(t *testing.T) {
	mc := NewMetricsCalculator()
	rules := domain.StateRules{Name: "Colorado", Policy: domain.PolicyFlat}

	r := mc.CalculateMetrics("CO", rules, result(100000, 4000))
	assert.Equal(t, "CO", r.StateID)
	assert.Equal(t, "Colorado", r.StateName)
	assert.Equal(t, domain.PolicyFlat, r.Policy)
	assert.True(t, r.NetIncome.Equal(decimal.NewFromInt(86000)))
	assert.True(t, r.StateTax.Equal(decimal.NewFromInt(4000)))
	assert.True(t, r.TotalTax.Equal(decimal.NewFromInt(14000)))
	assert.True(t, r.EffectiveRate.Equal(decimal.NewFromFloat(0.14)))
}

func TestCalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()
	base := mc.CalculateMetrics("CO", domain.StateRules{Name: "Colorado"}, result(100000, 4000))
	alt := mc.CalculateMetrics("TX", domain.StateRules{Name: "Texas"}, result(100000, 0))

	cmp := mc.CalculateComparison(alt, base)
	assert.True(t, cmp.NetDiffFromBase.Equal(decimal.NewFromInt(4000)))
	assert.True(t, cmp.StateTaxDiffFromBase.Equal(decimal.NewFromInt(-4000)))
	assert.Equal(t, "4.65", cmp.NetPctFromBase.StringFixed(2))

	// A zero base net leaves the percentage at zero
	zero := mc.CalculateMetrics("ZZ", domain.StateRules{}, domain.TaxResult{})
	cmp = mc.CalculateComparison(alt, zero)
	assert.True(t, cmp.NetPctFromBase.IsZero())
}

func TestSortByNetIncome(t *testing.T) {
	results := []ComparisonResult{
		{StateID: "A", NetIncome: decimal.NewFromInt(10)},
		{StateID: "B", NetIncome: decimal.NewFromInt(30)},
		{StateID: "C", NetIncome: decimal.NewFromInt(20)},
		{StateID: "D", NetIncome: decimal.NewFromInt(30)},
	}
	SortByNetIncome(results)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.StateID
	}
	assert.Equal(t, []string{"B", "D", "C", "A"}, ids)
}

func TestGenerateRecommendations(t *testing.T) {
	mc := NewMetricsCalculator()
	base := mc.CalculateMetrics("CO", domain.StateRules{Name: "Colorado", Policy: domain.PolicyFlat}, result(100000, 4000))

	t.Run("better alternative", func(t *testing.T) {
		tx := mc.CalculateComparison(mc.CalculateMetrics("TX", domain.StateRules{Name: "Texas", Policy: domain.PolicyNone}, result(100000, 0)), base)
		ca := mc.CalculateComparison(mc.CalculateMetrics("CA", domain.StateRules{Name: "California", Policy: domain.PolicyProgressive}, result(100000, 5000)), base)

		recs := GenerateRecommendations(&ComparisonSet{BaseResult: &base, AlternativeResults: []ComparisonResult{tx, ca}})
		require.Len(t, recs, 3)
		assert.Equal(t, "Best Take-Home: Texas keeps $4000 more per year than Colorado", recs[0])
		assert.Equal(t, "1 of 2 alternatives would reduce take-home pay", recs[1])
		assert.Equal(t, "Texas has no state income tax: saves $4000 in state tax", recs[2])
	})

	t.Run("base is best", func(t *testing.T) {
		ca := mc.CalculateComparison(mc.CalculateMetrics("CA", domain.StateRules{Name: "California"}, result(100000, 5000)), base)

		recs := GenerateRecommendations(&ComparisonSet{BaseResult: &base, AlternativeResults: []ComparisonResult{ca}})
		require.Len(t, recs, 2)
		assert.Contains(t, recs[0], "Colorado already has the highest take-home pay")
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, GenerateRecommendations(&ComparisonSet{BaseResult: &base}))
		assert.Empty(t, GenerateRecommendations(&ComparisonSet{}))
	})
}
