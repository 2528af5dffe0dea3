package compare

import (
	"testing"

	"github.com/rgehrsitz/netpay/internal/calculation"
	"github.com/rgehrsitz/netpay/internal/config"
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine adds a flat 5% state without a deduction as ZZ
func newTestEngine(t *testing.T) *CompareEngine {
	t.Helper()
	rules, err := config.DefaultRules()
	require.NoError(t, err)
	rules.States["ZZ"] = domain.StateRules{
		Name:   "Flatland",
		Policy: domain.PolicyFlat,
		Rate:   decimal.NewFromFloat(0.05),
	}
	require.NoError(t, rules.Validate())
	return NewCompareEngine(calculation.NewCalculationEngine(rules))
}

func single(gross int64) domain.IncomeScenario {
	return domain.IncomeScenario{
		GrossAnnualIncome: decimal.NewFromInt(gross),
		Profile:           domain.FilingProfile{FilingStatus: domain.FilingSingle, StateID: "ZZ"},
	}
}

func TestCompare(t *testing.T) {
	ce := newTestEngine(t)

	cmp, err := ce.Compare(decimal.NewFromInt(80000), single(0), "ZZ", "TX")
	require.NoError(t, err)

	assert.Equal(t, "ZZ", cmp.StateA)
	assert.Equal(t, "TX", cmp.StateB)
	assert.True(t, cmp.ResultA.StateTax.Equal(decimal.NewFromInt(4000)), cmp.ResultA.StateTax.String())
	assert.True(t, cmp.StateTaxDelta.Equal(decimal.NewFromInt(-4000)))
	assert.True(t, cmp.NetDelta.Equal(decimal.NewFromInt(4000)))
	assert.True(t, cmp.ResultA.FederalTax.Equal(cmp.ResultB.FederalTax))

	// Swapping the states flips the sign
	swapped, err := ce.Compare(decimal.NewFromInt(80000), single(0), "TX", "ZZ")
	require.NoError(t, err)
	assert.True(t, swapped.NetDelta.Equal(cmp.NetDelta.Neg()))

	_, err = ce.Compare(decimal.NewFromInt(80000), single(0), "ZZ", "Atlantis")
	var unknown *domain.UnknownJurisdictionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Atlantis", unknown.StateID)
}

func TestCompareStates(t *testing.T) {
	ce := newTestEngine(t)

	set, err := ce.CompareStates(single(80000), "ZZ", []string{"CA", "flatland", "texas"})
	require.NoError(t, err)

	assert.Equal(t, "ZZ", set.BaseState)
	assert.Equal(t, domain.FilingSingle, set.FilingStatus)
	require.NotNil(t, set.BaseResult)
	assert.Equal(t, "Flatland", set.BaseResult.StateName)

	// The base state given by name is skipped
	require.Len(t, set.AlternativeResults, 2)
	assert.Equal(t, "TX", set.AlternativeResults[0].StateID)
	assert.Equal(t, "CA", set.AlternativeResults[1].StateID)
	assert.True(t, set.AlternativeResults[0].NetDiffFromBase.Equal(decimal.NewFromInt(4000)))

	require.NotEmpty(t, set.Recommendations)
	assert.Contains(t, set.Recommendations[0], "Texas")
}

func TestCompareStates_Errors(t *testing.T) {
	ce := newTestEngine(t)

	_, err := ce.CompareStates(single(80000), "Atlantis", []string{"TX"})
	assert.ErrorContains(t, err, "failed to calculate base state")

	_, err = ce.CompareStates(single(80000), "TX", []string{"Atlantis"})
	assert.ErrorContains(t, err, "failed to calculate state Atlantis")

	bad := single(80000)
	bad.PreTaxDeductions = decimal.NewFromInt(-1)
	_, err = ce.CompareStates(bad, "TX", []string{"CA"})
	var invalid *domain.InvalidScenarioError
	assert.ErrorAs(t, err, &invalid)
}
