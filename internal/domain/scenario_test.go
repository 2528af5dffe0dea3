package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScenario() IncomeScenario {
	return IncomeScenario{
		GrossAnnualIncome: decimal.NewFromInt(100000),
		Profile: FilingProfile{
			FilingStatus: FilingSingle,
			StateID:      "TX",
		},
	}
}

func TestParseFilingStatus(t *testing.T) {
	cases := map[string]FilingStatus{
		"single":            FilingSingle,
		" S ":               FilingSingle,
		"MFJ":               FilingMarriedJoint,
		"married-joint":     FilingMarriedJoint,
		"mfs":               FilingMarriedSeparate,
		"separate":          FilingMarriedSeparate,
		"hoh":               FilingHeadOfHousehold,
		"head_of_household": FilingHeadOfHousehold,
	}
	for in, want := range cases {
		got, err := ParseFilingStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFilingStatus("widowed")
	var scenarioErr *InvalidScenarioError
	require.ErrorAs(t, err, &scenarioErr)
	assert.Equal(t, "filing_status", scenarioErr.Field)
}

func TestIncomeScenario_Validate(t *testing.T) {
	assert.NoError(t, validScenario().Validate())

	tests := []struct {
		name   string
		mutate func(*IncomeScenario)
		field  string
	}{
		{"negative gross", func(s *IncomeScenario) { s.GrossAnnualIncome = decimal.NewFromInt(-1) }, "gross_annual_income"},
		{"negative pretax", func(s *IncomeScenario) { s.PreTaxDeductions = decimal.NewFromInt(-1) }, "pre_tax_deductions"},
		{"negative gains", func(s *IncomeScenario) { s.CapitalGainsAmount = decimal.NewFromInt(-5) }, "capital_gains_amount"},
		{"negative recapture", func(s *IncomeScenario) { s.DepreciationRecaptureAmount = decimal.NewFromInt(-5) }, "depreciation_recapture_amount"},
		{"bad status", func(s *IncomeScenario) { s.Profile.FilingStatus = "joint-ish" }, "filing_status"},
		{"negative dependents", func(s *IncomeScenario) { s.Profile.Dependents = -1 }, "dependents"},
		{"missing state", func(s *IncomeScenario) { s.Profile.StateID = "  " }, "state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validScenario()
			tt.mutate(&s)
			err := s.Validate()

			var scenarioErr *InvalidScenarioError
			require.ErrorAs(t, err, &scenarioErr)
			assert.Equal(t, tt.field, scenarioErr.Field)
		})
	}
}

func TestIncomeScenario_Copies(t *testing.T) {
	base := validScenario()

	richer := base.WithGross(decimal.NewFromInt(250000))
	moved := base.WithState("CA")

	assert.True(t, base.GrossAnnualIncome.Equal(decimal.NewFromInt(100000)), "WithGross must not mutate the template")
	assert.Equal(t, "TX", base.Profile.StateID, "WithState must not mutate the template")
	assert.True(t, richer.GrossAnnualIncome.Equal(decimal.NewFromInt(250000)))
	assert.Equal(t, "CA", moved.Profile.StateID)
}

func TestIncomeScenario_AdjustedGrossIncome(t *testing.T) {
	s := validScenario()
	s.PreTaxDeductions = decimal.NewFromInt(20000)
	s.CapitalGainsAmount = decimal.NewFromInt(5000)
	s.DepreciationRecaptureAmount = decimal.NewFromInt(1000)

	assert.True(t, s.InvestmentIncome().Equal(decimal.NewFromInt(6000)))
	assert.True(t, s.AdjustedGrossIncome().Equal(decimal.NewFromInt(86000)))

	// Pre-tax deductions larger than wages do not offset investment income
	s.PreTaxDeductions = decimal.NewFromInt(150000)
	assert.True(t, s.AdjustedGrossIncome().Equal(decimal.NewFromInt(6000)))
}

func TestNewTaxResult(t *testing.T) {
	r := NewTaxResult(
		decimal.NewFromInt(100000),
		decimal.NewFromInt(13449),
		decimal.NewFromInt(5000),
		decimal.NewFromInt(7650),
		decimal.Zero,
		decimal.Zero,
	)

	assert.True(t, r.TotalTax.Equal(decimal.NewFromInt(26099)))
	assert.True(t, r.NetIncome.Equal(decimal.NewFromInt(73901)))
	assert.True(t, r.NetIncome.Add(r.TotalTax).Equal(r.GrossIncome))
	assert.True(t, r.EffectiveRate.Equal(decimal.NewFromFloat(0.26099)))

	zero := NewTaxResult(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, zero.EffectiveRate.IsZero())
}
