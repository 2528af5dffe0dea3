package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParser_Parse(t *testing.T) {
	doc := `
scenarios:
  - name: base
    gross_annual_income: 100000
    pre_tax_deductions: 23500
    filing_profile:
      filing_status: mfj
      state: TX
      dependents: 2
  - gross_annual_income: 50000.50
    capital_gains_amount: 1200
    filing_profile: { filing_status: HOH, state: california }
`
	scenarios, err := NewInputParser().Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	base := scenarios[0]
	assert.Equal(t, "base", base.Name)
	assert.True(t, base.GrossAnnualIncome.Equal(decimal.NewFromInt(100000)))
	assert.True(t, base.PreTaxDeductions.Equal(decimal.NewFromInt(23500)))
	assert.Equal(t, domain.FilingMarriedJoint, base.Profile.FilingStatus)
	assert.Equal(t, "TX", base.Profile.StateID)
	assert.Equal(t, 2, base.Profile.Dependents)

	second := scenarios[1]
	assert.Equal(t, "scenario-2", second.Name)
	assert.Equal(t, "50000.5", second.GrossAnnualIncome.String())
	assert.True(t, second.CapitalGainsAmount.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, domain.FilingHeadOfHousehold, second.Profile.FilingStatus)
}

func TestInputParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		message string
	}{
		{"empty", "scenarios: []\n", "no scenarios provided"},
		{"malformed", "scenarios: [", "failed to parse YAML"},
		{
			"duplicate names",
			`
scenarios:
  - { name: a, gross_annual_income: 1, filing_profile: { filing_status: single, state: TX } }
  - { name: a, gross_annual_income: 2, filing_profile: { filing_status: single, state: TX } }
`,
			`duplicate name "a"`,
		},
		{
			"unknown status",
			`
scenarios:
  - { name: a, gross_annual_income: 1, filing_profile: { filing_status: widowed, state: TX } }
`,
			"unsupported filing status",
		},
		{
			"missing state",
			`
scenarios:
  - { name: a, gross_annual_income: 1, filing_profile: { filing_status: single } }
`,
			"state is required",
		},
		{
			"missing status",
			`
scenarios:
  - { name: a, gross_annual_income: 1, filing_profile: { state: TX } }
`,
			"unsupported filing status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.doc))
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func TestInputParser_NegativeAmount(t *testing.T) {
	doc := `
scenarios:
  - name: negative
    gross_annual_income: 1000
    pre_tax_deductions: -5
    filing_profile: { filing_status: single, state: TX }
`
	_, err := NewInputParser().Parse([]byte(doc))
	var invalid *domain.InvalidScenarioError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "pre_tax_deductions", invalid.Field)
	assert.Contains(t, err.Error(), "scenario 0 (negative)")
}

func TestInputParser_LoadFromFile(t *testing.T) {
	scenarios, err := NewInputParser().LoadFromFile("../../test/testdata/scenarios.yaml")
	require.NoError(t, err)
	require.Len(t, scenarios, 3)
	assert.Equal(t, "california", scenarios[1].Profile.StateID)

	_, err = NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read file")

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n"), 0o644))
	_, err = NewInputParser().LoadFromFile(path)
	assert.ErrorContains(t, err, "no scenarios provided")
}
