package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalTOML = `
[federal_tax.standard_deduction]
single = 15750

[[federal_tax.brackets.single]]
min = 0
max = 11925
rate = 0.10

[[federal_tax.brackets.single]]
min = 11925
rate = 0.12

[fica]
social_security_rate = 0.062
social_security_wage_base = 176100
medicare_rate = 0.0145
additional_medicare_rate = 0.009

[fica.additional_medicare_threshold]
single = 200000

[capital_gains]
niit_rate = 0.038

[[capital_gains.brackets.single]]
min = 0
rate = 0.15

[states.ZZ]
name = "Flatland"
policy = "flat"
rate = 0.05
`

func TestDefaultRules(t *testing.T) {
	rules, err := DefaultRules()
	require.NoError(t, err)

	assert.Equal(t, 2025, rules.Metadata.DataYear)
	assert.True(t, rules.Federal.StandardDeduction.For(domain.FilingMarriedJoint).Equal(decimal.NewFromInt(31500)))
	require.NotNil(t, rules.Federal.AMT)
	assert.True(t, rules.FICA.SocialSecurityWageBase.Equal(decimal.NewFromInt(176100)))

	single := rules.Federal.Brackets.For(domain.FilingSingle)
	require.Len(t, single, 7)
	_, bounded := single[6].Upper()
	assert.False(t, bounded)

	for _, id := range []string{"TX", "PA", "IL", "CO", "MA", "CA", "NY"} {
		assert.Contains(t, rules.States, id)
	}
	assert.Equal(t, domain.PolicyNone, rules.States["TX"].Policy)
	assert.Equal(t, domain.PolicyProgressive, rules.States["CA"].Policy)

	// Each call returns an independent copy
	rules.States["ZZ"] = domain.StateRules{Name: "Flatland", Policy: domain.PolicyNone}
	again, err := DefaultRules()
	require.NoError(t, err)
	assert.NotContains(t, again.States, "ZZ")
}

func TestRulesLoader_ParseTOML(t *testing.T) {
	rules, err := NewRulesLoader().Parse([]byte(minimalTOML), FormatTOML)
	require.NoError(t, err)

	single := rules.Federal.Brackets.For(domain.FilingSingle)
	require.Len(t, single, 2)
	upper, ok := single[0].Upper()
	require.True(t, ok)
	assert.True(t, upper.Equal(decimal.NewFromInt(11925)))
	assert.True(t, single[1].Rate.Equal(decimal.NewFromFloat(0.12)))
	assert.True(t, rules.FICA.MedicareRate.Equal(decimal.NewFromFloat(0.0145)))

	zz := rules.States["ZZ"]
	assert.Equal(t, domain.PolicyFlat, zz.Policy)
	assert.True(t, zz.Rate.Equal(decimal.NewFromFloat(0.05)))

	// Status lookups fall back to the single table
	assert.Len(t, rules.Federal.Brackets.For(domain.FilingHeadOfHousehold), 2)
}

func TestRulesLoader_UnknownKeys(t *testing.T) {
	loader := NewRulesLoader()

	_, err := loader.Parse([]byte(minimalTOML+"\n[metadata]\nbogus = 1\n"), FormatTOML)
	assert.ErrorContains(t, err, "unknown key metadata.bogus")

	yamlDoc := strings.Replace(string(defaultRulesYAML), "federal_tax:\n", "federal_tax:\n  bogus: 1\n", 1)
	_, err = loader.Parse([]byte(yamlDoc), FormatYAML)
	assert.ErrorContains(t, err, "bogus")
}

func TestRulesLoader_InvalidTables(t *testing.T) {
	loader := NewRulesLoader()

	tests := []struct {
		name    string
		old     string
		new     string
		table   string
		message string
	}{
		{
			name:  "gap between brackets",
			old:   "{ min: 11925, max: 48475, rate: 0.12 }",
			new:   "{ min: 12000, max: 48475, rate: 0.12 }",
			table: "federal.brackets.single",
		},
		{
			name:  "rate above one",
			old:   "rate: 0.0307",
			new:   "rate: 1.5",
			table: "states.PA.rate",
		},
		{
			name:  "unknown policy",
			old:   "policy: flat\n    rate: 0.0307",
			new:   "policy: graduated\n    rate: 0.0307",
			table: "states.PA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(string(defaultRulesYAML), tt.old, tt.new, 1)
			require.NotEqual(t, string(defaultRulesYAML), doc)

			_, err := loader.Parse([]byte(doc), FormatYAML)
			var tableErr *domain.InvalidTableError
			require.ErrorAs(t, err, &tableErr)
			assert.Equal(t, tt.table, tableErr.Table)
		})
	}

	_, err := loader.Parse([]byte("states: {}\n"), FormatYAML)
	assert.ErrorContains(t, err, "federal_tax.standard_deduction is required")

	_, err = loader.Parse([]byte("federal_tax: [1, 2"), FormatYAML)
	assert.ErrorContains(t, err, "failed to parse YAML")

	_, err = loader.Parse(nil, Format("ini"))
	assert.ErrorContains(t, err, "unsupported rules format")
}

func TestRulesLoader_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	loader := NewRulesLoader()

	tomlPath := filepath.Join(dir, "rules.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(minimalTOML), 0o644))
	rules, err := loader.LoadFromFile(tomlPath)
	require.NoError(t, err)
	assert.Contains(t, rules.States, "ZZ")

	yamlPath := filepath.Join(dir, "rules.yml")
	require.NoError(t, os.WriteFile(yamlPath, defaultRulesYAML, 0o644))
	rules, err = loader.LoadFromFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, rules.States, "CA")

	_, err = loader.LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")

	_, err = loader.LoadFromFile(filepath.Join(dir, "rules.json"))
	assert.ErrorContains(t, err, "unsupported rules file extension")
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path   string
		format Format
		ok     bool
	}{
		{"rules.yaml", FormatYAML, true},
		{"dir/RULES.YML", FormatYAML, true},
		{"rules.toml", FormatTOML, true},
		{"rules.ini", "", false},
		{"rules", "", false},
	}
	for _, tt := range tests {
		format, err := FormatFromPath(tt.path)
		if tt.ok {
			require.NoError(t, err, tt.path)
			assert.Equal(t, tt.format, format)
		} else {
			assert.Error(t, err, tt.path)
		}
	}
}
