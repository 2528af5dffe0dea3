package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(name string) Report {
	scenario := domain.IncomeScenario{
		GrossAnnualIncome: decimal.NewFromInt(100000),
		Profile:           domain.FilingProfile{FilingStatus: domain.FilingSingle, StateID: "ZZ"},
	}
	result := domain.NewTaxResult(decimal.NewFromInt(100000), decimal.NewFromInt(13449), decimal.NewFromInt(5000),
		decimal.NewFromInt(7650), decimal.Zero, decimal.Zero)
	return NewReport(name, scenario, result, decimal.NewFromFloat(0.2965))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"85000", "$85,000.00"},
		{"999.995", "$1,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"100", "$100.00"},
		{"-1500", "-$1,500.00"},
		{"-0.001", "$0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "26.10%", FormatPercentage(decimal.NewFromFloat(0.26099)))
	assert.Equal(t, "0.00%", FormatPercentage(decimal.Zero))
}

func TestPayPeriods(t *testing.T) {
	p, ok := PayPeriodByName("Bi-Weekly")
	require.True(t, ok)
	assert.Equal(t, 26, p.PerYear)
	assert.True(t, p.Annualize(decimal.NewFromInt(2000)).Equal(decimal.NewFromInt(52000)))
	assert.True(t, p.PerPeriod(decimal.NewFromInt(52000)).Equal(decimal.NewFromInt(2000)))

	_, ok = PayPeriodByName("fortnightly")
	assert.False(t, ok)
}

func TestNewReport(t *testing.T) {
	r := sampleReport("base")
	require.Len(t, r.Periods, len(PayPeriods))

	byName := map[string]PeriodAmount{}
	for _, p := range r.Periods {
		byName[p.Period] = p
	}
	assert.Equal(t, "100000.00", byName["annual"].Gross.StringFixed(2))
	assert.Equal(t, "73901.00", byName["annual"].Net.StringFixed(2))
	assert.Equal(t, "8333.33", byName["monthly"].Gross.StringFixed(2))
	assert.Equal(t, "6158.42", byName["monthly"].Net.StringFixed(2))
	assert.Equal(t, "3846.15", byName["bi-weekly"].Gross.StringFixed(2))
}

func TestFormatterRegistry(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, FormatterNames())
	for _, name := range FormatterNames() {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("html"))
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format([]Report{sampleReport("base")})
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "NET PAY BREAKDOWN: base")
	assert.Contains(t, text, "Gross Income:")
	assert.Contains(t, text, "$100,000.00")
	assert.Contains(t, text, "$73,901.00")
	assert.Contains(t, text, "26.10%")
	assert.Contains(t, text, "29.65%")
	assert.Contains(t, text, "ASSUMPTIONS:")
	assert.NotContains(t, text, "NIIT")
	assert.NotContains(t, text, "incl. AMT")

	empty, err := ConsoleFormatter{}.Format(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format([]Report{sampleReport("a"), sampleReport("b")})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,State,FilingStatus,Gross"))
	assert.Equal(t, "a,ZZ,single,100000.00,13449.00,5000.00,7650.00,0.00,0.00,26099.00,73901.00,0.2610,0.2965", lines[1])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format([]Report{sampleReport("base")})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "base", decoded[0]["name"])
	assert.Contains(t, decoded[0], "pay_periods")

	result := decoded[0]["result"].(map[string]any)
	assert.Equal(t, "73901", result["net_income"])
}
