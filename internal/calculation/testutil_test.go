package calculation

import (
	"testing"

	"github.com/rgehrsitz/netpay/internal/config"
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testRules returns the embedded rules plus a flat 5% state with no
// deduction, registered as ZZ
func testRules(t *testing.T) *domain.TaxRules {
	t.Helper()
	rules, err := config.DefaultRules()
	require.NoError(t, err)
	rules.States["ZZ"] = domain.StateRules{
		Name:   "Flatland",
		Policy: domain.PolicyFlat,
		Rate:   decimal.NewFromFloat(0.05),
	}
	require.NoError(t, rules.Validate())
	return rules
}

func testEngine(t *testing.T) *CalculationEngine {
	t.Helper()
	return NewCalculationEngine(testRules(t))
}

func scenario(gross int64, status domain.FilingStatus, state string) domain.IncomeScenario {
	return domain.IncomeScenario{
		GrossAnnualIncome: decimal.NewFromInt(gross),
		Profile: domain.FilingProfile{
			FilingStatus: status,
			StateID:      state,
		},
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestLogger records formatted messages
type TestLogger struct {
	Messages []string
}

func (l *TestLogger) Debugf(format string, args ...any) { l.Messages = append(l.Messages, format) }
func (l *TestLogger) Infof(format string, args ...any)  { l.Messages = append(l.Messages, format) }
func (l *TestLogger) Warnf(format string, args ...any)  { l.Messages = append(l.Messages, format) }
func (l *TestLogger) Errorf(format string, args ...any) { l.Messages = append(l.Messages, format) }
