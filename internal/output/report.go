package output

import (
	"strings"

	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// PayPeriod is a payroll frequency
type PayPeriod struct {
	Name    string
	PerYear int
}

// PayPeriods are the frequencies shown in reports
var PayPeriods = []PayPeriod{
	{"annual", 1},
	{"monthly", 12},
	{"semi-monthly", 24},
	{"bi-weekly", 26},
	{"weekly", 52},
}

// PayPeriodByName looks up a pay period by name
func PayPeriodByName(name string) (PayPeriod, bool) {
	for _, p := range PayPeriods {
		if p.Name == strings.ToLower(name) {
			return p, true
		}
	}
	return PayPeriod{}, false
}

// Annualize converts a per-period amount into an annual amount
func (p PayPeriod) Annualize(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(p.PerYear)))
}

// PerPeriod splits an annual amount across the period count
func (p PayPeriod) PerPeriod(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(decimal.NewFromInt(int64(p.PerYear)))
}

// PeriodAmount is net pay for one pay period
type PeriodAmount struct {
	Period string          `json:"period"`
	Gross  decimal.Decimal `json:"gross"`
	Net    decimal.Decimal `json:"net"`
}

// Report is one evaluated scenario ready for formatting
type Report struct {
	Name         string                `json:"name"`
	Scenario     domain.IncomeScenario `json:"scenario"`
	Result       domain.TaxResult      `json:"result"`
	MarginalRate decimal.Decimal       `json:"marginal_rate"`
	Periods      []PeriodAmount        `json:"pay_periods"`
}

// NewReport builds a report including the per-period breakdown
func NewReport(name string, scenario domain.IncomeScenario, result domain.TaxResult, marginal decimal.Decimal) Report {
	r := Report{
		Name:         name,
		Scenario:     scenario,
		Result:       result,
		MarginalRate: marginal,
	}
	for _, p := range PayPeriods {
		r.Periods = append(r.Periods, PeriodAmount{
			Period: p.Name,
			Gross:  p.PerPeriod(result.GrossIncome).Round(2),
			Net:    p.PerPeriod(result.NetIncome).Round(2),
		})
	}
	return r
}

// FormatCurrency formats a decimal as currency with thousands separators
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var sb strings.Builder
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		sb.WriteByte('-')
	}
	sb.WriteByte('$')
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	sb.WriteString(frac)
	return sb.String()
}

// FormatPercentage formats a fractional rate as a percentage
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
