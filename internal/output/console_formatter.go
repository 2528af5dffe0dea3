package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a human-readable net pay breakdown
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(reports []Report) ([]byte, error) {
	var buf bytes.Buffer

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		res := r.Result
		title := "NET PAY BREAKDOWN"
		if r.Name != "" {
			title += ": " + r.Name
		}
		fmt.Fprintln(&buf, strings.Repeat("=", 60))
		fmt.Fprintln(&buf, title)
		fmt.Fprintln(&buf, strings.Repeat("=", 60))
		fmt.Fprintf(&buf, "Filing Status:        %s\n", r.Scenario.Profile.FilingStatus)
		fmt.Fprintf(&buf, "State:                %s\n", r.Scenario.Profile.StateID)
		if r.Scenario.Profile.Dependents > 0 {
			fmt.Fprintf(&buf, "Dependents:           %d\n", r.Scenario.Profile.Dependents)
		}
		fmt.Fprintln(&buf)

		line := func(label string, amount decimal.Decimal) {
			fmt.Fprintf(&buf, "%-22s%16s\n", label, FormatCurrency(amount))
		}
		line("Gross Income:", res.GrossIncome)
		if r.Scenario.PreTaxDeductions.IsPositive() {
			line("Pre-tax Deductions:", r.Scenario.PreTaxDeductions)
		}
		if res.InvestmentIncome.IsPositive() {
			line("Investment Income:", res.InvestmentIncome)
		}
		line("Federal Taxable:", res.TaxableIncome)
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		line("Federal Tax:", res.FederalTax)
		if res.AlternativeMinimumTax.IsPositive() {
			line("  incl. AMT:", res.AlternativeMinimumTax)
		}
		line("State Tax:", res.StateTax)
		line("FICA:", res.FICATax)
		if res.CapitalGainsTax.IsPositive() || res.NIIT.IsPositive() {
			line("Capital Gains Tax:", res.CapitalGainsTax)
			line("NIIT:", res.NIIT)
		}
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		line("Total Tax:", res.TotalTax)
		line("Net Income:", res.NetIncome)
		fmt.Fprintf(&buf, "%-22s%16s\n", "Effective Rate:", FormatPercentage(res.EffectiveRate))
		fmt.Fprintf(&buf, "%-22s%16s\n", "Marginal Rate:", FormatPercentage(r.MarginalRate))
		fmt.Fprintln(&buf)

		fmt.Fprintf(&buf, "%-14s%16s%16s\n", "Pay Period", "Gross", "Net")
		for _, p := range r.Periods {
			fmt.Fprintf(&buf, "%-14s%16s%16s\n", p.Period, FormatCurrency(p.Gross), FormatCurrency(p.Net))
		}
	}

	if len(reports) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "ASSUMPTIONS:")
		for _, a := range DefaultAssumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
	}

	return buf.Bytes(), nil
}
