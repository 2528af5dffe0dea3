package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing states
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("STATE TAX COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Gross Income:  $%s\n", compSet.GrossIncome.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Filing Status: %s\n", compSet.FilingStatus))
	sb.WriteString(fmt.Sprintf("Base State:    %s\n", compSet.BaseState))
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "State",
		numWidth, "Net Income",
		numWidth, "State Tax",
		numWidth, "Total Tax",
		numWidth, "Eff. Rate"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", displayName(&alt)))
			sb.WriteString(fmt.Sprintf("  Net Income:  %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				tf.formatDecimal(alt.NetDiffFromBase.Abs()),
				alt.NetPctFromBase.StringFixed(1)))
			if !alt.StateTaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  State Tax:   %s$%s\n",
					tf.deltaSymbol(alt.StateTaxDiffFromBase),
					tf.formatDecimal(alt.StateTaxDiffFromBase.Abs())))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatPair renders a two-state comparison
func (tf *TableFormatter) FormatPair(cmp *StateComparison) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s vs %s at $%s gross\n", cmp.StateA, cmp.StateB, cmp.GrossIncome.StringFixed(2)))
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-16s %14s %14s %14s\n", "", cmp.StateA, cmp.StateB, "B - A"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	rows := []struct {
		label string
		a, b  decimal.Decimal
	}{
		{"Federal Tax", cmp.ResultA.FederalTax, cmp.ResultB.FederalTax},
		{"State Tax", cmp.ResultA.StateTax, cmp.ResultB.StateTax},
		{"FICA", cmp.ResultA.FICATax, cmp.ResultB.FICATax},
		{"Total Tax", cmp.ResultA.TotalTax, cmp.ResultB.TotalTax},
		{"Net Income", cmp.ResultA.NetIncome, cmp.ResultB.NetIncome},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-16s %14s %14s %14s\n", r.label,
			r.a.StringFixed(2), r.b.StringFixed(2), r.b.Sub(r.a).StringFixed(2)))
	}
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	return sb.String()
}

// formatRow formats a single state row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := displayName(result)
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+tf.formatDecimal(result.NetIncome),
		numWidth, "$"+tf.formatDecimal(result.StateTax),
		numWidth, "$"+tf.formatDecimal(result.TotalTax),
		numWidth, result.EffectiveRate.Mul(decimal.NewFromInt(100)).StringFixed(2)+"%")
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each state
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseState))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		netChange := "="
		if alt.NetDiffFromBase.IsPositive() {
			netChange = fmt.Sprintf("+$%s", tf.formatDecimal(alt.NetDiffFromBase))
		} else if alt.NetDiffFromBase.IsNegative() {
			netChange = fmt.Sprintf("-$%s", tf.formatDecimal(alt.NetDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.StateID, netChange))
	}

	return sb.String()
}
