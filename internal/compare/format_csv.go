package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"State",
		"Name",
		"Type",
		"Policy",
		"Net Income",
		"State Tax",
		"Total Tax",
		"Effective Rate",
		"Net Diff from Base",
		"Net % Change",
		"State Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, rowType string) []string {
	return []string{
		result.StateID,
		result.StateName,
		rowType,
		string(result.Policy),
		result.NetIncome.StringFixed(2),
		result.StateTax.StringFixed(2),
		result.TotalTax.StringFixed(2),
		result.EffectiveRate.StringFixed(4),
		result.NetDiffFromBase.StringFixed(2),
		result.NetPctFromBase.StringFixed(2),
		result.StateTaxDiffFromBase.StringFixed(2),
	}
}
