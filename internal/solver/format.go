package solver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a solver result
func (tf *TableFormatter) Format(result *domain.SolverResult) string {
	var sb strings.Builder

	sb.WriteString("GROSS-FOR-NET SOLUTION\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Converged)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("TARGET NET INCOME MATCH\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Target Net Income:   $%s\n", tf.formatCurrency(result.TargetNetIncome)))
	sb.WriteString(fmt.Sprintf("Required Gross:      $%s\n", tf.formatCurrency(result.RequiredGrossIncome)))
	sb.WriteString(fmt.Sprintf("Achieved Net Income: $%s\n", tf.formatCurrency(result.AchievedNetIncome)))
	diff := result.AchievedNetIncome.Sub(result.TargetNetIncome)
	sb.WriteString(fmt.Sprintf("Difference:          %s$%s\n", tf.deltaSymbol(diff), tf.formatCurrency(diff.Abs())))

	if r := result.Result; r != nil {
		sb.WriteString("\nTAXES AT REQUIRED GROSS\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		sb.WriteString(fmt.Sprintf("Federal:             $%s\n", tf.formatCurrency(r.FederalTax)))
		sb.WriteString(fmt.Sprintf("State:               $%s\n", tf.formatCurrency(r.StateTax)))
		sb.WriteString(fmt.Sprintf("FICA:                $%s\n", tf.formatCurrency(r.FICATax)))
		if !r.CapitalGainsTax.IsZero() || !r.NIIT.IsZero() {
			sb.WriteString(fmt.Sprintf("Capital Gains:       $%s\n", tf.formatCurrency(r.CapitalGainsTax)))
			sb.WriteString(fmt.Sprintf("NIIT:                $%s\n", tf.formatCurrency(r.NIIT)))
		}
		sb.WriteString(fmt.Sprintf("Total Tax:           $%s\n", tf.formatCurrency(r.TotalTax)))
	}

	return sb.String()
}

// FormatStates formats a multi-state solution table
func (tf *TableFormatter) FormatStates(target decimal.Decimal, solutions []StateSolution) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("GROSS INCOME NEEDED FOR $%s NET, BY STATE\n", tf.formatCurrency(target)))
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", "State", "Required Gross", "State Tax"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, sol := range solutions {
		name := sol.StateID
		if sol.StateName != "" {
			name = sol.StateName
		}
		stateTax := decimal.Zero
		if sol.Result.Result != nil {
			stateTax = sol.Result.Result.StateTax
		}
		gross := "$" + tf.formatCurrency(sol.Result.RequiredGrossIncome)
		if !sol.Result.Converged {
			gross += " *"
		}
		sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", tf.truncate(name, 20), gross, "$"+tf.formatCurrency(stateTax)))
	}
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatStatus(converged bool) string {
	if converged {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatCurrency(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
