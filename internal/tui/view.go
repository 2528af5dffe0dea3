package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/netpay/internal/output"
	"github.com/rgehrsitz/netpay/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	sections := []string{
		m.renderTitleBar(),
		m.renderForm(),
	}

	switch {
	case m.err != nil:
		sections = append(sections, ErrorStyle.Render("Error: "+m.err.Error()))
	case m.calculation != nil:
		sections = append(sections, m.renderCalculation())
	case m.solution != nil:
		sections = append(sections, m.renderSolution())
	case m.comparison != nil:
		sections = append(sections, m.renderComparison())
	}

	sections = append(sections, m.renderStatusBar())
	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderTitleBar renders the application title and mode tabs
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("NETPAY - US Net Pay Calculator")

	tabs := make([]string, 0, len(modes))
	for _, mode := range modes {
		if mode == m.mode {
			tabs = append(tabs, ActiveTabStyle.Render(mode.String()))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(mode.String()))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", lipgloss.JoinHorizontal(lipgloss.Top, tabs...), "")
}

func (m Model) renderForm() string {
	var rows []string
	for _, f := range m.visibleFields() {
		label := fieldLabels[f]
		if f == fieldAmount {
			label = m.amountLabel()
		}
		style := ParameterLabelStyle
		if f == m.focused {
			style = FocusedLabelStyle
		}
		rows = append(rows, style.Render(label)+m.inputs[f].View())
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m Model) renderCalculation() string {
	calc := m.calculation
	grid := components.MetricGrid(components.TaxCards(calc.Result), 3)

	var sb strings.Builder
	sb.WriteString(components.NewMetricCard("Total Tax", FormatCurrency(calc.Result.TotalTax)).RenderCompact())
	sb.WriteString("   ")
	sb.WriteString(components.NewMetricCard("Marginal", output.FormatPercentage(calc.MarginalRate)).RenderCompact())
	sb.WriteString("\n\n")
	sb.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-14s%16s%16s", "Pay Period", "Gross", "Net")))
	sb.WriteString("\n")
	report := output.NewReport("", calc.Scenario, calc.Result, calc.MarginalRate)
	for _, p := range report.Periods {
		sb.WriteString(fmt.Sprintf("%-14s%16s%16s\n", p.Period, FormatCurrency(p.Gross), FormatCurrency(p.Net)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, grid, "", sb.String())
}

func (m Model) renderSolution() string {
	sol := m.solution
	status := InfoStyle.Render("converged")
	if !sol.Converged {
		status = ErrorStyle.Render("did not converge")
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Required Gross", FormatCurrency(sol.RequiredGrossIncome)),
		components.NewMetricCard("Achieved Net", FormatCurrency(sol.AchievedNetIncome)).
			WithDescription(fmt.Sprintf("%d iterations", sol.Iterations)),
	}
	if sol.Result != nil {
		cards = append(cards, components.NewMetricCard("Total Tax", FormatCurrency(sol.Result.TotalTax)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid(cards, 3),
		fmt.Sprintf("%s  %s", status, SubtitleStyle.Render(sol.ConvergenceInfo)),
	)
}

func (m Model) renderComparison() string {
	set := m.comparison

	var sb strings.Builder
	sb.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-18s%16s%14s%16s", "State", "Net Income", "State Tax", "vs Base")))
	sb.WriteString("\n")
	if set.BaseResult != nil {
		sb.WriteString(fmt.Sprintf("%-18s%16s%14s%16s\n", set.BaseResult.StateName+" *",
			FormatCurrency(set.BaseResult.NetIncome), FormatCurrency(set.BaseResult.StateTax), "-"))
	}
	for i, alt := range set.AlternativeResults {
		diff := alt.NetDiffFromBase
		delta := MetricTrendStyle(!diff.IsNegative()).Render(
			fmt.Sprintf("%s %s", TrendIndicator(!diff.IsNegative()), FormatCurrency(diff.Abs())))
		line := fmt.Sprintf("%-18s%16s%14s", alt.StateName, FormatCurrency(alt.NetIncome), FormatCurrency(alt.StateTax))
		if i == 0 && diff.IsPositive() {
			line = TableHighlightStyle.Render(line)
		}
		sb.WriteString(line + "  " + delta + "\n")
	}
	for _, rec := range set.Recommendations {
		sb.WriteString("\n" + InfoStyle.Render("• "+rec))
	}
	return sb.String()
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab", "mode"),
		formatShortcut("↑/↓", "field"),
		formatShortcut("enter", "run"),
		formatShortcut("esc", "quit"),
	}
	return "\n" + StatusBarStyle.Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}
