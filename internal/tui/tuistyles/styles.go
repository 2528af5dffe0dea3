// Package tuistyles holds the lipgloss palette and styles shared by the TUI
// and its components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/netpay/internal/output"
	"github.com/shopspring/decimal"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#5A9BD5")
	ColorAccent    = lipgloss.Color("#F5A623")
	ColorSuccess   = lipgloss.Color("#04B575")
	ColorDanger    = lipgloss.Color("#E5484D")
	ColorInfo      = lipgloss.Color("#3FA7D6")

	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#888888")
	ColorBorder     = lipgloss.Color("#444444")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusKeyStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorSecondary).
			Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)

	ParameterLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted).Width(16)
	FocusedLabelStyle   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(16)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	TableHeaderStyle    = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TableHighlightStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)
)

// MetricTrendStyle picks the trend color
func MetricTrendStyle(positive bool) lipgloss.Style {
	if positive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the trend direction
func TrendIndicator(positive bool) string {
	if positive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency formats an amount for display in cards and tables
func FormatCurrency(amount decimal.Decimal) string {
	return output.FormatCurrency(amount)
}
