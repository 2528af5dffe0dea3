package tui

import "github.com/rgehrsitz/netpay/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	AppStyle            = tuistyles.AppStyle
	TitleStyle          = tuistyles.TitleStyle
	SubtitleStyle       = tuistyles.SubtitleStyle
	StatusBarStyle      = tuistyles.StatusBarStyle
	StatusKeyStyle      = tuistyles.StatusKeyStyle
	ActiveTabStyle      = tuistyles.ActiveTabStyle
	InactiveTabStyle    = tuistyles.InactiveTabStyle
	ParameterLabelStyle = tuistyles.ParameterLabelStyle
	FocusedLabelStyle   = tuistyles.FocusedLabelStyle
	MetricLabelStyle    = tuistyles.MetricLabelStyle
	MetricValueStyle    = tuistyles.MetricValueStyle
	TableHeaderStyle    = tuistyles.TableHeaderStyle
	TableHighlightStyle = tuistyles.TableHighlightStyle
	ErrorStyle          = tuistyles.ErrorStyle
	InfoStyle           = tuistyles.InfoStyle
)

// Re-export helper functions
var (
	MetricTrendStyle = tuistyles.MetricTrendStyle
	TrendIndicator   = tuistyles.TrendIndicator
	FormatCurrency   = tuistyles.FormatCurrency
)
