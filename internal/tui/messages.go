package tui

import (
	"github.com/rgehrsitz/netpay/internal/compare"
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// Mode selects what pressing enter computes
type Mode int

const (
	ModeCalculate Mode = iota
	ModeSolve
	ModeCompare
)

var modes = []Mode{ModeCalculate, ModeSolve, ModeCompare}

func (m Mode) String() string {
	switch m {
	case ModeCalculate:
		return "Calculate"
	case ModeSolve:
		return "Solve"
	case ModeCompare:
		return "Compare"
	default:
		return "Unknown"
	}
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// CalculationCompleteMsg carries a forward evaluation
type CalculationCompleteMsg struct {
	Scenario     domain.IncomeScenario
	Result       domain.TaxResult
	MarginalRate decimal.Decimal
}

// SolveCompleteMsg carries a gross-for-net solution
type SolveCompleteMsg struct {
	Result *domain.SolverResult
}

// ComparisonCompleteMsg carries a state comparison
type ComparisonCompleteMsg struct {
	Set *compare.ComparisonSet
}
