package solver

import (
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// Evaluator is the forward tax computation the solver inverts.
// *calculation.CalculationEngine satisfies it.
type Evaluator interface {
	Evaluate(s domain.IncomeScenario) (domain.TaxResult, error)
}

// SolverOptions configures the bisection search
type SolverOptions struct {
	Tolerance       decimal.Decimal // Stop once the bracket is narrower than this
	MaxIterations   int             // Maximum bisection steps
	InitialMultiple decimal.Decimal // Initial upper bound as a multiple of the target
	Ceiling         decimal.Decimal // Upper bound expansion stops here
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:       decimal.NewFromFloat(0.01),
		MaxIterations:   100,
		InitialMultiple: decimal.NewFromInt(3),
		Ceiling:         decimal.NewFromInt(1_000_000_000),
	}
}

// OptionsFromFloats builds options from plain settings values
func OptionsFromFloats(tolerance float64, maxIterations int, initialMultiple, ceiling float64) SolverOptions {
	return SolverOptions{
		Tolerance:       decimal.NewFromFloat(tolerance),
		MaxIterations:   maxIterations,
		InitialMultiple: decimal.NewFromFloat(initialMultiple),
		Ceiling:         decimal.NewFromFloat(ceiling),
	}
}

// Validate checks that the options describe a usable search
func (o SolverOptions) Validate() error {
	if !o.Tolerance.IsPositive() {
		return &SolverError{Operation: "validate_options", Message: "tolerance must be positive"}
	}
	if o.MaxIterations <= 0 {
		return &SolverError{Operation: "validate_options", Message: "max iterations must be positive"}
	}
	if o.InitialMultiple.LessThan(decimal.NewFromInt(1)) {
		return &SolverError{Operation: "validate_options", Message: "initial multiple must be at least 1"}
	}
	if !o.Ceiling.IsPositive() {
		return &SolverError{Operation: "validate_options", Message: "ceiling must be positive"}
	}
	return nil
}

// StateSolution is the solver outcome for one state in a multi-state search
type StateSolution struct {
	StateID   string              `json:"state"`
	StateName string              `json:"state_name"`
	Result    domain.SolverResult `json:"result"`
}

// SolverError represents errors from the reverse solver
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
