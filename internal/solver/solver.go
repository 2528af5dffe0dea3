package solver

import (
	"fmt"

	"github.com/rgehrsitz/netpay/internal/calculation"
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds the gross income that produces a target net income.
//
// Net income is strictly increasing in gross income because every tax
// component is non-decreasing with a marginal rate below 100%. Bisection only
// needs that monotonicity; the kinks at bracket boundaries do not matter.
type Solver struct {
	Engine  Evaluator
	Options SolverOptions
	Logger  calculation.Logger
}

// NewSolver creates a new reverse solver
func NewSolver(engine Evaluator, options SolverOptions) *Solver {
	return &Solver{
		Engine:  engine,
		Options: options,
		Logger:  calculation.NopLogger{},
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(engine Evaluator) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// SetLogger replaces the logger; nil restores the no-op logger
func (s *Solver) SetLogger(l calculation.Logger) {
	if l == nil {
		l = calculation.NopLogger{}
	}
	s.Logger = l
}

// SolveGrossForNet searches gross income in [0, upper] for the target net income.
// An unreachable target is reported with Converged=false rather than an error;
// errors are returned only for invalid options or an invalid template.
func (s *Solver) SolveGrossForNet(target decimal.Decimal, template domain.IncomeScenario) (*domain.SolverResult, error) {
	if err := s.Options.Validate(); err != nil {
		return nil, err
	}
	tolerance := s.Options.Tolerance

	low := decimal.Zero
	atLow, err := s.evaluate(template, low)
	if err != nil {
		return nil, err
	}

	// Net income at zero gross is the floor of the reachable range
	if target.LessThanOrEqual(atLow.NetIncome) {
		converged := atLow.NetIncome.Sub(target).LessThan(tolerance)
		info := "Target met at zero gross income"
		if !converged {
			info = fmt.Sprintf("Target is below the net income at zero gross ($%s)", atLow.NetIncome.StringFixed(2))
			s.Logger.Warnf("solver: target %s unreachable: %s", target.StringFixed(2), info)
		}
		return s.result(target, low, atLow, 0, converged, info), nil
	}

	high := decimal.Max(target.Abs(), decimal.NewFromInt(1)).Mul(s.Options.InitialMultiple)
	high = decimal.Min(high, s.Options.Ceiling)
	atHigh, err := s.evaluate(template, high)
	if err != nil {
		return nil, err
	}
	for atHigh.NetIncome.LessThan(target) {
		if high.GreaterThanOrEqual(s.Options.Ceiling) {
			info := fmt.Sprintf("Target exceeds the net income at the $%s ceiling", s.Options.Ceiling.StringFixed(0))
			s.Logger.Warnf("solver: target %s unreachable: %s", target.StringFixed(2), info)
			return s.result(target, high, atHigh, 0, false, info), nil
		}
		high = decimal.Min(high.Mul(two), s.Options.Ceiling)
		s.Logger.Debugf("solver: expanding upper bound to %s", high.StringFixed(2))
		if atHigh, err = s.evaluate(template, high); err != nil {
			return nil, err
		}
	}

	iterations := 0
	for high.Sub(low).GreaterThanOrEqual(tolerance) && iterations < s.Options.MaxIterations {
		iterations++
		mid := low.Add(high).Div(two)
		atMid, err := s.evaluate(template, mid)
		if err != nil {
			return nil, err
		}
		if atMid.NetIncome.LessThan(target) {
			low = mid
		} else {
			high = mid
		}
	}

	gross := low.Add(high).Div(two)
	final, err := s.evaluate(template, gross)
	if err != nil {
		return nil, err
	}

	converged := high.Sub(low).LessThan(tolerance)
	info := fmt.Sprintf("Bisection converged within $%s", tolerance.String())
	if !converged {
		info = fmt.Sprintf("Max iterations (%d) reached with a $%s bracket", s.Options.MaxIterations, high.Sub(low).StringFixed(2))
		s.Logger.Warnf("solver: %s", info)
	}
	s.Logger.Debugf("solver: target %s -> gross %s after %d iterations", target.StringFixed(2), gross.StringFixed(2), iterations)

	return s.result(target, gross, final, iterations, converged, info), nil
}

// SolveAcrossStates solves the same target in each listed state
func (s *Solver) SolveAcrossStates(target decimal.Decimal, template domain.IncomeScenario, stateIDs []string, names func(string) string) ([]StateSolution, error) {
	solutions := make([]StateSolution, 0, len(stateIDs))
	for _, id := range stateIDs {
		res, err := s.SolveGrossForNet(target, template.WithState(id))
		if err != nil {
			return nil, &SolverError{Operation: "solve_across_states", Message: fmt.Sprintf("state %s", id), Cause: err}
		}
		sol := StateSolution{StateID: id, Result: *res}
		if names != nil {
			sol.StateName = names(id)
		}
		solutions = append(solutions, sol)
	}
	return solutions, nil
}

func (s *Solver) evaluate(template domain.IncomeScenario, gross decimal.Decimal) (domain.TaxResult, error) {
	result, err := s.Engine.Evaluate(template.WithGross(gross))
	if err != nil {
		return domain.TaxResult{}, &SolverError{
			Operation: "solve_gross_for_net",
			Message:   fmt.Sprintf("failed to evaluate gross %s", gross.StringFixed(2)),
			Cause:     err,
		}
	}
	return result, nil
}

func (s *Solver) result(target, gross decimal.Decimal, at domain.TaxResult, iterations int, converged bool, info string) *domain.SolverResult {
	return &domain.SolverResult{
		TargetNetIncome:     target,
		RequiredGrossIncome: gross,
		AchievedNetIncome:   at.NetIncome,
		Iterations:          iterations,
		Converged:           converged,
		ConvergenceInfo:     info,
		Result:              &at,
	}
}
