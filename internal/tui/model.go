package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/netpay/internal/calculation"
	"github.com/rgehrsitz/netpay/internal/compare"
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/rgehrsitz/netpay/internal/solver"
)

// Form field indexes
const (
	fieldAmount = iota
	fieldState
	fieldStatus
	fieldPretax
	fieldCompareWith
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldAmount:      "Gross income",
	fieldState:       "State",
	fieldStatus:      "Filing status",
	fieldPretax:      "Pre-tax",
	fieldCompareWith: "Compare with",
}

// Model represents the entire application state
type Model struct {
	mode    Mode
	inputs  []textinput.Model
	focused int

	// Terminal dimensions
	width  int
	height int

	engine  *calculation.CalculationEngine
	solver  *solver.Solver
	compare *compare.CompareEngine

	// Last results; only the one matching the mode that produced it is set
	calculation *CalculationCompleteMsg
	solution    *domain.SolverResult
	comparison  *compare.ComparisonSet

	err error
}

// Defaults seeds the form
type Defaults struct {
	State        string
	FilingStatus string
}

// NewModel creates a new application model around a ready engine and solver
func NewModel(engine *calculation.CalculationEngine, sv *solver.Solver, defaults Defaults) Model {
	m := Model{
		engine:  engine,
		solver:  sv,
		compare: compare.NewCompareEngine(engine),
		width:   80,
		height:  24,
	}
	m.compare.Logger = engine.Logger

	placeholders := [fieldCount]string{
		fieldAmount:      "85000",
		fieldState:       "TX",
		fieldStatus:      "single, mfj, mfs, hoh",
		fieldPretax:      "0",
		fieldCompareWith: "CA,NY,WA",
	}
	values := [fieldCount]string{
		fieldState:  defaults.State,
		fieldStatus: defaults.FilingStatus,
	}

	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 32
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[fieldAmount].Focus()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// visibleFields lists the form fields used by the current mode
func (m Model) visibleFields() []int {
	if m.mode == ModeCompare {
		return []int{fieldAmount, fieldState, fieldStatus, fieldPretax, fieldCompareWith}
	}
	return []int{fieldAmount, fieldState, fieldStatus, fieldPretax}
}

func (m Model) amountLabel() string {
	if m.mode == ModeSolve {
		return "Target net"
	}
	return fieldLabels[fieldAmount]
}

// scenario builds an income scenario from the form
func (m Model) scenario() (domain.IncomeScenario, error) {
	amount, err := parseAmount(m.inputs[fieldAmount].Value(), m.amountLabel())
	if err != nil {
		return domain.IncomeScenario{}, err
	}
	pretax := decimal.Zero
	if v := m.inputs[fieldPretax].Value(); v != "" {
		if pretax, err = parseAmount(v, fieldLabels[fieldPretax]); err != nil {
			return domain.IncomeScenario{}, err
		}
	}
	status, err := domain.ParseFilingStatus(m.inputs[fieldStatus].Value())
	if err != nil {
		return domain.IncomeScenario{}, err
	}
	return domain.IncomeScenario{
		GrossAnnualIncome: amount,
		PreTaxDeductions:  pretax,
		Profile: domain.FilingProfile{
			FilingStatus: status,
			StateID:      m.inputs[fieldState].Value(),
		},
	}, nil
}

func parseAmount(v, label string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(stripCurrency(v))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %q is not a number", label, v)
	}
	return d, nil
}

var currencyReplacer = strings.NewReplacer("$", "", ",", "", " ", "")

func stripCurrency(v string) string {
	return currencyReplacer.Replace(v)
}

// runCmd returns a command computing the current mode's result
func (m Model) runCmd() tea.Cmd {
	scenario, err := m.scenario()
	if err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}

	switch m.mode {
	case ModeSolve:
		return solveCmd(m.solver, scenario)
	case ModeCompare:
		return compareCmd(m.compare, scenario, splitStates(m.inputs[fieldCompareWith].Value()))
	default:
		return calculateCmd(m.engine, scenario)
	}
}

func calculateCmd(engine *calculation.CalculationEngine, scenario domain.IncomeScenario) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.Evaluate(scenario)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		marginal, err := engine.MarginalRate(scenario)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return CalculationCompleteMsg{Scenario: scenario, Result: result, MarginalRate: marginal}
	}
}

func solveCmd(sv *solver.Solver, scenario domain.IncomeScenario) tea.Cmd {
	target := scenario.GrossAnnualIncome
	return func() tea.Msg {
		result, err := sv.SolveGrossForNet(target, scenario.WithGross(decimal.Zero))
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SolveCompleteMsg{Result: result}
	}
}

func compareCmd(ce *compare.CompareEngine, scenario domain.IncomeScenario, alternatives []string) tea.Cmd {
	return func() tea.Msg {
		if len(alternatives) == 0 {
			return ErrorMsg{Err: fmt.Errorf("enter at least one state to compare with")}
		}
		set, err := ce.CompareStates(scenario, scenario.Profile.StateID, alternatives)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ComparisonCompleteMsg{Set: set}
	}
}

func splitStates(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
