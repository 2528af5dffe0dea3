package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
	"github.com/rgehrsitz/netpay/internal/calculation"
	"github.com/rgehrsitz/netpay/internal/config"
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/rgehrsitz/netpay/internal/logging"
	"github.com/rgehrsitz/netpay/internal/solver"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries everything a subcommand needs once settings and rules are loaded
type app struct {
	settingsFile string
	rulesFile    string
	logLevel     string

	settings *config.Settings
	rules    *domain.TaxRules
	engine   *calculation.CalculationEngine
	logger   *zap.SugaredLogger
}

func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(config.NewViper(), a.settingsFile)
	if err != nil {
		return err
	}
	a.settings = settings

	zl, err := logging.New(settings.Logging, a.logLevel)
	if err != nil {
		return err
	}
	// Runs can share one log file, so every line carries the run id
	a.logger = zl.Sugar().With("run", uuid.NewString())

	rulesFile := a.rulesFile
	if rulesFile == "" {
		rulesFile = settings.RulesFile
	}
	if rulesFile != "" {
		a.logger.Debugf("loading rules from %s", rulesFile)
		a.rules, err = config.NewRulesLoader().LoadFromFile(rulesFile)
	} else {
		a.rules, err = config.DefaultRules()
	}
	if err != nil {
		return err
	}

	a.engine = calculation.NewCalculationEngine(a.rules)
	a.engine.SetLogger(a.logger)
	return nil
}

func (a *app) solver() *solver.Solver {
	s := a.settings.Solver
	sv := solver.NewSolver(a.engine, solver.OptionsFromFloats(s.Tolerance, s.MaxIterations, s.InitialMultiple, s.Ceiling))
	sv.SetLogger(a.logger)
	return sv
}

// stateName returns the display name of a configured state, or the id itself
func (a *app) stateName(id string) string {
	if _, rules, err := a.engine.StateCalc.Resolve(id); err == nil && rules.Name != "" {
		return rules.Name
	}
	return id
}

// scenarioFlags are the shared flags describing a single income scenario
type scenarioFlags struct {
	pretax     float64
	gains      float64
	recapture  float64
	status     string
	state      string
	dependents int
}

func (f *scenarioFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.pretax, "pretax", 0, "Annual pre-tax payroll deductions")
	cmd.Flags().Float64Var(&f.gains, "gains", 0, "Annual long-term capital gains")
	cmd.Flags().Float64Var(&f.recapture, "recapture", 0, "Annual unrecaptured depreciation")
	cmd.Flags().StringVar(&f.status, "status", "", "Filing status: single, mfj, mfs, hoh (default from settings)")
	cmd.Flags().StringVar(&f.state, "state", "", "State code or name (default from settings)")
	cmd.Flags().IntVar(&f.dependents, "dependents", 0, "Number of dependents")
}

func (f *scenarioFlags) scenario(a *app, gross decimal.Decimal) (domain.IncomeScenario, error) {
	statusName := f.status
	if statusName == "" {
		statusName = a.settings.DefaultFilingStatus
	}
	status, err := domain.ParseFilingStatus(statusName)
	if err != nil {
		return domain.IncomeScenario{}, err
	}
	state := f.state
	if state == "" {
		state = a.settings.DefaultState
	}
	return domain.IncomeScenario{
		GrossAnnualIncome:           gross,
		PreTaxDeductions:            decimal.NewFromFloat(f.pretax),
		CapitalGainsAmount:          decimal.NewFromFloat(f.gains),
		DepreciationRecaptureAmount: decimal.NewFromFloat(f.recapture),
		Profile: domain.FilingProfile{
			FilingStatus: status,
			StateID:      state,
			Dependents:   f.dependents,
		},
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "netpay",
		Short: "US net pay calculator CLI",
		Long: `Computes federal, state, payroll and capital gains taxes on an annual income,
solves for the gross income needed to reach a net income target, and compares
take-home pay across states.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.settingsFile, "settings", "", "Path to a settings file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&a.rulesFile, "rules", "", "Path to a tax rules file (default: embedded 2025 tables)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	withSetup := func(cmd *cobra.Command) *cobra.Command {
		cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		}
		return cmd
	}

	rootCmd.AddCommand(withSetup(calculateCmd(a)))
	rootCmd.AddCommand(withSetup(solveCmd(a)))
	rootCmd.AddCommand(withSetup(compareCmd(a)))
	rootCmd.AddCommand(withSetup(statesCmd(a)))
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "netpay %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [rules-file]",
		Short: "Validate a tax rules file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := config.NewRulesLoader().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rules file %s is valid (%d states)\n", args[0], len(rules.States))
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
