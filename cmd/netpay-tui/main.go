package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	flag "github.com/spf13/pflag"

	"github.com/rgehrsitz/netpay/internal/calculation"
	"github.com/rgehrsitz/netpay/internal/config"
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/rgehrsitz/netpay/internal/logging"
	"github.com/rgehrsitz/netpay/internal/solver"
	"github.com/rgehrsitz/netpay/internal/tui"
)

func main() {
	settingsPath := flag.String("settings", "", "Path to a settings file")
	rulesPath := flag.String("rules", "", "Path to a tax rules file (default: embedded 2025 tables)")
	flag.Parse()

	settings, err := config.LoadSettings(config.NewViper(), *settingsPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere
	if settings.Logging.OutputFile == "" {
		settings.Logging.Level = "error"
	}
	zl, err := logging.New(settings.Logging, "")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync()
	logger := zl.Sugar().With("run", uuid.NewString(), "ui", "tui")

	var rules *domain.TaxRules
	if path := firstNonEmpty(*rulesPath, settings.RulesFile); path != "" {
		rules, err = config.NewRulesLoader().LoadFromFile(path)
	} else {
		rules, err = config.DefaultRules()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	engine := calculation.NewCalculationEngine(rules)
	engine.SetLogger(logger)
	s := settings.Solver
	sv := solver.NewSolver(engine, solver.OptionsFromFloats(s.Tolerance, s.MaxIterations, s.InitialMultiple, s.Ceiling))
	sv.SetLogger(logger)

	model := tui.NewModel(engine, sv, tui.Defaults{
		State:        settings.DefaultState,
		FilingStatus: settings.DefaultFilingStatus,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
