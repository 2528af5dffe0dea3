package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/netpay/internal/compare"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	var (
		flags  scenarioFlags
		gross  float64
		base   string
		with   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "compare [state-a state-b]",
		Short: "Compare take-home pay across states",
		Long: `Compare net income for the same gross income in different states.

With two positional states the difference is reported as B minus A.
Otherwise the --base state is compared against each state in --with.

Examples:
  netpay compare CA TX --gross 80000
  netpay compare --gross 150000 --base CA --with TX,WA,NV,OR
  netpay compare --gross 150000 --base NY --with all --format csv
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected zero or two states, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("gross") {
				return fmt.Errorf("--gross is required")
			}
			scenario, err := flags.scenario(a, decimal.NewFromFloat(gross))
			if err != nil {
				return err
			}

			engine := compare.NewCompareEngine(a.engine)
			engine.Logger = a.logger
			out := cmd.OutOrStdout()

			if len(args) == 2 {
				cmp, err := engine.Compare(scenario.GrossAnnualIncome, scenario, args[0], args[1])
				if err != nil {
					return err
				}
				switch strings.ToLower(format) {
				case "json":
					s, err := (&compare.JSONFormatter{Pretty: true}).FormatPair(cmp)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, s)
				case "table", "console", "":
					fmt.Fprint(out, (&compare.TableFormatter{}).FormatPair(cmp))
				default:
					return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
				}
				return nil
			}

			if base == "" {
				base = a.settings.DefaultState
			}
			if with == "" {
				return fmt.Errorf("--with is required when comparing against a base state")
			}
			alternatives := splitList(with)
			if strings.EqualFold(with, "all") {
				alternatives = a.engine.StateCalc.StateIDs()
			}

			compSet, err := engine.CompareStates(scenario, base, alternatives)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			switch strings.ToLower(format) {
			case "csv":
				s, err := (&compare.CSVFormatter{}).Format(compSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, s)
			case "json":
				s, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(out, s)
			case "compact":
				fmt.Fprint(out, (&compare.TableFormatter{}).FormatCompact(compSet))
			case "table", "console", "":
				fmt.Fprint(out, (&compare.TableFormatter{}).Format(compSet))
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", format)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&gross, "gross", 0, "Annual gross wages")
	cmd.Flags().StringVar(&base, "base", "", "Base state (default from settings)")
	cmd.Flags().StringVar(&with, "with", "", "Comma-separated alternative states, or 'all'")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, compact, csv, json)")
	return cmd
}
