package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/netpay/internal/output"
	"github.com/rgehrsitz/netpay/internal/solver"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func solveCmd(a *app) *cobra.Command {
	var (
		flags  scenarioFlags
		net    float64
		period string
		states string
		format string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the gross income needed for a target net income",
		Long: `Solve for the gross annual income that yields a target net income.

Examples:
  netpay solve --net 75000 --state TX
  netpay solve --net 4000 --period monthly --state CA --status mfj
  netpay solve --net 90000 --states TX,CA,NY,IL
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("net") {
				return fmt.Errorf("--net is required")
			}
			pp, ok := output.PayPeriodByName(period)
			if !ok {
				return fmt.Errorf("unknown pay period: %s", period)
			}
			target := pp.Annualize(decimal.NewFromFloat(net))

			template, err := flags.scenario(a, decimal.Zero)
			if err != nil {
				return err
			}
			sv := a.solver()
			out := cmd.OutOrStdout()

			if states != "" {
				ids := splitList(states)
				if strings.EqualFold(states, "all") {
					ids = a.engine.StateCalc.StateIDs()
				}
				solutions, err := sv.SolveAcrossStates(target, template, ids, a.stateName)
				if err != nil {
					return err
				}
				switch strings.ToLower(format) {
				case "json":
					s, err := (&solver.JSONFormatter{Pretty: true}).Format(solutions)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, s)
				case "table", "console", "":
					fmt.Fprint(out, (&solver.TableFormatter{}).FormatStates(target, solutions))
				default:
					return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
				}
				return nil
			}

			result, err := sv.SolveGrossForNet(target, template)
			if err != nil {
				return err
			}
			switch strings.ToLower(format) {
			case "json":
				s, err := (&solver.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			case "table", "console", "":
				fmt.Fprint(out, (&solver.TableFormatter{}).Format(result))
				if pp.PerYear > 1 {
					fmt.Fprintf(out, "\nPer %s period: gross %s, net %s\n", pp.Name,
						output.FormatCurrency(pp.PerPeriod(result.RequiredGrossIncome)),
						output.FormatCurrency(pp.PerPeriod(result.AchievedNetIncome)))
				}
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&net, "net", 0, "Target net income per pay period")
	cmd.Flags().StringVar(&period, "period", "annual", "Pay period of --net (annual, monthly, semi-monthly, bi-weekly, weekly)")
	cmd.Flags().StringVar(&states, "states", "", "Comma-separated states to solve in, or 'all'")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}
