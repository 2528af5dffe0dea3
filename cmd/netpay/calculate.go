package main

import (
	"fmt"

	"github.com/rgehrsitz/netpay/internal/config"
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/rgehrsitz/netpay/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func calculateCmd(a *app) *cobra.Command {
	var (
		flags     scenarioFlags
		gross     float64
		inputFile string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate net pay for an income scenario",
		Long: `Calculate every tax component and the resulting net pay.

Examples:
  netpay calculate --gross 120000 --state CA --status mfj
  netpay calculate --gross 250000 --gains 40000 --state NY
  netpay calculate --file scenarios.yaml --format csv
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown output format: %s (valid: %v)", format, output.FormatterNames())
			}

			var named []config.NamedScenario
			if inputFile != "" {
				var err error
				named, err = config.NewInputParser().LoadFromFile(inputFile)
				if err != nil {
					return err
				}
			} else {
				if !cmd.Flags().Changed("gross") {
					return fmt.Errorf("--gross or --file is required")
				}
				scenario, err := flags.scenario(a, decimal.NewFromFloat(gross))
				if err != nil {
					return err
				}
				named = []config.NamedScenario{{IncomeScenario: scenario}}
			}

			reports := make([]output.Report, 0, len(named))
			for _, ns := range named {
				report, err := buildReport(a, ns.Name, ns.IncomeScenario)
				if err != nil {
					return err
				}
				reports = append(reports, report)
			}

			data, err := formatter.Format(reports)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&gross, "gross", 0, "Annual gross wages")
	cmd.Flags().StringVar(&inputFile, "file", "", "YAML file with a list of scenarios")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, json, csv)")
	return cmd
}

func buildReport(a *app, name string, scenario domain.IncomeScenario) (output.Report, error) {
	result, err := a.engine.Evaluate(scenario)
	if err != nil {
		if name != "" {
			return output.Report{}, fmt.Errorf("scenario %s: %w", name, err)
		}
		return output.Report{}, err
	}
	marginal, err := a.engine.MarginalRate(scenario)
	if err != nil {
		return output.Report{}, err
	}
	return output.NewReport(name, scenario, result, marginal), nil
}
