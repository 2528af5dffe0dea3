package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var hundred = decimal.NewFromInt(100)

func statesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List the states in the loaded rule tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tPOLICY\tRATE")
			for _, id := range a.engine.StateCalc.StateIDs() {
				rules := a.rules.States[id]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, rules.Name, rules.Policy, describeRate(rules))
			}
			return w.Flush()
		},
	}
}

func describeRate(rules domain.StateRules) string {
	switch rules.Policy {
	case domain.PolicyFlat:
		return rules.Rate.Mul(hundred).StringFixed(2) + "%"
	case domain.PolicyProgressive:
		table := rules.Brackets.For(domain.FilingSingle)
		if len(table) == 0 {
			return "-"
		}
		return fmt.Sprintf("%s%%-%s%%", table[0].Rate.Mul(hundred).StringFixed(2), table[len(table)-1].Rate.Mul(hundred).StringFixed(2))
	}
	return "none"
}
