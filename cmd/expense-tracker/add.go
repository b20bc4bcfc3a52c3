package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/report"
)

func newAddCmd(a *app) *cobra.Command {
	var description, amount string

	cmd := &cobra.Command{
		Use:   "add --description <text> --amount <value>",
		Short: "Add a new expense dated today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q", amount)
			}
			cmd.SilenceUsage = true

			e, err := a.tracker.Add(description, value)
			if err != nil {
				return err
			}
			report.New(cmd.OutOrStdout(), a.cfg.Currency).Added(e)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "what the money was spent on")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount spent, e.g. 12.50")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
