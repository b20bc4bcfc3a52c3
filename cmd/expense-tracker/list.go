package main

import (
	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/report"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			expenses, err := a.tracker.List()
			if err != nil {
				return err
			}
			report.New(cmd.OutOrStdout(), a.cfg.Currency).List(expenses)
			return nil
		},
	}
}
