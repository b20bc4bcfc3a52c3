package main

import (
	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/report"
)

func newDeleteCmd(a *app) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "delete --id <n>",
		Short: "Delete an expense by ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if err := a.tracker.Delete(id); err != nil {
				return err
			}
			report.New(cmd.OutOrStdout(), a.cfg.Currency).Deleted()
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "ID of the expense to delete")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
