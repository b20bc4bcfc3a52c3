package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/report"
)

func newSummaryCmd(a *app) *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "summary [--month <n>]",
		Short: "Show total expenses, optionally for one month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			byMonth := cmd.Flags().Changed("month")
			if byMonth && (month < 1 || month > 12) {
				return fmt.Errorf("invalid month %d: must be between 1 and 12", month)
			}
			cmd.SilenceUsage = true

			p := report.New(cmd.OutOrStdout(), a.cfg.Currency)
			if !byMonth {
				total, err := a.tracker.Summary()
				if err != nil {
					return err
				}
				p.Total(total)
				return nil
			}

			total, err := a.tracker.SummaryByMonth(month)
			if err != nil {
				return err
			}
			p.MonthTotal(month, total)
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "month to summarize (1-12)")
	return cmd
}
