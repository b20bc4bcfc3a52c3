package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/config"
	"github.com/example/expense-tracker/internal/logging"
	"github.com/example/expense-tracker/internal/repl"
	"github.com/example/expense-tracker/internal/store"
	"github.com/example/expense-tracker/internal/tracker"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = newRootCmd()

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg     *config.Config
	tracker *tracker.Tracker
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "expense-tracker",
		Short: "Record and summarize personal expenses",
		Long: `Expense Tracker keeps a list of expenses in a local JSON file.
Run it without a command to start the interactive prompt, or use one of the
commands below for a single operation.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			sh := repl.New(a.tracker, cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Currency)
			return sh.Run()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: ./expense-tracker.toml or ~/.config/expense-tracker/expense-tracker.toml)")
	flags.String("file", "", "expense data file (default: expenses.json)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newSummaryCmd(a),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	cfg, err := config.LoadConfig(a.configPath, flags.Lookup("file"), flags.Lookup("log-level"))
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel)

	a.cfg = cfg
	a.tracker = tracker.New(store.NewOS(cfg.DataFile))
	return nil
}
