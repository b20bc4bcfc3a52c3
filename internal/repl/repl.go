// Package repl implements the interactive expense prompt.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/example/expense-tracker/internal/report"
	"github.com/example/expense-tracker/internal/tracker"
	"github.com/example/expense-tracker/pkg/expense"
)

const (
	prompt      = "expense-tracker "
	clearScreen = "\033[H\033[2J"

	usageAdd     = `Usage: add "description" amount`
	usageDelete  = "Usage: delete <id>"
	usageSummary = "Usage: summary [month 1-12]"
	invalid      = "Invalid command! Type 'help' for a list of commands."
)

const banner = `Welcome to Expense Tracker CLI!
Type 'help' for a list of commands or 'exit' to quit.

     ___                              _____            _
    | __|_ ___ __  ___ _ _  ___ ___  |_   _| _ __ _ __| |_____ _ _
    | _|\ \ / '_ \/ -_) ' \(_-</ -_)   | || '_/ _` + "`" + ` / _| / / -_) '_|
    |___/_\_\ .__/\___|_||_/__/\___|   |_||_| \__,_\__|_\_\___|_|
            |_|
`

const help = `
Commands:
  add <description> <amount>   - Add a new expense
  list                         - List all expenses
  delete <id>                  - Delete an expense by ID
  summary                      - Show total expenses
  summary <month>              - Show expenses for a specific month
  clear                        - Clear the screen
  exit                         - Quit the program
`

var noArgs = map[string]bool{"exit": true, "help": true, "clear": true, "list": true}

// Operations is the set of expense operations the prompt dispatches to.
type Operations interface {
	Add(description string, amount decimal.Decimal) (expense.Expense, error)
	List() ([]expense.Expense, error)
	Delete(id int) error
	Summary() (decimal.Decimal, error)
	SummaryByMonth(month int) (decimal.Decimal, error)
}

// Shell reads commands line by line and prints results.
type Shell struct {
	ops     Operations
	in      io.Reader
	out     io.Writer
	printer *report.Printer
	logger  *slog.Logger
}

// New returns a Shell reading from in and writing to out.
func New(ops Operations, in io.Reader, out io.Writer, currency string) *Shell {
	return &Shell{
		ops:     ops,
		in:      in,
		out:     out,
		printer: report.New(out, currency),
		logger:  slog.With("component", "repl"),
	}
}

// Run prints the banner and processes commands until exit or end of input.
func (s *Shell) Run() error {
	fmt.Fprint(s.out, banner)

	r := bufio.NewReader(s.in)
	for {
		fmt.Fprint(s.out, "\n"+prompt)
		line, err := r.ReadString('\n')
		if line != "" {
			if quit := s.Execute(line); quit {
				return nil
			}
		}
		if err == io.EOF {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Execute runs one command line and reports whether the prompt should stop.
func (s *Shell) Execute(line string) bool {
	line = strings.TrimSpace(line)
	cmd, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)
	s.logger.Debug("command received", "command", cmd)

	if noArgs[cmd] && args != "" {
		fmt.Fprintln(s.out, invalid)
		return false
	}

	switch cmd {
	case "exit":
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	case "help":
		fmt.Fprint(s.out, help)
	case "clear":
		fmt.Fprint(s.out, clearScreen)
		fmt.Fprint(s.out, banner)
	case "add":
		s.add(args)
	case "list":
		s.list()
	case "delete":
		s.delete(args)
	case "summary":
		s.summary(args)
	default:
		fmt.Fprintln(s.out, invalid)
	}
	return false
}

func (s *Shell) add(args string) {
	description, amount, err := parseAdd(args)
	if err != nil {
		fmt.Fprintln(s.out, usageAdd)
		return
	}
	e, err := s.ops.Add(description, amount)
	if err != nil {
		s.fail(err)
		return
	}
	s.printer.Added(e)
}

func (s *Shell) list() {
	expenses, err := s.ops.List()
	if err != nil {
		s.fail(err)
		return
	}
	s.printer.List(expenses)
}

func (s *Shell) delete(args string) {
	id, err := strconv.Atoi(args)
	if err != nil {
		fmt.Fprintln(s.out, usageDelete)
		return
	}
	if err := s.ops.Delete(id); err != nil {
		s.fail(err)
		return
	}
	s.printer.Deleted()
}

func (s *Shell) summary(args string) {
	if args == "" {
		total, err := s.ops.Summary()
		if err != nil {
			s.fail(err)
			return
		}
		s.printer.Total(total)
		return
	}

	month, err := strconv.Atoi(args)
	if err != nil || month < 1 || month > 12 {
		fmt.Fprintln(s.out, usageSummary)
		return
	}
	total, err := s.ops.SummaryByMonth(month)
	if err != nil {
		s.fail(err)
		return
	}
	s.printer.MonthTotal(month, total)
}

func (s *Shell) fail(err error) {
	if errors.Is(err, tracker.ErrNotFound) {
		s.printer.NotFound()
		return
	}
	s.logger.Debug("command failed", "error", err)
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

var errAddSyntax = errors.New("expected a description and an amount")

// parseAdd splits `"a description" 12.5` or `word 12.5` into its parts.
// Inside quotes a backslash escapes the next character.
func parseAdd(args string) (string, decimal.Decimal, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return "", decimal.Zero, errAddSyntax
	}

	var description, rest string
	if args[0] == '"' {
		var b strings.Builder
		closed := false
		i := 1
		for ; i < len(args); i++ {
			c := args[i]
			if c == '\\' && i+1 < len(args) {
				i++
				b.WriteByte(args[i])
				continue
			}
			if c == '"' {
				closed = true
				break
			}
			b.WriteByte(c)
		}
		if !closed {
			return "", decimal.Zero, errAddSyntax
		}
		description, rest = b.String(), args[i+1:]
	} else {
		description, rest, _ = strings.Cut(args, " ")
	}

	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return "", decimal.Zero, errAddSyntax
	}
	amount, err := decimal.NewFromString(fields[0])
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("%w: %v", errAddSyntax, err)
	}
	return description, amount, nil
}
