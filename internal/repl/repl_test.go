package repl

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/expense-tracker/internal/store"
	"github.com/example/expense-tracker/internal/tracker"
	"github.com/example/expense-tracker/pkg/expense"
)

func newShell(t *testing.T, input string) (*Shell, *bytes.Buffer, *tracker.Tracker) {
	t.Helper()
	tr := tracker.New(
		store.New(afero.NewMemMapFs(), "/expenses.json"),
		tracker.WithClock(func() time.Time { return time.Date(2025, time.March, 3, 12, 0, 0, 0, time.Local) }),
	)
	var out bytes.Buffer
	return New(tr, strings.NewReader(input), &out, "ETB"), &out, tr
}

func TestShell_Session(t *testing.T) {
	input := strings.Join([]string{
		`add "coffee beans" 3.5`,
		`add book 12`,
		`list`,
		`delete 1`,
		`delete 1`,
		`summary`,
		`summary 3`,
		`summary 4`,
		`exit`,
		`list`,
	}, "\n")
	sh, out, tr := newShell(t, input)

	require.NoError(t, sh.Run())

	text := out.String()
	assert.Contains(t, text, "Welcome to Expense Tracker CLI!")
	assert.Contains(t, text, "Expense added successfully (ID: 1)")
	assert.Contains(t, text, "Expense added successfully (ID: 2)")
	assert.Contains(t, text, "coffee beans")
	assert.Contains(t, text, "2025-03-03")
	assert.Contains(t, text, "Expense deleted successfully")
	assert.Contains(t, text, "Expense not found!")
	assert.Contains(t, text, "Total expenses: 12 ETB")
	assert.Contains(t, text, "Total expenses for month 3: 12 ETB")
	assert.Contains(t, text, "Total expenses for month 4: 0 ETB")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(text), "Goodbye!"), "nothing runs after exit")

	all, err := tr.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "book", all[0].Description)
}

func TestShell_EndOfInputStops(t *testing.T) {
	sh, out, _ := newShell(t, "summary")

	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), "Total expenses: 0 ETB")
	assert.NotContains(t, out.String(), "Goodbye!")
}

func TestShell_InvalidInputContinues(t *testing.T) {
	cases := map[string]string{
		"unknown":         invalid,
		"list everything": invalid,
		"":                invalid,
		`add`:             usageAdd,
		`add "no amount"`: usageAdd,
		`add "open 3`:     usageAdd,
		`add coffee lots`: usageAdd,
		`add coffee 1 2`:  usageAdd,
		`delete`:          usageDelete,
		`delete one`:      usageDelete,
		`summary march`:   usageSummary,
		`summary 13`:      usageSummary,
		`summary 0`:       usageSummary,
	}
	for line, want := range cases {
		sh, out, _ := newShell(t, "")
		quit := sh.Execute(line)
		assert.False(t, quit, line)
		assert.Contains(t, out.String(), want, "line %q", line)
	}
}

func TestShell_LongLineDoesNotEndSession(t *testing.T) {
	input := strings.Repeat("x", 70*1024) + "\nadd coffee 3\nexit\n"
	sh, out, tr := newShell(t, input)

	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), invalid)
	assert.Contains(t, out.String(), "Expense added successfully (ID: 1)")
	assert.Contains(t, out.String(), "Goodbye!")

	all, err := tr.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestShell_TrimsInput(t *testing.T) {
	sh, out, _ := newShell(t, "")

	assert.True(t, sh.Execute("   exit   "))
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestShell_HelpAndClear(t *testing.T) {
	sh, out, _ := newShell(t, "")

	sh.Execute("help")
	assert.Contains(t, out.String(), "delete <id>")

	out.Reset()
	sh.Execute("clear")
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
	assert.Contains(t, out.String(), "Welcome to Expense Tracker CLI!")
}

type failingOps struct {
	err error
}

func (f failingOps) Add(string, decimal.Decimal) (expense.Expense, error) {
	return expense.Expense{}, f.err
}
func (f failingOps) List() ([]expense.Expense, error) { return nil, f.err }
func (f failingOps) Delete(int) error { return f.err }
func (f failingOps) Summary() (decimal.Decimal, error) { return decimal.Zero, f.err }
func (f failingOps) SummaryByMonth(int) (decimal.Decimal, error) { return decimal.Zero, f.err }

func TestShell_ReportsErrorsAndContinues(t *testing.T) {
	var out, logs bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))

	sh := New(failingOps{err: errors.New("corrupt data file")}, strings.NewReader("list\nsummary 2\nexit\n"), &out, "")

	require.NoError(t, sh.Run())
	assert.Equal(t, 2, strings.Count(out.String(), "Error: corrupt data file"))
	assert.Empty(t, logs.String(), "handled errors are not logged again")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestParseAdd(t *testing.T) {
	cases := []struct {
		in          string
		description string
		amount      string
		ok          bool
	}{
		{`"coffee" 3.5`, "coffee", "3.5", true},
		{`"lunch with \"Sam\"" 20`, `lunch with "Sam"`, "20", true},
		{`coffee 3.5`, "coffee", "3.5", true},
		{`"" 0`, "", "0", true},
		{`"refund"   -4.25  `, "refund", "-4.25", true},
		{`"coffee"3.5`, "coffee", "3.5", true},
		{``, "", "", false},
		{`"coffee"`, "", "", false},
		{`"coffee 3.5`, "", "", false},
		{`coffee beans 3.5`, "", "", false},
		{`coffee abc`, "", "", false},
	}
	for _, tc := range cases {
		description, amount, err := parseAdd(tc.in)
		if !tc.ok {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.description, description)
		assert.True(t, amount.Equal(decimal.RequireFromString(tc.amount)), "input %q: got %s", tc.in, amount)
	}
}
