// Package report renders expenses and totals as terminal text. Both the
// one-shot commands and the interactive prompt print through it.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/example/expense-tracker/pkg/expense"
)

// Printer writes user-facing output.
type Printer struct {
	w        io.Writer
	currency string
}

// New returns a Printer writing to w. Amounts are suffixed with currency
// when it is not empty.
func New(w io.Writer, currency string) *Printer {
	return &Printer{w: w, currency: currency}
}

func (p *Printer) money(d decimal.Decimal) string {
	if p.currency == "" {
		return d.String()
	}
	return d.String() + " " + p.currency
}

// Added confirms a new expense.
func (p *Printer) Added(e expense.Expense) {
	fmt.Fprintf(p.w, "Expense added successfully (ID: %d)\n", e.ID)
}

// Deleted confirms a removal.
func (p *Printer) Deleted() {
	fmt.Fprintln(p.w, "Expense deleted successfully")
}

// NotFound reports a delete that matched nothing.
func (p *Printer) NotFound() {
	fmt.Fprintln(p.w, "Expense not found!")
}

// List prints a table of expenses in the order given.
func (p *Printer) List(expenses []expense.Expense) {
	fmt.Fprintln(p.w, "ID  Date        Description  Amount")
	fmt.Fprintln(p.w, "----------------------------------")

	tw := tabwriter.NewWriter(p.w, 0, 0, 3, ' ', 0)
	for _, e := range expenses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Date, e.Description, p.money(e.Amount))
	}
	tw.Flush()
}

// Total prints the sum of all expenses.
func (p *Printer) Total(total decimal.Decimal) {
	fmt.Fprintf(p.w, "Total expenses: %s\n", p.money(total))
}

// MonthTotal prints the sum of expenses for one month.
func (p *Printer) MonthTotal(month int, total decimal.Decimal) {
	fmt.Fprintf(p.w, "Total expenses for month %d: %s\n", month, p.money(total))
}
