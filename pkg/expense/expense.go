package expense

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk and display format of an expense date.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a stored date is not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date")

// Expense represents a single recorded expense
type Expense struct {
	ID          int
	Date        string
	Description string
	Amount      decimal.Decimal // signed, currency-agnostic
}

// Month returns the month component of the expense date. Only the
// YYYY-MM-DD shape is checked, so a day that does not exist in that month
// still yields its month.
func (e Expense) Month() (int, error) {
	d := e.Date
	if len(d) != len(DateLayout) || d[4] != '-' || d[7] != '-' || !digits(d[:4]) || !digits(d[8:]) {
		return 0, fmt.Errorf("expense %d: %w: %q", e.ID, ErrInvalidDate, e.Date)
	}
	m, err := strconv.Atoi(d[5:7])
	if err != nil || !digits(d[5:7]) || m < 1 || m > 12 {
		return 0, fmt.Errorf("expense %d: %w: %q", e.ID, ErrInvalidDate, e.Date)
	}
	return m, nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatDate renders t the way expense dates are stored.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// List holds a collection of expenses in insertion order
type List []Expense

// NextID returns the id for a new expense: one past the highest id in use.
func (l List) NextID() int {
	highest := 0
	for _, e := range l {
		if e.ID > highest {
			highest = e.ID
		}
	}
	return highest + 1
}

// Remove returns the list without any expense carrying id, and whether
// anything was removed. The receiver is not modified.
func (l List) Remove(id int) (List, bool) {
	kept := make(List, 0, len(l))
	for _, e := range l {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return kept, len(kept) != len(l)
}

// Total sums every amount in the list.
func (l List) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalForMonth sums the amounts of expenses dated in month (1-12), in any year.
func (l List) TotalForMonth(month int) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range l {
		m, err := e.Month()
		if err != nil {
			return decimal.Zero, err
		}
		if m == month {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}
