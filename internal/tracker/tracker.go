// Package tracker implements the expense operations shared by the one-shot
// commands and the interactive prompt. Each operation is one full
// load/modify/save cycle against a Store.
package tracker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/expense-tracker/pkg/expense"
)

var (
	// ErrNotFound is returned by Delete when no expense has the given id.
	ErrNotFound = errors.New("expense not found")
	// ErrInvalidMonth is returned for a month outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// Store loads and saves the whole expense collection.
type Store interface {
	Load() ([]expense.Expense, error)
	Save([]expense.Expense) error
}

// Tracker runs expense operations against a Store.
type Tracker struct {
	store  Store
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source used to date new expenses.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New returns a Tracker backed by store.
func New(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:  store,
		now:    time.Now,
		logger: slog.With("component", "tracker"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Add records a new expense dated today and returns it.
func (t *Tracker) Add(description string, amount decimal.Decimal) (expense.Expense, error) {
	expenses, err := t.load()
	if err != nil {
		return expense.Expense{}, err
	}

	e := expense.Expense{
		ID:          expenses.NextID(),
		Date:        expense.FormatDate(t.now()),
		Description: description,
		Amount:      amount,
	}
	if err := t.store.Save(append(expenses, e)); err != nil {
		return expense.Expense{}, err
	}

	t.logger.Info("expense added", "id", e.ID, "amount", e.Amount.String())
	return e, nil
}

// List returns every expense in insertion order.
func (t *Tracker) List() ([]expense.Expense, error) {
	return t.load()
}

// Delete removes the expense with the given id. The store is left untouched
// when no expense matches.
func (t *Tracker) Delete(id int) error {
	expenses, err := t.load()
	if err != nil {
		return err
	}

	kept, ok := expenses.Remove(id)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err := t.store.Save(kept); err != nil {
		return err
	}

	t.logger.Info("expense deleted", "id", id)
	return nil
}

// Summary returns the sum of all expense amounts.
func (t *Tracker) Summary() (decimal.Decimal, error) {
	expenses, err := t.load()
	if err != nil {
		return decimal.Zero, err
	}
	return expenses.Total(), nil
}

// SummaryByMonth returns the sum of amounts for expenses dated in month,
// across all years.
func (t *Tracker) SummaryByMonth(month int) (decimal.Decimal, error) {
	if month < 1 || month > 12 {
		return decimal.Zero, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	expenses, err := t.load()
	if err != nil {
		return decimal.Zero, err
	}
	return expenses.TotalForMonth(month)
}

func (t *Tracker) load() (expense.List, error) {
	expenses, err := t.store.Load()
	if err != nil {
		t.logger.Debug("failed to load expenses", "error", err)
		return nil, err
	}
	return expense.List(expenses), nil
}
