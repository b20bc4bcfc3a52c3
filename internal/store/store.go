// Package store persists the full expense collection as a JSON array in a
// single file. Every save replaces the file as a whole.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"github.com/example/expense-tracker/pkg/expense"
)

// DefaultFile is the data file used when none is configured.
const DefaultFile = "expenses.json"

var (
	// ErrCorruptData is returned when the data file exists but cannot be decoded.
	ErrCorruptData = errors.New("corrupt data file")
	// ErrIO is returned when the data file cannot be read or written.
	ErrIO = errors.New("storage i/o error")
)

// record is the on-disk shape of an expense.
type record struct {
	ID          int         `json:"id"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
}

// FileStore loads and saves expenses from one file on fs.
type FileStore struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger
}

// New returns a FileStore for path on fs.
func New(fs afero.Fs, path string) *FileStore {
	if path == "" {
		path = DefaultFile
	}
	return &FileStore{
		fs:     fs,
		path:   path,
		logger: slog.With("component", "store", "path", path),
	}
}

// NewOS returns a FileStore backed by the operating system filesystem.
func NewOS(path string) *FileStore {
	return New(afero.NewOsFs(), path)
}

// Path returns the data file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads every expense from the data file. A missing or empty file is an
// empty collection.
func (s *FileStore) Load() ([]expense.Expense, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("data file not found, starting empty")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptData, s.path, err)
	}

	expenses := make([]expense.Expense, 0, len(records))
	for _, r := range records {
		amount, err := decimal.NewFromString(r.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: expense %d has amount %q", ErrCorruptData, s.path, r.ID, r.Amount)
		}
		expenses = append(expenses, expense.Expense{
			ID:          r.ID,
			Date:        r.Date,
			Description: r.Description,
			Amount:      amount,
		})
	}
	s.logger.Debug("loaded expenses", "count", len(expenses))
	return expenses, nil
}

// Save replaces the data file with expenses. The new content is written to a
// temporary file next to the target and renamed over it, so a failed save
// leaves the previous file in place.
func (s *FileStore) Save(expenses []expense.Expense) error {
	records := make([]record, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, record{
			ID:          e.ID,
			Date:        e.Date,
			Description: e.Description,
			Amount:      json.Number(e.Amount.String()),
		})
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrIO, err)
	}
	data = append(data, '\n')

	if err := s.writeAtomic(data); err != nil {
		s.logger.Debug("failed to save expenses", "error", err)
		return fmt.Errorf("%w: %s: %w", ErrIO, s.path, err)
	}
	s.logger.Debug("saved expenses", "count", len(expenses))
	return nil
}

// fileMode keeps the permissions of an existing data file; new files get 0644.
func (s *FileStore) fileMode() os.FileMode {
	if info, err := s.fs.Stat(s.path); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}

func (s *FileStore) writeAtomic(data []byte) error {
	tmp, err := afero.TempFile(s.fs, filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(name)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		s.fs.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(name)
		return err
	}
	if err := s.fs.Chmod(name, s.fileMode()); err != nil {
		s.fs.Remove(name)
		return err
	}
	if err := s.fs.Rename(name, s.path); err != nil {
		s.fs.Remove(name)
		return err
	}
	return nil
}
