// Package store persists expenses in a local SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"outlay/internal/model"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrSelector is returned by DeleteBy when not exactly one selector is set.
var ErrSelector = errors.New("store: provide exactly one of id, name, or date")

// Store wraps the expense database. Each method runs a single statement (or
// transaction) against the shared connection and is synchronous.
type Store struct {
	db  *sql.DB
	log *logrus.Logger
}

// Open opens or creates the database at dbPath and applies any pending
// migrations, so callers never see a store without a schema.
func Open(dbPath string, log *logrus.Logger) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	log.WithField("path", dbPath).Debug("store opened")
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new expense and returns its assigned id.
func (s *Store) Add(name string, amount float64, category, note, date string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO expenses (name, amount, category, note, date) VALUES (?, ?, ?, ?, ?)",
		name, amount, category, note, date,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading insert id: %w", err)
	}
	s.log.WithFields(logrus.Fields{"id": id, "category": category}).Debug("expense added")
	return id, nil
}

// Update overwrites every field of the expense with the given id. A missing
// id is not an error; it reports zero rows affected.
func (s *Store) Update(id int64, name string, amount float64, category, note, date string) (int64, error) {
	res, err := s.db.Exec(
		"UPDATE expenses SET name = ?, amount = ?, category = ?, note = ?, date = ? WHERE expense_id = ?",
		name, amount, category, note, date, id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating expense %d: %w", id, err)
	}
	return res.RowsAffected()
}

// Selector picks the rows a DeleteBy call removes. Exactly one field must be
// set; ID uses HasID so that id 0 is expressible.
type Selector struct {
	HasID bool
	ID    int64
	Name  string
	Date  string
}

// DeleteBy removes expenses matching the single populated selector and
// reports how many rows went away.
func (s *Store) DeleteBy(sel Selector) (int64, error) {
	set := 0
	if sel.HasID {
		set++
	}
	if sel.Name != "" {
		set++
	}
	if sel.Date != "" {
		set++
	}
	if set != 1 {
		return 0, ErrSelector
	}

	var res sql.Result
	var err error
	switch {
	case sel.HasID:
		res, err = s.db.Exec("DELETE FROM expenses WHERE expense_id = ?", sel.ID)
	case sel.Name != "":
		res, err = s.db.Exec("DELETE FROM expenses WHERE name = ?", sel.Name)
	default:
		res, err = s.db.Exec("DELETE FROM expenses WHERE date = ?", sel.Date)
	}
	if err != nil {
		return 0, fmt.Errorf("deleting expenses: %w", err)
	}
	return res.RowsAffected()
}

// All returns every expense, most recent date first, newest id first within
// a date.
func (s *Store) All() ([]model.Expense, error) {
	return s.query("SELECT expense_id, name, amount, category, note, date FROM expenses ORDER BY date DESC, expense_id DESC")
}

// ByID returns the expense with the given id, or nil when absent.
func (s *Store) ByID(id int64) (*model.Expense, error) {
	row := s.db.QueryRow("SELECT expense_id, name, amount, category, note, date FROM expenses WHERE expense_id = ?", id)
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading expense %d: %w", id, err)
	}
	return &e, nil
}

// ByDate returns all expenses on one calendar date, newest id first.
func (s *Store) ByDate(date string) ([]model.Expense, error) {
	return s.query("SELECT expense_id, name, amount, category, note, date FROM expenses WHERE date = ? ORDER BY expense_id DESC", date)
}

// ByCategory returns expenses matching the category exactly, date descending.
func (s *Store) ByCategory(category string) ([]model.Expense, error) {
	return s.query("SELECT expense_id, name, amount, category, note, date FROM expenses WHERE category = ? ORDER BY date DESC", category)
}

// BetweenDates returns expenses in the inclusive [start, end] date range,
// ascending by date.
func (s *Store) BetweenDates(start, end string) ([]model.Expense, error) {
	return s.query("SELECT expense_id, name, amount, category, note, date FROM expenses WHERE date BETWEEN ? AND ? ORDER BY date ASC", start, end)
}

// SearchName returns expenses whose name contains the keyword,
// case-insensitively, date descending.
func (s *Store) SearchName(keyword string) ([]model.Expense, error) {
	return s.query("SELECT expense_id, name, amount, category, note, date FROM expenses WHERE name LIKE ? ORDER BY date DESC", "%"+keyword+"%")
}

// ByAmountRange returns expenses with min <= amount <= max, ascending by
// amount.
func (s *Store) ByAmountRange(min, max float64) ([]model.Expense, error) {
	return s.query("SELECT expense_id, name, amount, category, note, date FROM expenses WHERE amount BETWEEN ? AND ? ORDER BY amount ASC", min, max)
}

// Latest returns the n most recent expenses, date then id descending.
func (s *Store) Latest(n int) ([]model.Expense, error) {
	return s.query("SELECT expense_id, name, amount, category, note, date FROM expenses ORDER BY date DESC, expense_id DESC LIMIT ?", n)
}

// DistinctCategories returns every category in use, sorted ascending.
func (s *Store) DistinctCategories() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT category FROM expenses ORDER BY category ASC")
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Count returns the number of stored expenses.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&n)
	return n, err
}

func (s *Store) query(q string, args ...any) ([]model.Expense, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (model.Expense, error) {
	var e model.Expense
	var note sql.NullString
	if err := row.Scan(&e.ID, &e.Name, &e.Amount, &e.Category, &note, &e.Date); err != nil {
		return model.Expense{}, err
	}
	if note.Valid {
		e.Note = note.String
	}
	return e, nil
}
