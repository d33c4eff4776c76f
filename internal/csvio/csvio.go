// Package csvio translates between the expense table and its CSV form.
// It talks to storage through narrow interfaces so it can be exercised
// against fakes.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"outlay/internal/model"

	"github.com/sirupsen/logrus"
)

// Header is the exact column set of the interchange format.
var Header = []string{"expense_id", "name", "amount", "category", "note", "date"}

// ErrBadMode is returned for an import mode other than append or upsert.
var ErrBadMode = errors.New("csvio: mode must be \"append\" or \"upsert\"")

// Mode selects how imported rows are written.
type Mode string

const (
	ModeAppend Mode = "append"
	ModeUpsert Mode = "upsert"
)

// Policy decides what happens to a row with a malformed amount or date.
type Policy string

const (
	PolicySkip  Policy = "skip"
	PolicyAbort Policy = "abort"
)

// Lister is the read side csvio needs for export.
type Lister interface {
	All() ([]model.Expense, error)
}

// Writer is the write side csvio needs for import.
type Writer interface {
	Add(name string, amount float64, category, note, date string) (int64, error)
	Update(id int64, name string, amount float64, category, note, date string) (int64, error)
	ByID(id int64) (*model.Expense, error)
}

// Options controls one import run.
type Options struct {
	Mode        Mode
	OnMalformed Policy
	Log         *logrus.Logger
}

// Result summarizes one import run.
type Result struct {
	Inserted int
	Updated  int
	Skipped  int
}

// Export writes every stored expense to w in All() order and returns the
// row count (header excluded).
func Export(src Lister, w io.Writer) (int, error) {
	expenses, err := src.All()
	if err != nil {
		return 0, fmt.Errorf("loading expenses: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}
	for _, e := range expenses {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Category,
			e.Note,
			e.Date,
		}
		if err := cw.Write(record); err != nil {
			return 0, fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing csv: %w", err)
	}
	return len(expenses), nil
}

// Import reads CSV rows from r and writes them through dst. Incomplete rows
// are skipped silently; rows with a malformed amount or date follow the
// configured policy. In upsert mode a row whose expense_id names an existing
// record overwrites it in place.
func Import(dst Writer, r io.Reader, opts Options) (Result, error) {
	if opts.Mode != ModeAppend && opts.Mode != ModeUpsert {
		return Result{}, ErrBadMode
	}
	if opts.OnMalformed == "" {
		opts.OnMalformed = PolicySkip
	}
	log := opts.Log
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var res Result
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("reading row %d: %w", line+1, err)
		}
		line++

		name := field(record, "name")
		category := field(record, "category")
		date := field(record, "date")
		rawAmount := field(record, "amount")
		if name == "" || category == "" || date == "" || rawAmount == "" {
			res.Skipped++
			continue
		}

		amount, err := model.ParseAmount(rawAmount)
		if err == nil {
			err = model.ValidateDate(date)
		}
		if err != nil {
			if opts.OnMalformed == PolicyAbort {
				return res, fmt.Errorf("row %d: %w", line, err)
			}
			log.WithFields(logrus.Fields{"row": line, "reason": err}).Warn("skipping malformed row")
			res.Skipped++
			continue
		}

		note := field(record, "note")

		if opts.Mode == ModeUpsert {
			if rawID := field(record, "expense_id"); allDigits(rawID) {
				id, _ := strconv.ParseInt(rawID, 10, 64)
				existing, err := dst.ByID(id)
				if err != nil {
					return res, fmt.Errorf("row %d: %w", line, err)
				}
				if existing != nil {
					if _, err := dst.Update(id, name, amount, category, note, date); err != nil {
						return res, fmt.Errorf("row %d: %w", line, err)
					}
					res.Updated++
					continue
				}
			}
		}

		if _, err := dst.Add(name, amount, category, note, date); err != nil {
			return res, fmt.Errorf("row %d: %w", line, err)
		}
		res.Inserted++
	}

	return res, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
