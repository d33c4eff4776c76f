package store

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

// openTest creates a store on a throwaway database.
func openTest(t *testing.T) *Store {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	st, err := Open(filepath.Join(t.TempDir(), "expenses.db"), log)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func mustAdd(t *testing.T, st *Store, name string, amount float64, category, date string) int64 {
	t.Helper()
	id, err := st.Add(name, amount, category, "", date)
	if err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	return id
}

func TestAddAndByID(t *testing.T) {
	st := openTest(t)

	id, err := st.Add("coffee", 3.5, "food", "morning", "2024-04-01")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id = %d, want positive", id)
	}

	e, err := st.ByID(id)
	if err != nil {
		t.Fatalf("byID: %v", err)
	}
	if e == nil {
		t.Fatal("expense not found after insert")
	}
	if e.Name != "coffee" || e.Amount != 3.5 || e.Category != "food" || e.Note != "morning" || e.Date != "2024-04-01" {
		t.Errorf("round-tripped expense = %+v", *e)
	}
}

func TestByID_Missing(t *testing.T) {
	st := openTest(t)
	e, err := st.ByID(999)
	if err != nil {
		t.Fatalf("byID: %v", err)
	}
	if e != nil {
		t.Errorf("got %+v, want nil for missing id", *e)
	}
}

func TestAll_OrderedByDateThenIDDesc(t *testing.T) {
	st := openTest(t)
	a := mustAdd(t, st, "older", 1, "misc", "2024-01-01")
	b := mustAdd(t, st, "newest", 2, "misc", "2024-03-01")
	c := mustAdd(t, st, "same day later insert", 3, "misc", "2024-01-01")

	all, err := st.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	gotIDs := []int64{all[0].ID, all[1].ID, all[2].ID}
	wantIDs := []int64{b, c, a}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Errorf("order[%d] = %d, want %d", i, gotIDs[i], wantIDs[i])
		}
	}
}

func TestUpdate(t *testing.T) {
	st := openTest(t)
	id := mustAdd(t, st, "lunch", 10, "food", "2024-04-01")

	count, err := st.Update(id, "dinner", 25, "dining", "with friends", "2024-04-02")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if count != 1 {
		t.Errorf("rows affected = %d, want 1", count)
	}

	e, _ := st.ByID(id)
	if e.Name != "dinner" || e.Amount != 25 || e.Category != "dining" || e.Date != "2024-04-02" {
		t.Errorf("updated expense = %+v", *e)
	}
}

func TestUpdate_MissingIDIsZeroRows(t *testing.T) {
	st := openTest(t)
	count, err := st.Update(42, "x", 1, "y", "", "2024-01-01")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if count != 0 {
		t.Errorf("rows affected = %d, want 0", count)
	}
}

func TestDeleteBy(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		st := openTest(t)
		id := mustAdd(t, st, "a", 1, "misc", "2024-01-01")
		mustAdd(t, st, "b", 2, "misc", "2024-01-02")

		count, err := st.DeleteBy(Selector{HasID: true, ID: id})
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if count != 1 {
			t.Errorf("deleted %d rows, want 1", count)
		}
	})

	t.Run("by exact name", func(t *testing.T) {
		st := openTest(t)
		mustAdd(t, st, "gym", 30, "health", "2024-01-01")
		mustAdd(t, st, "gym", 30, "health", "2024-02-01")
		mustAdd(t, st, "other", 5, "misc", "2024-01-01")

		count, err := st.DeleteBy(Selector{Name: "gym"})
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if count != 2 {
			t.Errorf("deleted %d rows, want 2", count)
		}
	})

	t.Run("by date", func(t *testing.T) {
		st := openTest(t)
		mustAdd(t, st, "a", 1, "misc", "2024-05-05")
		mustAdd(t, st, "b", 2, "misc", "2024-05-05")

		count, err := st.DeleteBy(Selector{Date: "2024-05-05"})
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if count != 2 {
			t.Errorf("deleted %d rows, want 2", count)
		}
	})

	t.Run("no selector", func(t *testing.T) {
		st := openTest(t)
		if _, err := st.DeleteBy(Selector{}); !errors.Is(err, ErrSelector) {
			t.Errorf("error = %v, want ErrSelector", err)
		}
	})

	t.Run("two selectors", func(t *testing.T) {
		st := openTest(t)
		if _, err := st.DeleteBy(Selector{HasID: true, ID: 1, Name: "x"}); !errors.Is(err, ErrSelector) {
			t.Errorf("error = %v, want ErrSelector", err)
		}
	})
}

func TestBetweenDates_InclusiveAscending(t *testing.T) {
	st := openTest(t)
	mustAdd(t, st, "before", 1, "misc", "2023-12-31")
	mustAdd(t, st, "start", 2, "misc", "2024-01-01")
	mustAdd(t, st, "mid", 3, "misc", "2024-01-15")
	mustAdd(t, st, "end", 4, "misc", "2024-01-31")
	mustAdd(t, st, "after", 5, "misc", "2024-02-01")

	got, err := st.BetweenDates("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	for i, name := range []string{"start", "mid", "end"} {
		if got[i].Name != name {
			t.Errorf("row %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestSearchName_CaseInsensitive(t *testing.T) {
	st := openTest(t)
	mustAdd(t, st, "Grocery Run", 20, "food", "2024-01-01")
	mustAdd(t, st, "groceries", 15, "food", "2024-01-02")
	mustAdd(t, st, "cinema", 12, "fun", "2024-01-03")

	got, err := st.SearchName("GROC")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d rows, want 2", len(got))
	}
}

func TestByCategory_ExactMatch(t *testing.T) {
	st := openTest(t)
	mustAdd(t, st, "a", 1, "food", "2024-01-01")
	mustAdd(t, st, "b", 2, "Food", "2024-01-02")

	got, err := st.ByCategory("food")
	if err != nil {
		t.Fatalf("byCategory: %v", err)
	}
	if len(got) != 1 || got[0].Name != "a" {
		t.Errorf("got %+v, want only the lowercase food row", got)
	}
}

func TestByAmountRange(t *testing.T) {
	st := openTest(t)
	mustAdd(t, st, "cheap", 5, "misc", "2024-01-01")
	mustAdd(t, st, "mid", 50, "misc", "2024-01-02")
	mustAdd(t, st, "pricey", 500, "misc", "2024-01-03")

	got, err := st.ByAmountRange(5, 50)
	if err != nil {
		t.Fatalf("byAmountRange: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2 (inclusive bounds)", len(got))
	}
	if got[0].Amount != 5 || got[1].Amount != 50 {
		t.Errorf("not ascending by amount: %+v", got)
	}
}

func TestLatest(t *testing.T) {
	st := openTest(t)
	mustAdd(t, st, "old", 1, "misc", "2024-01-01")
	mustAdd(t, st, "newer", 2, "misc", "2024-02-01")
	mustAdd(t, st, "newest", 3, "misc", "2024-03-01")

	got, err := st.Latest(2)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(got) != 2 || got[0].Name != "newest" || got[1].Name != "newer" {
		t.Errorf("latest = %+v", got)
	}
}

func TestDistinctCategoriesAndCount(t *testing.T) {
	st := openTest(t)
	mustAdd(t, st, "a", 1, "transit", "2024-01-01")
	mustAdd(t, st, "b", 2, "food", "2024-01-02")
	mustAdd(t, st, "c", 3, "food", "2024-01-03")

	cats, err := st.DistinctCategories()
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != 2 || cats[0] != "food" || cats[1] != "transit" {
		t.Errorf("categories = %v, want [food transit]", cats)
	}

	n, err := st.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestOpen_IsIdempotent(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	path := filepath.Join(t.TempDir(), "expenses.db")

	st, err := Open(path, log)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	mustAdd(t, st, "persists", 1, "misc", "2024-01-01")
	_ = st.Close()

	st2, err := Open(path, log)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer func() { _ = st2.Close() }()

	n, err := st2.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count after reopen = %d, want 1", n)
	}
}
