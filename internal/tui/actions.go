package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"outlay/internal/cli"
	"outlay/internal/csvio"
	"outlay/internal/model"
	"outlay/internal/report"
	"outlay/internal/store"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func validDate(s string) error {
	return model.ValidateDate(strings.TrimSpace(s))
}

func validAmount(s string) error {
	_, err := model.ParseAmount(s)
	return err
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func validID(s string) error {
	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
		return fmt.Errorf("%q is not a valid id", s)
	}
	return nil
}

// expenseFields are the shared add/update inputs.
func (a *App) expenseFields() []huh.Field {
	return []huh.Field{
		huh.NewInput().Title("Name").Value(&a.inputs.name).Validate(required("name")),
		huh.NewInput().Title("Amount").Value(&a.inputs.amount).Validate(validAmount),
		huh.NewInput().Title("Category").Value(&a.inputs.category).Validate(required("category")),
		huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&a.inputs.date).Validate(validDate),
		huh.NewInput().Title("Note (optional)").Value(&a.inputs.note),
	}
}

func (a *App) buildForm(option int) *huh.Form {
	var fields []huh.Field

	switch option {
	case 1: // add
		fields = a.expenseFields()
	case 3: // update
		fields = append([]huh.Field{
			huh.NewInput().Title("Expense ID").Value(&a.inputs.id).Validate(validID),
		}, a.expenseFields()...)
	case 4: // delete
		fields = []huh.Field{
			huh.NewSelect[string]().
				Title("Delete by").
				Options(
					huh.NewOption("ID", "id"),
					huh.NewOption("Exact name", "name"),
					huh.NewOption("Exact date", "date"),
				).
				Value(&a.inputs.selector),
			huh.NewInput().Title("Value").Value(&a.inputs.value).Validate(required("value")),
		}
	case 5: // search
		fields = []huh.Field{
			huh.NewInput().Title("Keyword").Value(&a.inputs.keyword).Validate(required("keyword")),
		}
	case 6: // by category
		if cats, err := a.st.DistinctCategories(); err == nil && len(cats) > 0 {
			opts := make([]huh.Option[string], 0, len(cats))
			for _, c := range cats {
				opts = append(opts, huh.NewOption(c, c))
			}
			fields = []huh.Field{
				huh.NewSelect[string]().Title("Category").Options(opts...).Value(&a.inputs.category),
			}
		} else {
			fields = []huh.Field{
				huh.NewInput().Title("Category").Value(&a.inputs.category).Validate(required("category")),
			}
		}
	case 7: // between
		fields = []huh.Field{
			huh.NewInput().Title("Start (YYYY-MM-DD)").Value(&a.inputs.start).Validate(validDate),
			huh.NewInput().Title("End (YYYY-MM-DD)").Value(&a.inputs.end).Validate(validDate),
		}
	case 9: // csv
		fields = []huh.Field{
			huh.NewSelect[string]().
				Title("Operation").
				Options(
					huh.NewOption("Export all expenses", "export"),
					huh.NewOption("Import (append)", "append"),
					huh.NewOption("Import (upsert)", "upsert"),
				).
				Value(&a.inputs.mode),
			huh.NewInput().Title("File path").Value(&a.inputs.path).Validate(required("path")),
		}
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// submit runs the completed form's action against storage.
func (a App) submit() (tea.Model, tea.Cmd) {
	in := *a.inputs
	switch a.action {
	case 1:
		amount, _ := model.ParseAmount(in.amount)
		id, err := a.st.Add(strings.TrimSpace(in.name), amount, strings.TrimSpace(in.category), strings.TrimSpace(in.note), strings.TrimSpace(in.date))
		return a.finish(fmt.Sprintf("  Added expense %d.\n", id), err)

	case 3:
		id, _ := strconv.ParseInt(strings.TrimSpace(in.id), 10, 64)
		amount, _ := model.ParseAmount(in.amount)
		count, err := a.st.Update(id, strings.TrimSpace(in.name), amount, strings.TrimSpace(in.category), strings.TrimSpace(in.note), strings.TrimSpace(in.date))
		return a.finish(fmt.Sprintf("  Updated %d row(s).\n", count), err)

	case 4:
		sel, err := a.deleteSelector()
		if err != nil {
			return a.finish("", err)
		}
		count, err := a.st.DeleteBy(sel)
		return a.finish(fmt.Sprintf("  Deleted %d row(s).\n", count), err)

	case 5:
		keyword := strings.TrimSpace(in.keyword)
		return a.showList(fmt.Sprintf("Search: %q", keyword), func() ([]model.Expense, error) {
			return a.st.SearchName(keyword)
		})

	case 6:
		category := strings.TrimSpace(in.category)
		return a.showList(fmt.Sprintf("Category: %s", category), func() ([]model.Expense, error) {
			return a.st.ByCategory(category)
		})

	case 7:
		start, end := strings.TrimSpace(in.start), strings.TrimSpace(in.end)
		return a.showList(fmt.Sprintf("%s to %s", start, end), func() ([]model.Expense, error) {
			return a.st.BetweenDates(start, end)
		})

	case 9:
		return a.runCSV()
	}

	a.state = stateMenu
	return a, nil
}

func (a App) deleteSelector() (store.Selector, error) {
	value := strings.TrimSpace(a.inputs.value)
	switch a.inputs.selector {
	case "id":
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return store.Selector{}, fmt.Errorf("%q is not a valid id", value)
		}
		return store.Selector{HasID: true, ID: id}, nil
	case "date":
		if err := model.ValidateDate(value); err != nil {
			return store.Selector{}, err
		}
		return store.Selector{Date: value}, nil
	default:
		return store.Selector{Name: value}, nil
	}
}

func (a App) runCSV() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(a.inputs.path)

	if a.inputs.mode == "export" {
		f, err := os.Create(path)
		if err != nil {
			return a.finish("", err)
		}
		defer func() { _ = f.Close() }()

		count, err := csvio.Export(a.st, f)
		return a.finish(fmt.Sprintf("  Exported %d row(s) to %s.\n", count, path), err)
	}

	f, err := os.Open(path)
	if err != nil {
		return a.finish("", err)
	}
	defer func() { _ = f.Close() }()

	res, err := csvio.Import(a.st, f, csvio.Options{
		Mode:        csvio.Mode(a.inputs.mode),
		OnMalformed: csvio.Policy(a.cfg.Import.OnMalformed),
	})
	return a.finish(fmt.Sprintf("  Imported: %d inserted, %d updated, %d skipped.\n", res.Inserted, res.Updated, res.Skipped), err)
}

// finish moves to the result screen.
func (a App) finish(result string, err error) (tea.Model, tea.Cmd) {
	a.result = result
	if err != nil {
		a.result = ""
	}
	a.err = err
	a.state = stateResult
	return a, nil
}

func (a App) showList(title string, fetch func() ([]model.Expense, error)) (tea.Model, tea.Cmd) {
	expenses, err := fetch()
	if err != nil {
		return a.finish("", err)
	}
	if len(expenses) == 0 {
		return a.finish("  Nothing found.\n", nil)
	}

	a.tbl = newExpenseTable(a.cfg.General.Currency, expenses)
	a.tblTitle = title
	a.state = stateTable
	return a, nil
}

func newExpenseTable(symbol string, expenses []model.Expense) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Date", Width: 10},
		{Title: "Name", Width: 22},
		{Title: "Category", Width: 14},
		{Title: "Amount", Width: 12},
		{Title: "Note", Width: 24},
	}

	rows := make([]table.Row, 0, len(expenses))
	for _, row := range cli.ExpenseRows(symbol, expenses) {
		rows = append(rows, table.Row(row))
	}

	height := len(rows) + 1
	if height > 15 {
		height = 15
	}

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
}

func (a App) showReport() (tea.Model, tea.Cmd) {
	expenses, err := a.st.All()
	if err != nil {
		return a.finish("", err)
	}
	if len(expenses) == 0 {
		return a.finish("  No expenses recorded yet.\n", nil)
	}

	symbol := a.cfg.General.Currency
	total := report.TotalSpent(expenses)

	var b strings.Builder
	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "Overview",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Expenses", cli.FormatNumber(int64(len(expenses)))},
			{"Total Spent", cli.FormatAmount(symbol, total)},
			{"Average/Day", cli.FormatAmount(symbol, report.AverageDaily(expenses))},
		},
	}))

	catRows := [][]string{}
	for _, c := range report.ByCategory(expenses) {
		catRows = append(catRows, []string{c.Category, cli.FormatAmount(symbol, c.Total), cli.FormatShare(c.Total, total)})
	}
	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Spent", "Share"},
		Rows:    catRows,
	}))

	monthRows := [][]string{}
	for _, m := range report.MonthlySummary(expenses) {
		monthRows = append(monthRows, []string{m.Month, cli.FormatAmount(symbol, m.Total)})
	}
	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "By Month",
		Headers: []string{"Month", "Spent"},
		Rows:    monthRows,
	}))

	topRows := [][]string{}
	for _, e := range report.TopExpenses(expenses, a.cfg.General.TopN) {
		topRows = append(topRows, []string{strconv.FormatInt(e.ID, 10), e.Date, e.Name, cli.FormatAmount(symbol, e.Amount)})
	}
	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "Top Expenses",
		Headers: []string{"ID", "Date", "Name", "Amount"},
		Rows:    topRows,
	}))

	return a.finish(b.String(), nil)
}
