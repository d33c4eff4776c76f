package cmd

import (
	"fmt"
	"strconv"

	"outlay/internal/cli"
	"outlay/internal/report"

	"github.com/spf13/cobra"
)

var flagReportTop int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Spending summary: totals, categories, months, top expenses",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().IntVarP(&flagReportTop, "top", "t", 0, "How many top expenses to show (default from config)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	expenses, err := st.All()
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		fmt.Println("  Add one with `outlay add` and come back.")
		return nil
	}

	symbol := cfg.General.Currency
	topN := flagReportTop
	if topN <= 0 {
		topN = cfg.General.TopN
	}

	total := report.TotalSpent(expenses)
	categories := report.ByCategory(expenses)
	months := report.MonthlySummary(expenses)
	top := report.TopExpenses(expenses, topN)
	avg := report.AverageDaily(expenses)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING REPORT"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Overview",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Expenses", cli.FormatNumber(int64(len(expenses)))},
			{"Total Spent", cli.FormatAmount(symbol, total)},
			{"Average/Day", cli.FormatAmount(symbol, avg)},
		},
	}))
	fmt.Println()

	// Bars scale to the largest category.
	maxCat := 0.0
	if len(categories) > 0 {
		maxCat = categories[0].Total
	}
	catRows := make([][]string, 0, len(categories)+2)
	for _, c := range categories {
		catRows = append(catRows, []string{
			c.Category,
			cli.FormatAmount(symbol, c.Total),
			cli.FormatShare(c.Total, total),
			cli.RenderHorizontalBar(c.Total, maxCat, 20),
		})
	}
	catRows = append(catRows, []string{"---"})
	catRows = append(catRows, []string{"TOTAL", cli.FormatAmount(symbol, total), "", ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Spent", "Share", ""},
		Rows:    catRows,
	}))
	fmt.Println()

	monthRows := make([][]string, 0, len(months))
	for _, m := range months {
		monthRows = append(monthRows, []string{m.Month, cli.FormatAmount(symbol, m.Total)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Month",
		Headers: []string{"Month", "Spent"},
		Rows:    monthRows,
	}))
	fmt.Println()

	topRows := make([][]string, 0, len(top))
	for _, e := range top {
		topRows = append(topRows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Date,
			e.Name,
			e.Category,
			cli.FormatAmount(symbol, e.Amount),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Top %d Expenses", len(top)),
		Headers: []string{"ID", "Date", "Name", "Category", "Amount"},
		Rows:    topRows,
	}))

	return nil
}
