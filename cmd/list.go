package cmd

import (
	"fmt"

	"outlay/internal/cli"
	"outlay/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagListLimit int
	flagListDate  string
	flagListMin   float64
	flagListMax   float64
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses (most recent first)",
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "l", 0, "Limit rows (0 = all)")
	listCmd.Flags().StringVar(&flagListDate, "date", "", "Only expenses on this date (YYYY-MM-DD)")
	listCmd.Flags().Float64Var(&flagListMin, "min", 0, "Minimum amount filter")
	listCmd.Flags().Float64Var(&flagListMax, "max", 0, "Maximum amount filter (enables range mode)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	if flagListDate != "" {
		if err := model.ValidateDate(flagListDate); err != nil {
			return err
		}
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var expenses []model.Expense
	switch {
	case flagListDate != "":
		expenses, err = st.ByDate(flagListDate)
	case flagListMax > 0:
		// --max switches to the inclusive amount range query, amount ascending.
		expenses, err = st.ByAmountRange(flagListMin, flagListMax)
	case flagListLimit > 0:
		expenses, err = st.Latest(flagListLimit)
	default:
		expenses, err = st.All()
	}
	if err != nil {
		return err
	}
	if flagListLimit > 0 && flagListLimit < len(expenses) {
		expenses = expenses[:flagListLimit]
	}

	if len(expenses) == 0 {
		fmt.Println("  No expenses yet.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.ExpenseTable("", cfg.General.Currency, expenses)))
	return nil
}
