package cmd

import (
	"fmt"

	"outlay/internal/cli"
	"outlay/internal/model"

	"github.com/spf13/cobra"
)

var betweenCmd = &cobra.Command{
	Use:   "between <start> <end>",
	Short: "List expenses in an inclusive date range",
	Args:  cobra.ExactArgs(2),
	RunE:  runBetween,
}

func init() {
	rootCmd.AddCommand(betweenCmd)
}

func runBetween(_ *cobra.Command, args []string) error {
	start, end := args[0], args[1]
	if err := model.ValidateDate(start); err != nil {
		return err
	}
	if err := model.ValidateDate(end); err != nil {
		return err
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	expenses, err := st.BetweenDates(start, end)
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		fmt.Printf("  No expenses between %s and %s.\n", start, end)
		return nil
	}

	fmt.Print(cli.RenderTable(cli.ExpenseTable(fmt.Sprintf("%s to %s", start, end), cfg.General.Currency, expenses)))
	return nil
}
