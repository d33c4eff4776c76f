package cmd

import (
	"fmt"

	"outlay/internal/cli"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search expenses by name substring (case-insensitive)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	expenses, err := st.SearchName(args[0])
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		fmt.Printf("  No expenses matching %q.\n", args[0])
		return nil
	}

	fmt.Print(cli.RenderTable(cli.ExpenseTable("", cfg.General.Currency, expenses)))
	return nil
}
