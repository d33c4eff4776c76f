package cmd

import (
	"fmt"

	"outlay/internal/cli"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"
)

var bycatCmd = &cobra.Command{
	Use:   "bycat <category>",
	Short: "List expenses in one category (exact match)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBycat,
}

func init() {
	rootCmd.AddCommand(bycatCmd)
}

func runBycat(_ *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	category := args[0]
	expenses, err := st.ByCategory(category)
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		fmt.Printf("  No expenses in category %q.\n", category)
		if suggestion := nearestCategory(st, category); suggestion != "" {
			fmt.Printf("  Did you mean %q?\n", suggestion)
		}
		return nil
	}

	fmt.Print(cli.RenderTable(cli.ExpenseTable(category, cfg.General.Currency, expenses)))
	return nil
}

// nearestCategory returns the existing category closest to the miss, or ""
// when nothing is within an edit distance of 3. Matching is read-only UX;
// grouping itself stays byte-exact.
func nearestCategory(st categoryLister, miss string) string {
	cats, err := st.DistinctCategories()
	if err != nil {
		return ""
	}

	best := ""
	bestDist := 4
	for _, c := range cats {
		if d := levenshtein.ComputeDistance(miss, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

type categoryLister interface {
	DistinctCategories() ([]string, error)
}
