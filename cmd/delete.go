package cmd

import (
	"fmt"

	"outlay/internal/model"
	"outlay/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDeleteID   int64
	flagDeleteName string
	flagDeleteDate string
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete expenses by id, exact name, or exact date",
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().Int64Var(&flagDeleteID, "id", 0, "Delete by expense id")
	deleteCmd.Flags().StringVar(&flagDeleteName, "name", "", "Delete all expenses with this exact name")
	deleteCmd.Flags().StringVar(&flagDeleteDate, "date", "", "Delete all expenses on this date (YYYY-MM-DD)")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, _ []string) error {
	if flagDeleteDate != "" {
		if err := model.ValidateDate(flagDeleteDate); err != nil {
			return err
		}
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	sel := store.Selector{
		HasID: cmd.Flags().Changed("id"),
		ID:    flagDeleteID,
		Name:  flagDeleteName,
		Date:  flagDeleteDate,
	}
	count, err := st.DeleteBy(sel)
	if err != nil {
		return err
	}

	fmt.Printf("  Deleted %d row(s).\n", count)
	return nil
}
