package cmd

import (
	"fmt"
	"os"

	"outlay/internal/csvio"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all expenses to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	count, err := csvio.Export(st, f)
	if err != nil {
		return err
	}

	fmt.Printf("  Exported %d row(s) to %s.\n", count, args[0])
	return nil
}
