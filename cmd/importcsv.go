package cmd

import (
	"fmt"
	"os"

	"outlay/internal/csvio"

	"github.com/spf13/cobra"
)

var flagImportMode string

var importCmd = &cobra.Command{
	Use:   "importcsv <file>",
	Short: "Import expenses from a CSV file",
	Long: `Import expenses from a CSV file with the header
expense_id,name,amount,category,note,date.

In append mode every complete row becomes a new record. In upsert mode rows
whose expense_id matches an existing record overwrite it in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&flagImportMode, "mode", "m", "append", "Import mode: append or upsert")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer func() { _ = f.Close() }()

	res, err := csvio.Import(st, f, csvio.Options{
		Mode:        csvio.Mode(flagImportMode),
		OnMalformed: csvio.Policy(cfg.Import.OnMalformed),
		Log:         log,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Imported: %d inserted, %d updated", res.Inserted, res.Updated)
	if res.Skipped > 0 {
		fmt.Printf(", %d skipped", res.Skipped)
	}
	fmt.Println(".")
	return nil
}
