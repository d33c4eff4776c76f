package cmd

import (
	"fmt"

	"outlay/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: not found, using defaults")
	}
	fmt.Println()
	fmt.Printf("  db_path:      %s\n", cfg.General.DBPath)
	fmt.Printf("  currency:     %s\n", cfg.General.Currency)
	fmt.Printf("  top_n:        %d\n", cfg.General.TopN)
	fmt.Printf("  on_malformed: %s\n", cfg.Import.OnMalformed)
	return nil
}
