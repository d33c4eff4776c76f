// Package cmd implements the outlay CLI commands.
package cmd

import (
	"os"

	"outlay/internal/config"
	"outlay/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDB      string
	flagVerbose bool
)

// log is the shared diagnostic logger. Primary command output goes to
// stdout; logrus writes to stderr so the two never interleave.
var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:          "outlay",
	Short:        "Personal expense tracker",
	Long:         "Track expenses in a local SQLite database and report on where the money went.",
	SilenceUsage: true,
	RunE:         runReport,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Path to the expense database (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig returns the effective config with the --db flag applied.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDB != "" {
		cfg.General.DBPath = flagDB
	}
	return cfg, nil
}

// openStore is the shared storage opening path used by all commands.
// Opening runs pending migrations, so no explicit init is required first.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	st, err := store.Open(cfg.General.DBPath, log)
	if err != nil {
		return nil, cfg, err
	}
	return st, cfg, nil
}
