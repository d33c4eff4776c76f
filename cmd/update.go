package cmd

import (
	"fmt"
	"strconv"

	"outlay/internal/model"

	"github.com/spf13/cobra"
)

var flagUpdateNote string

var updateCmd = &cobra.Command{
	Use:   "update <id> <name> <amount> <category> <date>",
	Short: "Overwrite an existing expense",
	Args:  cobra.ExactArgs(5),
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&flagUpdateNote, "note", "n", "", "Optional note")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}
	name, category, date := args[1], args[3], args[4]

	amount, err := model.ParseAmount(args[2])
	if err != nil {
		return err
	}
	if err := model.CheckFields(name, category); err != nil {
		return err
	}
	if err := model.ValidateDate(date); err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	count, err := st.Update(id, name, amount, category, flagUpdateNote, date)
	if err != nil {
		return err
	}

	fmt.Printf("  Updated %d row(s).\n", count)
	return nil
}
