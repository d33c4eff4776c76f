package cmd

import (
	"fmt"

	"outlay/internal/model"

	"github.com/spf13/cobra"
)

var flagAddNote string

var addCmd = &cobra.Command{
	Use:   "add <name> <amount> <category> <date>",
	Short: "Add a new expense",
	Args:  cobra.ExactArgs(4),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddNote, "note", "n", "", "Optional note")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	name, category, date := args[0], args[2], args[3]

	amount, err := model.ParseAmount(args[1])
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

	id, err := st.Add(name, amount, category, flagAddNote, date)
	if err != nil {
		return err
	}

	fmt.Printf("  Added expense %d.\n", id)
	return nil
}
