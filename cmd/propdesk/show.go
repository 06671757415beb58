// Show command displays a single property record.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propdesk/propdesk/pkg/types"
)

var (
	showID   int64
	showName string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one property",
	Long: `Show displays a single property looked up by ID or by exact name.

Example:
  propdesk show --id 3
  propdesk show --name "Maple Court 12" --json`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().Int64Var(&showID, "id", 0, "property ID")
	showCmd.Flags().StringVar(&showName, "name", "", "exact property name")
	showCmd.MarkFlagsOneRequired("id", "name")
	showCmd.MarkFlagsMutuallyExclusive("id", "name")
}

func runShow(cmd *cobra.Command, args []string) error {
	var rec *types.PropertyRecord
	if cmd.Flags().Changed("id") {
		rec = store.GetByID(showID)
	} else {
		rec = store.GetByName(showName)
	}
	if rec == nil {
		return errors.New("property not found")
	}

	if flagJSON {
		return printJSON(rec)
	}

	fmt.Printf("ID:      %d\n", rec.ID)
	fmt.Printf("Name:    %s\n", rec.Name)
	fmt.Printf("Address: %s\n", rec.Address)
	if rec.ZipCode != 0 {
		fmt.Printf("Zip:     %d\n", rec.ZipCode)
	}
	fmt.Printf("Price:   %s\n", formatPrice(rec.Price))
	fmt.Printf("Rooms:   %d\n", rec.RoomCount)
	fmt.Printf("Owner:   %s\n", rec.Owner)
	return nil
}
