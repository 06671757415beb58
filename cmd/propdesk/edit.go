// Edit command updates fields of an existing property record.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	editID      int64
	editName    string
	editAddress string
	editZip     int64
	editPrice   float64
	editRooms   int
	editOwner   string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit an existing property",
	Long: `Edit replaces the given fields of an existing property. Fields whose
flags are not set keep their current values; the ID never changes.

Example:
  propdesk edit --id 3 --price 295000
  propdesk edit --id 3 --owner "New Owner" --rooms 5`,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().Int64Var(&editID, "id", 0, "property ID (required)")
	editCmd.Flags().StringVar(&editName, "name", "", "new property name")
	editCmd.Flags().StringVar(&editAddress, "address", "", "new street address")
	editCmd.Flags().Int64Var(&editZip, "zip", 0, "new zip code (0 clears it)")
	editCmd.Flags().Float64Var(&editPrice, "price", 0, "new price")
	editCmd.Flags().IntVar(&editRooms, "rooms", 0, "new number of rooms")
	editCmd.Flags().StringVar(&editOwner, "owner", "", "new owner name")
	_ = editCmd.MarkFlagRequired("id")
}

func runEdit(cmd *cobra.Command, args []string) error {
	rec := store.GetByID(editID)
	if rec == nil {
		return fmt.Errorf("property %d not found", editID)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		rec.Name = strings.TrimSpace(editName)
	}
	if flags.Changed("address") {
		rec.Address = strings.TrimSpace(editAddress)
	}
	if flags.Changed("zip") {
		rec.ZipCode = editZip
	}
	if flags.Changed("price") {
		rec.Price = editPrice
	}
	if flags.Changed("rooms") {
		rec.RoomCount = editRooms
	}
	if flags.Changed("owner") {
		rec.Owner = strings.TrimSpace(editOwner)
	}

	if err := rec.Validate(); err != nil {
		return err
	}

	if !store.Update(*rec) {
		return errors.New("failed to update property (duplicate name or store error, see log)")
	}

	if flagJSON {
		return printJSON(rec)
	}
	fmt.Printf("Property %d updated successfully.\n", rec.ID)
	return nil
}
