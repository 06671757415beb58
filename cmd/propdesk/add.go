// Add command creates a new property record.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/propdesk/propdesk/pkg/types"
)

var (
	addName    string
	addAddress string
	addZip     int64
	addPrice   float64
	addRooms   int
	addOwner   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new property",
	Long: `Add creates a new property record. The record is validated before any
store call; the store assigns the ID on success.

Example:
  propdesk add --name "Maple Court 12" --address "12 Maple Court" \
    --price 285000 --rooms 4 --owner "Alice Carmichael"
  propdesk add --name "Harbor Loft" --address "3 Quayside Walk" \
    --zip 23704 --price 412500 --rooms 2 --owner "Ben Osei" --json`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "property name (required, unique)")
	addCmd.Flags().StringVar(&addAddress, "address", "", "street address (required)")
	addCmd.Flags().Int64Var(&addZip, "zip", 0, "five-digit zip code (optional)")
	addCmd.Flags().Float64Var(&addPrice, "price", 0, "price (required, positive)")
	addCmd.Flags().IntVar(&addRooms, "rooms", 0, "number of rooms (required, positive)")
	addCmd.Flags().StringVar(&addOwner, "owner", "", "owner name (required)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("address")
	_ = addCmd.MarkFlagRequired("price")
	_ = addCmd.MarkFlagRequired("rooms")
	_ = addCmd.MarkFlagRequired("owner")
}

func runAdd(cmd *cobra.Command, args []string) error {
	rec := types.PropertyRecord{
		Name:      strings.TrimSpace(addName),
		Address:   strings.TrimSpace(addAddress),
		ZipCode:   addZip,
		Price:     addPrice,
		RoomCount: addRooms,
		Owner:     strings.TrimSpace(addOwner),
	}

	if err := rec.Validate(); err != nil {
		return err
	}

	if !store.Create(&rec) {
		return errors.New("failed to add property (duplicate name or store error, see log)")
	}

	if flagJSON {
		return printJSON(rec)
	}
	fmt.Printf("Property added successfully (id %d).\n", rec.ID)
	return nil
}
