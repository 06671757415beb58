// Delete command removes a property record by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteID int64

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a property",
	Long: `Delete removes the property with the given ID. Deleting a missing ID
fails and leaves the store unchanged.

Example:
  propdesk delete --id 3`,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().Int64Var(&deleteID, "id", 0, "property ID (required)")
	_ = deleteCmd.MarkFlagRequired("id")
}

func runDelete(cmd *cobra.Command, args []string) error {
	if !store.DeleteByID(deleteID) {
		return fmt.Errorf("failed to delete property %d (not found or store error, see log)", deleteID)
	}
	fmt.Printf("Property %d deleted successfully.\n", deleteID)
	return nil
}
