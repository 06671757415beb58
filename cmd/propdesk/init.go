// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the property store",
	Long: `Init creates the configuration directory, a default config.yaml, the
data directory, and an empty property database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store was already opened (and created) by PersistentPreRunE.
		fmt.Printf("Initialized property store in %s\n", storeDataDir)
		return nil
	},
}
