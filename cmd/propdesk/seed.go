// Seed command inserts sample property records.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample properties",
	Long: `Seed inserts a handful of sample properties for demos and manual
testing. Samples whose names already exist are skipped.

Example:
  propdesk seed`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	n := store.Seed()
	fmt.Printf("Seeded %d propert%s.\n", n, pluralY(n))
	return nil
}
