// Import command creates property records from a JSONL file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importIn string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import properties from a JSONL file",
	Long: `Import reads a JSONL file and creates one property record per
well-formed line. Malformed lines, invalid records, and duplicate names are
skipped. Imported records receive fresh IDs.

Example:
  propdesk import --in properties.jsonl`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importIn, "in", "", "input file path (required)")
	_ = importCmd.MarkFlagRequired("in")
}

func runImport(cmd *cobra.Command, args []string) error {
	created, skipped, err := store.ImportRecords(importIn)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	fmt.Printf("Imported %d propert%s (%d skipped) from %s\n", created, pluralY(created), skipped, importIn)
	return nil
}
