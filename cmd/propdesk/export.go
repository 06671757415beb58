// Export command writes every property record to a JSONL file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export properties to a JSONL file",
	Long: `Export writes every property record to a JSONL file, one JSON object
per line. The file is written atomically.

Example:
  propdesk export
  propdesk export --out /tmp/properties.jsonl`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "properties.jsonl", "output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	n, err := store.ExportRecords(exportOut)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Printf("Exported %d propert%s to %s\n", n, pluralY(n), exportOut)
	return nil
}

// pluralY returns the y/ies suffix for a count.
func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
