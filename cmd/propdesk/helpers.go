// Output helpers shared by the propdesk subcommands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/propdesk/propdesk/internal/view"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printRowTable prints view rows in a human-readable table format.
func printRowTable(rows []view.Row) {
	if len(rows) == 0 {
		fmt.Println("No properties found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tADDRESS\tZIP\tPRICE\tROOMS\tOWNER")
	fmt.Fprintln(w, "--\t----\t-------\t---\t-----\t-----\t-----")
	for _, row := range rows {
		zip := ""
		if row.ZipCode != 0 {
			zip = strconv.FormatInt(row.ZipCode, 10)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			row.ID,
			truncate(row.Name, 30),
			truncate(row.Address, 40),
			zip,
			formatPrice(row.Price),
			row.RoomCount,
			truncate(row.Owner, 25),
		)
	}
	w.Flush()

	// Trim trailing whitespace the tabwriter pads each line with.
	for _, line := range strings.Split(sb.String(), "\n") {
		if line != "" {
			fmt.Println(strings.TrimRight(line, " "))
		}
	}
}

// truncate shortens s to at most n runes with an ellipsis.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// formatPrice renders a price with two decimal places.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
