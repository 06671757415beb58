// List command renders one page of the filtered, sorted property view.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propdesk/propdesk/internal/view"
)

var (
	listFilter   string
	listOwner    string
	listAddress  string
	listMinPrice string
	listMaxPrice string
	listSort     string
	listDesc     bool
	listPage     int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties",
	Long: `List shows a page of the property table, 20 rows per page.

All five filters combine with AND. The general filter matches name, address,
owner, price, and room count as case-insensitive substrings. A minimum or
maximum price that is not a valid number matches nothing.

Example:
  propdesk list
  propdesk list --filter maple --page 2
  propdesk list --owner alice --min-price 150000 --max-price 400000
  propdesk list --sort price --desc --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "general filter matched against every column")
	listCmd.Flags().StringVar(&listOwner, "owner", "", "filter by owner substring")
	listCmd.Flags().StringVar(&listAddress, "address", "", "filter by address substring")
	listCmd.Flags().StringVar(&listMinPrice, "min-price", "", "minimum price")
	listCmd.Flags().StringVar(&listMaxPrice, "max-price", "", "maximum price")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort column (id, name, address, zip, price, rooms, owner)")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number (1-based)")
}

func runList(cmd *cobra.Command, args []string) error {
	engine := view.NewEngine(store)
	if err := engine.Refresh(); err != nil {
		return errors.New("failed to load properties (see log for details)")
	}

	if listSort != "" {
		less, err := view.SortBy(listSort, listDesc)
		if err != nil {
			return err
		}
		engine.SetSort(less)
	}

	engine.SetFilters(view.Filters{
		General:  listFilter,
		Owner:    listOwner,
		Address:  listAddress,
		MinPrice: listMinPrice,
		MaxPrice: listMaxPrice,
	})

	if err := engine.SetPage(listPage - 1); err != nil {
		return fmt.Errorf("page %d is out of range: the view has %d page(s)", listPage, engine.PageCount())
	}

	rows := engine.CurrentRows()

	if flagJSON {
		return printJSON(struct {
			Page      int        `json:"page"`
			PageCount int        `json:"page_count"`
			Matching  int        `json:"matching"`
			Total     int        `json:"total"`
			Rows      []view.Row `json:"rows"`
		}{
			Page:      engine.CurrentPage() + 1,
			PageCount: engine.PageCount(),
			Matching:  engine.FilteredLen(),
			Total:     engine.SnapshotLen(),
			Rows:      rows,
		})
	}

	printRowTable(rows)
	fmt.Printf("Page %d/%d (%d matching, %d total)\n",
		engine.CurrentPage()+1, engine.PageCount(), engine.FilteredLen(), engine.SnapshotLen())
	return nil
}
