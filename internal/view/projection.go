// Package view implements the projection engine: a filtered, sorted,
// paginated view over an in-memory snapshot of property records.
//
// The engine is single-threaded and pull-based. It never auto-refreshes:
// after any store mutation the caller must invoke Refresh, which re-pulls
// the snapshot, re-applies the current filters and comparator, and resets
// to page 0. Staleness between a store mutation and the Refresh call is an
// accepted, explicit window.
package view

import (
	"errors"
	"fmt"
	"sort"

	"github.com/propdesk/propdesk/pkg/types"
)

// RowsPerPage is the fixed page size of the property table.
const RowsPerPage = 20

// Loader supplies the full record snapshot. A nil result marks a failed
// load; an empty slice means the store holds no records.
type Loader interface {
	GetAll() []types.PropertyRecord
}

var (
	// ErrSnapshotLoad reports that the loader could not produce a snapshot.
	ErrSnapshotLoad = errors.New("loading record snapshot failed")

	// ErrPageOutOfRange reports a page index outside [0, PageCount).
	// Requesting such a page is a contract violation by the caller, not a
	// recoverable data condition.
	ErrPageOutOfRange = errors.New("page index out of range")
)

// Engine maintains a consistent filtered, sorted, paginated view over a
// snapshot of records. The snapshot is a private copy: it becomes stale the
// instant the store is mutated elsewhere and is replaced wholesale on
// Refresh, never aliased.
type Engine struct {
	loader   Loader
	snapshot []Row
	filtered []Row
	filters  Filters
	less     LessFunc
	page     int
}

// NewEngine creates an engine over the given loader with no snapshot,
// empty filters, and snapshot ordering. Call Refresh before reading pages.
func NewEngine(loader Loader) *Engine {
	return &Engine{loader: loader}
}

// Refresh discards the previous snapshot, re-pulls every record from the
// loader, re-applies the current filters and comparator, and resets the
// current page to 0. Returns ErrSnapshotLoad when the loader fails.
func (e *Engine) Refresh() error {
	records := e.loader.GetAll()
	if records == nil {
		return ErrSnapshotLoad
	}
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = FromRecord(rec)
	}
	e.snapshot = rows
	e.recompute()
	return nil
}

// SetFilters installs new filter inputs and recomputes the view.
func (e *Engine) SetFilters(f Filters) {
	e.filters = f
	e.recompute()
}

// Filters returns the current filter inputs.
func (e *Engine) Filters() Filters {
	return e.filters
}

// SetSort installs a comparator (nil restores snapshot order) and
// recomputes the view.
func (e *Engine) SetSort(less LessFunc) {
	e.less = less
	e.recompute()
}

// recompute rebuilds the filtered view from the snapshot, re-sorts it if a
// comparator is set, and resets the current page to 0. Sorting is stable so
// equal rows keep their snapshot order.
func (e *Engine) recompute() {
	filtered := make([]Row, 0, len(e.snapshot))
	for _, row := range e.snapshot {
		if e.filters.Match(row) {
			filtered = append(filtered, row)
		}
	}
	if e.less != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return e.less(filtered[i], filtered[j])
		})
	}
	e.filtered = filtered
	e.page = 0
}

// SnapshotLen returns the number of records in the current snapshot.
func (e *Engine) SnapshotLen() int {
	return len(e.snapshot)
}

// FilteredLen returns the number of records passing the current filters.
func (e *Engine) FilteredLen() int {
	return len(e.filtered)
}

// PageCount returns ceil(FilteredLen / RowsPerPage) with a floor of 1:
// an empty result still has one (empty) page.
func (e *Engine) PageCount() int {
	n := (len(e.filtered) + RowsPerPage - 1) / RowsPerPage
	if n == 0 {
		n = 1
	}
	return n
}

// Page returns a copy of the half-open slice
// [i*RowsPerPage, min((i+1)*RowsPerPage, FilteredLen)) of the
// filtered+sorted view. Page 0 of an empty result is always valid and
// returns an empty page; any other index outside [0, PageCount) returns
// ErrPageOutOfRange.
func (e *Engine) Page(i int) ([]Row, error) {
	if i == 0 && len(e.filtered) == 0 {
		return []Row{}, nil
	}
	if i < 0 || i >= e.PageCount() {
		return nil, fmt.Errorf("%w: %d (page count %d)", ErrPageOutOfRange, i, e.PageCount())
	}
	from := i * RowsPerPage
	to := from + RowsPerPage
	if to > len(e.filtered) {
		to = len(e.filtered)
	}
	page := make([]Row, to-from)
	copy(page, e.filtered[from:to])
	return page, nil
}

// SetPage moves the current page index, subject to the same range rules
// as Page.
func (e *Engine) SetPage(i int) error {
	if _, err := e.Page(i); err != nil {
		return err
	}
	e.page = i
	return nil
}

// CurrentPage returns the zero-based current page index.
func (e *Engine) CurrentPage() int {
	return e.page
}

// CurrentRows returns the rows of the current page.
func (e *Engine) CurrentRows() []Row {
	rows, err := e.Page(e.page)
	if err != nil {
		// The engine never stores an out-of-range index.
		return []Row{}
	}
	return rows
}
