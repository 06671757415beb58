package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propdesk/propdesk/pkg/types"
)

// stubLoader serves a fixed snapshot; a nil slice simulates a store failure.
type stubLoader struct {
	records []types.PropertyRecord
}

func (s *stubLoader) GetAll() []types.PropertyRecord {
	return s.records
}

// makeRecords builds n distinct records in snapshot order.
func makeRecords(n int) []types.PropertyRecord {
	records := make([]types.PropertyRecord, n)
	for i := range records {
		records[i] = types.PropertyRecord{
			ID:        int64(i + 1),
			Name:      fmt.Sprintf("Property %03d", i+1),
			Address:   fmt.Sprintf("%d Main Street", i+1),
			Price:     float64(100000 + i*1000),
			RoomCount: 1 + i%6,
			Owner:     fmt.Sprintf("Owner %d", i%7),
		}
	}
	return records
}

func newTestEngine(t *testing.T, n int) *Engine {
	t.Helper()
	e := NewEngine(&stubLoader{records: makeRecords(n)})
	require.NoError(t, e.Refresh())
	return e
}

func TestEngineRefreshFailure(t *testing.T) {
	e := NewEngine(&stubLoader{records: nil})
	assert.ErrorIs(t, e.Refresh(), ErrSnapshotLoad)
}

func TestEngineEmptyFilterIsIdentity(t *testing.T) {
	e := newTestEngine(t, 25)

	assert.Equal(t, 25, e.SnapshotLen())
	assert.Equal(t, 25, e.FilteredLen())

	// Snapshot order is preserved when no comparator is set.
	page, err := e.Page(0)
	require.NoError(t, err)
	require.Len(t, page, RowsPerPage)
	for i, row := range page {
		assert.Equal(t, int64(i+1), row.ID)
	}
}

func TestEnginePageCountFloor(t *testing.T) {
	tests := []struct {
		records   int
		pageCount int
	}{
		{0, 1},
		{1, 1},
		{19, 1},
		{20, 1},
		{21, 2},
		{40, 2},
		{41, 3},
		{45, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d records", tt.records), func(t *testing.T) {
			e := newTestEngine(t, tt.records)
			assert.Equal(t, tt.pageCount, e.PageCount())
		})
	}
}

func TestEnginePagesAreExactAndNonOverlapping(t *testing.T) {
	e := newTestEngine(t, 45)
	require.Equal(t, 3, e.PageCount())

	var concat []Row
	for i := 0; i < e.PageCount(); i++ {
		page, err := e.Page(i)
		require.NoError(t, err)
		if i < e.PageCount()-1 {
			assert.Len(t, page, RowsPerPage)
		}
		concat = append(concat, page...)
	}

	// Concatenating all pages reproduces the filtered view exactly.
	require.Len(t, concat, 45)
	for i, row := range concat {
		assert.Equal(t, int64(i+1), row.ID)
	}

	// Last page holds the remainder.
	last, err := e.Page(2)
	require.NoError(t, err)
	assert.Len(t, last, 5)
}

func TestEnginePageOutOfRange(t *testing.T) {
	e := newTestEngine(t, 45)

	_, err := e.Page(-1)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	_, err = e.Page(3)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	assert.ErrorIs(t, e.SetPage(3), ErrPageOutOfRange)
}

func TestEngineEmptyResultPageZero(t *testing.T) {
	e := newTestEngine(t, 0)

	assert.Equal(t, 1, e.PageCount())

	page, err := e.Page(0)
	require.NoError(t, err)
	assert.Empty(t, page)

	// Only page 0 is valid on an empty result.
	_, err = e.Page(1)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestEngineFilteredEmptyPageZero(t *testing.T) {
	e := newTestEngine(t, 30)
	e.SetFilters(Filters{MinPrice: "garbage"})

	assert.Equal(t, 0, e.FilteredLen())
	assert.Equal(t, 1, e.PageCount())

	page, err := e.Page(0)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestEngineRefreshResetsPage(t *testing.T) {
	e := newTestEngine(t, 45)

	require.NoError(t, e.SetPage(2))
	assert.Equal(t, 2, e.CurrentPage())

	require.NoError(t, e.Refresh())
	assert.Equal(t, 0, e.CurrentPage())
}

func TestEngineFilterAndSortResetPage(t *testing.T) {
	e := newTestEngine(t, 45)

	require.NoError(t, e.SetPage(1))
	e.SetFilters(Filters{General: "property"})
	assert.Equal(t, 0, e.CurrentPage())

	require.NoError(t, e.SetPage(1))
	less, err := SortBy(ColumnPrice, true)
	require.NoError(t, err)
	e.SetSort(less)
	assert.Equal(t, 0, e.CurrentPage())
}

func TestEngineSortDescendingByPrice(t *testing.T) {
	e := newTestEngine(t, 45)

	less, err := SortBy(ColumnPrice, true)
	require.NoError(t, err)
	e.SetSort(less)

	page, err := e.Page(0)
	require.NoError(t, err)
	require.Len(t, page, RowsPerPage)
	for i := 1; i < len(page); i++ {
		assert.GreaterOrEqual(t, page[i-1].Price, page[i].Price)
	}
	// Highest price first.
	assert.Equal(t, int64(45), page[0].ID)
}

func TestEngineSortIsStable(t *testing.T) {
	records := []types.PropertyRecord{
		{ID: 1, Name: "A", Address: "x", Price: 100, RoomCount: 2, Owner: "o"},
		{ID: 2, Name: "B", Address: "x", Price: 100, RoomCount: 2, Owner: "o"},
		{ID: 3, Name: "C", Address: "x", Price: 100, RoomCount: 2, Owner: "o"},
	}
	e := NewEngine(&stubLoader{records: records})
	require.NoError(t, e.Refresh())

	less, err := SortBy(ColumnPrice, false)
	require.NoError(t, err)
	e.SetSort(less)

	page, err := e.Page(0)
	require.NoError(t, err)
	// Equal keys keep snapshot order.
	assert.Equal(t, []int64{1, 2, 3}, []int64{page[0].ID, page[1].ID, page[2].ID})
}

func TestEngineFilterThenSortThenPaginate(t *testing.T) {
	e := newTestEngine(t, 45)

	// Owner 0 owns records 1, 8, 15, ... (i%7 == 0).
	e.SetFilters(Filters{Owner: "owner 0"})
	assert.Equal(t, 7, e.FilteredLen())
	assert.Equal(t, 1, e.PageCount())

	less, err := SortBy(ColumnID, true)
	require.NoError(t, err)
	e.SetSort(less)

	page, err := e.Page(0)
	require.NoError(t, err)
	require.Len(t, page, 7)
	assert.Equal(t, int64(43), page[0].ID)
	assert.Equal(t, int64(1), page[6].ID)
}

func TestEngineSnapshotIsACopy(t *testing.T) {
	loader := &stubLoader{records: makeRecords(3)}
	e := NewEngine(loader)
	require.NoError(t, e.Refresh())

	// Mutating the loader's backing slice must not leak into the view
	// until the next Refresh.
	loader.records[0].Name = "Mutated"
	page, err := e.Page(0)
	require.NoError(t, err)
	assert.Equal(t, "Property 001", page[0].Name)

	require.NoError(t, e.Refresh())
	page, err = e.Page(0)
	require.NoError(t, err)
	assert.Equal(t, "Mutated", page[0].Name)
}

func TestSortByUnknownColumn(t *testing.T) {
	_, err := SortBy("basement", false)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestSortByColumns(t *testing.T) {
	a := Row{ID: 1, Name: "beta", Address: "2nd Ave", ZipCode: 11111, Price: 5, RoomCount: 9, Owner: "Zed"}
	b := Row{ID: 2, Name: "Alpha", Address: "1st Ave", ZipCode: 22222, Price: 10, RoomCount: 1, Owner: "ann"}

	tests := []struct {
		column string
		aFirst bool
	}{
		{ColumnID, true},
		{ColumnName, false},    // Alpha < beta, case-insensitive
		{ColumnAddress, false}, // 1st < 2nd
		{ColumnZip, true},
		{ColumnPrice, true},
		{ColumnRooms, false},
		{ColumnOwner, false}, // ann < Zed, case-insensitive
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			less, err := SortBy(tt.column, false)
			require.NoError(t, err)
			assert.Equal(t, tt.aFirst, less(a, b))
			assert.Equal(t, !tt.aFirst, less(b, a))

			desc, err := SortBy(tt.column, true)
			require.NoError(t, err)
			assert.Equal(t, !tt.aFirst, desc(a, b))
		})
	}
}
