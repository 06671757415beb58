package view

import (
	"errors"
	"fmt"
	"strings"
)

// LessFunc orders two rows. A nil LessFunc means snapshot order.
type LessFunc func(a, b Row) bool

// Sortable column names accepted by SortBy.
const (
	ColumnID      = "id"
	ColumnName    = "name"
	ColumnAddress = "address"
	ColumnZip     = "zip"
	ColumnPrice   = "price"
	ColumnRooms   = "rooms"
	ColumnOwner   = "owner"
)

// ErrUnknownColumn is returned by SortBy for an unrecognized column name.
var ErrUnknownColumn = errors.New("unknown sort column")

// SortBy resolves a column name and direction to a comparator. String
// columns compare case-insensitively.
func SortBy(column string, descending bool) (LessFunc, error) {
	var less LessFunc
	switch strings.ToLower(strings.TrimSpace(column)) {
	case ColumnID:
		less = func(a, b Row) bool { return a.ID < b.ID }
	case ColumnName:
		less = func(a, b Row) bool { return lowerLess(a.Name, b.Name) }
	case ColumnAddress:
		less = func(a, b Row) bool { return lowerLess(a.Address, b.Address) }
	case ColumnZip:
		less = func(a, b Row) bool { return a.ZipCode < b.ZipCode }
	case ColumnPrice:
		less = func(a, b Row) bool { return a.Price < b.Price }
	case ColumnRooms:
		less = func(a, b Row) bool { return a.RoomCount < b.RoomCount }
	case ColumnOwner:
		less = func(a, b Row) bool { return lowerLess(a.Owner, b.Owner) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	if descending {
		asc := less
		less = func(a, b Row) bool { return asc(b, a) }
	}
	return less, nil
}

func lowerLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
