package view

import "github.com/propdesk/propdesk/pkg/types"

// Row is the view binding for one property record: one mutable field per
// displayed attribute plus the identity. The projection engine treats rows
// as opaque filterable/comparable units.
type Row struct {
	ID        int64
	Name      string
	Address   string
	ZipCode   int64
	Price     float64
	RoomCount int
	Owner     string
}

// FromRecord constructs a Row from a property record.
func FromRecord(rec types.PropertyRecord) Row {
	return Row{
		ID:        rec.ID,
		Name:      rec.Name,
		Address:   rec.Address,
		ZipCode:   rec.ZipCode,
		Price:     rec.Price,
		RoomCount: rec.RoomCount,
		Owner:     rec.Owner,
	}
}

// ToRecord materializes the row's current field values back into a
// PropertyRecord, preserving the identity.
func (r Row) ToRecord() types.PropertyRecord {
	return types.PropertyRecord{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		ZipCode:   r.ZipCode,
		Price:     r.Price,
		RoomCount: r.RoomCount,
		Owner:     r.Owner,
	}
}
