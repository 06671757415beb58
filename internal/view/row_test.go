package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propdesk/propdesk/pkg/types"
)

func TestRowRoundTrip(t *testing.T) {
	rec := types.PropertyRecord{
		ID:        17,
		Name:      "Cedar Row House",
		Address:   "88 Cedar Row, Madison",
		ZipCode:   53711,
		Price:     199900.50,
		RoomCount: 3,
		Owner:     "Carla Mendes",
	}

	assert.Equal(t, rec, FromRecord(rec).ToRecord())
}

func TestRowEditPreservesIdentity(t *testing.T) {
	rec := types.PropertyRecord{
		ID:        9,
		Name:      "Old Mill Cottage",
		Address:   "1 Mill Lane",
		Price:     152000,
		RoomCount: 3,
		Owner:     "Dmitri Volkov",
	}

	row := FromRecord(rec)
	row.Price = 160000
	row.Owner = "New Owner"

	got := row.ToRecord()
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, 160000.0, got.Price)
	assert.Equal(t, "New Owner", got.Owner)
	assert.Equal(t, rec.Name, got.Name)
}
