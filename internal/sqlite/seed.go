// This file implements sample-data seeding for demos and manual testing.
package sqlite

import "github.com/propdesk/propdesk/pkg/types"

// seedRecords are the sample properties inserted by Seed.
var seedRecords = []types.PropertyRecord{
	{Name: "Maple Court 12", Address: "12 Maple Court, Springfield", ZipCode: 62704, Price: 285000, RoomCount: 4, Owner: "Alice Carmichael"},
	{Name: "Harbor View Loft", Address: "3 Quayside Walk, Portsmouth", ZipCode: 23704, Price: 412500, RoomCount: 2, Owner: "Benjamin Osei"},
	{Name: "Cedar Row House", Address: "88 Cedar Row, Madison", ZipCode: 53711, Price: 199900, RoomCount: 3, Owner: "Carla Mendes"},
	{Name: "Old Mill Cottage", Address: "1 Mill Lane, Rochester", ZipCode: 14607, Price: 152000, RoomCount: 3, Owner: "Dmitri Volkov"},
	{Name: "Sunset Terrace 5B", Address: "5B Sunset Terrace, Tucson", ZipCode: 85701, Price: 330000, RoomCount: 5, Owner: "Elena Ruiz"},
	{Name: "Birchwood Bungalow", Address: "47 Birchwood Drive, Eugene", ZipCode: 97401, Price: 276500, RoomCount: 4, Owner: "Frank Albright"},
}

// Seed inserts the sample records, skipping any whose name already exists.
// Returns the number of records created.
func (s *Store) Seed() int {
	created := 0
	for _, rec := range seedRecords {
		if s.GetByName(rec.Name) != nil {
			continue
		}
		if s.Create(&rec) {
			created++
		}
	}
	return created
}
