// This file implements the CRUD and lookup operations of the record store.
// Write operations run inside an explicit transaction through withTx;
// read operations perform no transaction demarcation.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/propdesk/propdesk/pkg/types"
)

const recordColumns = "id, name, address, zip_code, price, room_count, owner"

// withTx opens a transaction, runs action inside it, and commits on
// success. On any failure the transaction is rolled back, the cause is
// logged in full, and false is returned; failures never propagate as
// errors past the store boundary.
func (s *Store) withTx(op string, action func(tx *sql.Tx) error) bool {
	tx, err := s.db.Begin()
	if err != nil {
		s.log.WithError(err).WithField("op", op).Error("beginning transaction")
		return false
	}
	if err := action(tx); err != nil {
		_ = tx.Rollback()
		s.log.WithError(err).WithField("op", op).Error("store operation failed")
		return false
	}
	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		s.log.WithError(err).WithField("op", op).Error("committing transaction")
		return false
	}
	return true
}

// Create inserts a new record and assigns its ID. Returns false on
// constraint violation (duplicate name) or any other failure; the record
// is left untouched in that case.
func (s *Store) Create(rec *types.PropertyRecord) bool {
	var id int64
	ok := s.withTx("create", func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO real_estate (name, address, zip_code, price, room_count, owner) VALUES (?, ?, ?, ?, ?, ?)",
			rec.Name, rec.Address, rec.ZipCode, rec.Price, rec.RoomCount, rec.Owner,
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", rec, err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading assigned id: %w", err)
		}
		return nil
	})
	if ok {
		rec.ID = id
	}
	return ok
}

// Update replaces every field except ID of the persisted row matching
// rec.ID. Returns false if no such row exists or on constraint violation.
func (s *Store) Update(rec types.PropertyRecord) bool {
	return s.withTx("update", func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"UPDATE real_estate SET name = ?, address = ?, zip_code = ?, price = ?, room_count = ?, owner = ? WHERE id = ?",
			rec.Name, rec.Address, rec.ZipCode, rec.Price, rec.RoomCount, rec.Owner, rec.ID,
		)
		if err != nil {
			return fmt.Errorf("updating record %d: %w", rec.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("counting updated rows: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("no record with id %d", rec.ID)
		}
		return nil
	})
}

// Delete removes the row matching the record's ID. Returns false if absent.
func (s *Store) Delete(rec types.PropertyRecord) bool {
	return s.withTx("delete", func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM real_estate WHERE id = ?", rec.ID)
		if err != nil {
			return fmt.Errorf("deleting record %d: %w", rec.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("counting deleted rows: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("no record with id %d", rec.ID)
		}
		return nil
	})
}

// DeleteByID looks the record up first and returns false if it does not
// exist, otherwise delegates to Delete.
func (s *Store) DeleteByID(id int64) bool {
	rec := s.GetByID(id)
	if rec == nil {
		return false
	}
	return s.Delete(*rec)
}

// GetByID returns the record with the given ID, or nil when it does not
// exist or the lookup fails. Failures are logged, not surfaced.
func (s *Store) GetByID(id int64) *types.PropertyRecord {
	row := s.db.QueryRow(
		"SELECT "+recordColumns+" FROM real_estate WHERE id = ?", id,
	)
	rec, err := scanRecord(row.Scan)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.WithError(err).WithField("id", id).Error("looking up record by id")
		}
		return nil
	}
	return rec
}

// GetByName returns the record whose name matches exactly. Absent (nil) is
// returned when no record matches, when the name cannot be uniquely
// resolved, or when the lookup fails.
func (s *Store) GetByName(name string) *types.PropertyRecord {
	rows, err := s.db.Query(
		"SELECT "+recordColumns+" FROM real_estate WHERE name = ?", name,
	)
	if err != nil {
		s.log.WithError(err).WithField("name", name).Error("looking up record by name")
		return nil
	}
	defer rows.Close()

	var matches []*types.PropertyRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			s.log.WithError(err).WithField("name", name).Error("scanning record by name")
			return nil
		}
		matches = append(matches, rec)
	}
	if err := rows.Err(); err != nil {
		s.log.WithError(err).WithField("name", name).Error("iterating records by name")
		return nil
	}
	if len(matches) != 1 {
		return nil
	}
	return matches[0]
}

// GetAll returns every record with no ordering guarantee. A nil slice
// marks a failed load; an empty table yields a non-nil empty slice, so
// callers can tell "error" from "no data".
func (s *Store) GetAll() []types.PropertyRecord {
	rows, err := s.db.Query("SELECT " + recordColumns + " FROM real_estate")
	if err != nil {
		s.log.WithError(err).Error("loading all records")
		return nil
	}
	defer rows.Close()

	records := []types.PropertyRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			s.log.WithError(err).Error("scanning record")
			return nil
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		s.log.WithError(err).Error("iterating records")
		return nil
	}
	return records
}

// Count returns the number of stored records, or -1 on failure.
func (s *Store) Count() int64 {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM real_estate").Scan(&n); err != nil {
		s.log.WithError(err).Error("counting records")
		return -1
	}
	return n
}

// scanRecord hydrates one row into a PropertyRecord.
func scanRecord(scan func(...any) error) (*types.PropertyRecord, error) {
	var rec types.PropertyRecord
	if err := scan(&rec.ID, &rec.Name, &rec.Address, &rec.ZipCode, &rec.Price, &rec.RoomCount, &rec.Owner); err != nil {
		return nil, err
	}
	return &rec, nil
}
