// Package sqlite implements the SQLite record store for propdesk.
// The store owns the durable copy of every property record and all
// transaction boundaries; failures never escape as errors to callers of
// the CRUD operations, they are downgraded to boolean/absent results and
// logged at the point of conversion.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/propdesk/propdesk/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "propdesk.db"

// Store provides durable CRUD over property records.
// Open constructs it and Close releases it; the application's composition
// root owns both ends of the lifecycle.
type Store struct {
	db  *sql.DB
	log *logrus.Logger
}

// Open validates the config, creates the data directory if needed, opens
// the SQLite database, and bootstraps the schema.
func Open(config types.Config, log *logrus.Logger) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", DBPath(config.DataDir))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(createRealEstate); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// DBPath returns the database file path for a data directory.
func DBPath(dataDir string) string {
	return filepath.Join(dataDir, DBFileName)
}
