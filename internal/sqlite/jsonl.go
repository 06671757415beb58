// This file provides JSONL export and import of property records with
// atomic persistence (temp file, fsync, rename).
package sqlite

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/propdesk/propdesk/pkg/types"
)

// ExportRecords writes every stored record to path as one JSON object per
// line, atomically. Unlike the CRUD surface, export reports failures as
// errors: it is a maintenance operation, not part of the boolean contract.
func (s *Store) ExportRecords(path string) (int, error) {
	records := s.GetAll()
	if records == nil {
		return 0, errors.New("loading records for export failed")
	}

	lines := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return 0, fmt.Errorf("marshaling record %d: %w", rec.ID, err)
		}
		lines = append(lines, data)
	}

	if err := writeJSONL(path, lines); err != nil {
		return 0, err
	}
	return len(lines), nil
}

// ImportRecords reads a JSONL file and creates a record per well-formed
// line. Malformed lines, records failing validation, and records rejected
// by the store (duplicate names) are skipped and counted, not fatal.
// Imported records receive fresh IDs.
func (s *Store) ImportRecords(path string) (created, skipped int, err error) {
	lines, err := readJSONL(path)
	if err != nil {
		return 0, 0, err
	}

	for _, line := range lines {
		var rec types.PropertyRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			skipped++
			continue
		}
		rec.ID = 0
		if err := rec.Validate(); err != nil {
			s.log.WithError(err).Warn("skipping invalid record on import")
			skipped++
			continue
		}
		if !s.Create(&rec) {
			skipped++
			continue
		}
		created++
	}
	return created, skipped, nil
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line.
// Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		lines = append(lines, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return lines, nil
}

// writeJSONL atomically writes lines to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, lines []json.RawMessage) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.Write(line); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
