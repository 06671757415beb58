package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	require.Greater(t, src.Seed(), 0)

	path := filepath.Join(t.TempDir(), "properties.jsonl")
	n, err := src.ExportRecords(path)
	require.NoError(t, err)
	assert.Equal(t, len(seedRecords), n)

	dst := newTestStore(t)
	created, skipped, err := dst.ImportRecords(path)
	require.NoError(t, err)
	assert.Equal(t, n, created)
	assert.Zero(t, skipped)

	for _, want := range src.GetAll() {
		got := dst.GetByName(want.Name)
		require.NotNil(t, got, "missing %s after import", want.Name)
		want.ID = got.ID // fresh identity on import
		assert.Equal(t, want, *got)
	}
}

func TestImportSkipsBadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.jsonl")
	content := `{"name":"Good House","address":"1 Fine St","price":200000,"room_count":4,"owner":"Keeper"}
not json at all
{"name":"","address":"2 Bad St","price":100,"room_count":1,"owner":"Nobody"}
{"name":"Good House","address":"duplicate name","price":100,"room_count":1,"owner":"Copycat"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := newTestStore(t)
	created, skipped, err := s.ImportRecords(path)
	require.NoError(t, err)

	// One valid record; the invalid record and duplicate are skipped, and
	// the unparseable line is dropped by the reader.
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, int64(1), s.Count())
}

func TestImportMissingFileFails(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.ImportRecords(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}

func TestExportOverwritesAtomically(t *testing.T) {
	s := newTestStore(t)
	rec := testRecord()
	require.True(t, s.Create(&rec))

	path := filepath.Join(t.TempDir(), "out.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("stale contents\n"), 0o644))

	n, err := s.ExportRecords(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale contents")
	assert.Contains(t, string(data), `"Test Property"`)
}

func TestWriteReadJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.jsonl")

	lines := []json.RawMessage{
		json.RawMessage(`{"a":1}`),
		json.RawMessage(`{"b":2}`),
	}
	require.NoError(t, writeJSONL(path, lines))

	out, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, `{"a":1}`, string(out[0]))
	assert.Equal(t, `{"b":2}`, string(out[1]))
}
