package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/popxauth/internal/logging"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(t.TempDir(), logging.NewNopLogger())
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	in := testDoc{Name: "ann", Count: 3}
	require.NoError(t, s.Save(ctx, "doc", in))

	var out testDoc
	found, err := s.Load(ctx, "doc", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

func TestFileStore_LoadMissingIsAbsent(t *testing.T) {
	s := newTestStore(t)

	var out testDoc
	found, err := s.Load(context.Background(), "nope", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_CorruptDocumentReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewFileStore(dir, logging.NewNopLogger())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.json"), []byte("{not json"), 0o600))

	var out testDoc
	found, err := s.Load(ctx, "doc", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_UnknownFieldsIgnored(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewFileStore(dir, logging.NewNopLogger())

	// A document written by a future version with an extra field.
	body := []byte(`{"name":"ann","count":1,"futureField":true}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.json"), body, 0o600))

	var out testDoc
	found, err := s.Load(ctx, "doc", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, testDoc{Name: "ann", Count: 1}, out)
}

func TestFileStore_SaveReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Save(ctx, "doc", testDoc{Name: "first", Count: 1}))
	require.NoError(t, s.Save(ctx, "doc", testDoc{Name: "second", Count: 2}))

	var out testDoc
	found, err := s.Load(ctx, "doc", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, testDoc{Name: "second", Count: 2}, out)
}

func TestFileStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Save(ctx, "doc", testDoc{Name: "ann"}))
	require.NoError(t, s.Delete(ctx, "doc"))

	var out testDoc
	found, err := s.Load(ctx, "doc", &out)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting again is not an error.
	require.NoError(t, s.Delete(ctx, "doc"))
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewFileStore(dir, logging.NewNopLogger())

	require.NoError(t, s.Save(ctx, "doc", testDoc{Name: "ann"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.json", entries[0].Name())
}
