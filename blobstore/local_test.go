package blobstore

import (
	"os"
	"path/filepath"
	"testing"

	vfs "github.com/hupe1980/classmap/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := t.Context()

	data := []byte("version: 1\nclasses: []\n")
	require.NoError(t, store.Put(ctx, "people.yaml", data))
	require.NoError(t, store.Put(ctx, "nested/orders.json.zst", []byte{1, 2, 3}))
	require.NoError(t, store.Put(ctx, "nested/items.toml", []byte("version = 1")))

	got, err := Get(ctx, store, "people.yaml")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Overwrite replaces the content.
	require.NoError(t, store.Put(ctx, "people.yaml", []byte("v2")))
	got, err = Get(ctx, store, "people.yaml")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))

	_, err = Get(ctx, store, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"nested/items.toml", "nested/orders.json.zst", "people.yaml"}, names)

	names, err = store.List(ctx, "nested/")
	require.NoError(t, err)
	assert.Equal(t, []string{"nested/items.toml", "nested/orders.json.zst"}, names)
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	testStore(t, NewLocalStore(dir))

	// Put leaves no temporary files behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-")
	}
	_, err = os.Stat(filepath.Join(dir, "nested", "items.toml"))
	assert.NoError(t, err)
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "absent"))
	names, err := store.List(t.Context(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesInput(t *testing.T) {
	store := NewMemoryStore()
	data := []byte("abc")
	require.NoError(t, store.Put(t.Context(), "x", data))
	data[0] = 'z'

	got, err := Get(t.Context(), store, "x")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestLocalStore_PutFaults(t *testing.T) {
	tests := []struct {
		name  string
		fault vfs.Fault
	}{
		{"write", vfs.Fault{FailAfterBytes: 2}},
		{"sync", vfs.Fault{FailAfterBytes: -1, FailOnSync: true}},
		{"close", vfs.Fault{FailAfterBytes: -1, FailOnClose: true}},
		{"rename", vfs.Fault{FailAfterBytes: -1, FailOnRename: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			ffs := vfs.NewFaultyFS(nil)
			ffs.AddRule("people.yaml", tt.fault)
			store := newLocalStoreFS(dir, ffs)

			err := store.Put(t.Context(), "people.yaml", []byte("classes: []"))
			assert.ErrorIs(t, err, vfs.ErrInjected)

			// Neither the blob nor a temporary file is left behind.
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)

			// Other names are unaffected.
			require.NoError(t, store.Put(t.Context(), "orders.json", []byte("{}")))
		})
	}
}
