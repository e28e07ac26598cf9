package storage

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDBCounter uint64

// newTestSQLite opens a unique named in-memory database so tests don't
// interfere with each other through the shared cache.
func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	id := atomic.AddUint64(&testDBCounter, 1)
	s, err := OpenSQLite(fmt.Sprintf("file:storagetest%d?mode=memory&cache=shared", id))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// Both implementations must satisfy the same slot contract.
func testStores(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": newTestSQLite(t),
		"memory": NewMemory(),
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, s := range testStores(t) {
		_, err := s.Get("nope")
		assert.ErrorIs(t, err, ErrNotFound, name)
	}
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	for name, s := range testStores(t) {
		require.NoError(t, s.Set("greeting", `{"msg":"hello"}`), name)

		got, err := s.Get("greeting")
		require.NoError(t, err, name)
		assert.Equal(t, `{"msg":"hello"}`, got, name)
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	for name, s := range testStores(t) {
		require.NoError(t, s.Set("k", "first"), name)
		require.NoError(t, s.Set("k", "second"), name)

		got, err := s.Get("k")
		require.NoError(t, err, name)
		assert.Equal(t, "second", got, name)
	}
}

func TestStore_Remove(t *testing.T) {
	for name, s := range testStores(t) {
		require.NoError(t, s.Set("k", "v"), name)
		require.NoError(t, s.Remove("k"), name)

		_, err := s.Get("k")
		assert.ErrorIs(t, err, ErrNotFound, name)

		// Removing an absent key is not an error.
		assert.NoError(t, s.Remove("k"), name)
	}
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := t.TempDir() + "/slots.db"

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("persisted", "still here"))
	require.NoError(t, s.Close())

	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get("persisted")
	require.NoError(t, err)
	assert.Equal(t, "still here", got)
}
