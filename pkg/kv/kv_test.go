package kv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook/ledgerbook-go/pkg/kv"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("absent key", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemoryStore()

		_, ok, err := store.Get("missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set get delete", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemoryStore()

		require.NoError(t, store.Set("token", "abc123"))

		value, ok, err := store.Get("token")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "abc123", value)

		require.NoError(t, store.Delete("token"))

		_, ok, err = store.Get("token")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemoryStore()

		require.NoError(t, store.Set("theme", "light"))
		require.NoError(t, store.Set("theme", "dark"))

		value, ok, err := store.Get("theme")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "dark", value)
	})
}

func TestFileStore(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()
		_, err := kv.NewFileStore("")
		assert.ErrorIs(t, err, kv.ErrEmptyPath)
	})

	t.Run("survives reopen", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "state.json")

		store, err := kv.NewFileStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set("token", "abc123"))
		require.NoError(t, store.Set("user", `{"id":1}`))
		require.NoError(t, store.Close())

		reopened, err := kv.NewFileStore(path)
		require.NoError(t, err)

		value, ok, err := reopened.Get("token")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "abc123", value)
	})

	t.Run("corrupt file treated as empty", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		store, err := kv.NewFileStore(path)
		require.NoError(t, err)

		_, ok, err := store.Get("token")
		require.NoError(t, err)
		assert.False(t, ok)

		// Store remains writable after discarding corrupt state.
		require.NoError(t, store.Set("token", "fresh"))
		value, ok, err := store.Get("token")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "fresh", value)
	})

	t.Run("delete absent key is a no-op", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "state.json")

		store, err := kv.NewFileStore(path)
		require.NoError(t, err)
		assert.NoError(t, store.Delete("missing"))
	})
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()
		_, err := kv.NewSQLiteStore("")
		assert.ErrorIs(t, err, kv.ErrEmptyPath)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "state.db")

		store, err := kv.NewSQLiteStore(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })

		require.NoError(t, store.Set("token", "abc123"))
		require.NoError(t, store.Set("token", "def456"))

		value, ok, err := store.Get("token")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "def456", value)

		require.NoError(t, store.Delete("token"))
		_, ok, err = store.Get("token")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("survives reopen", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "state.db")

		store, err := kv.NewSQLiteStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set("theme", "dark"))
		require.NoError(t, store.Close())

		reopened, err := kv.NewSQLiteStore(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = reopened.Close() })

		value, ok, err := reopened.Get("theme")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "dark", value)
	})
}
