package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letteragent/letteragent/pkg/store"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// runStoreContract exercises the behavior every backend must share.
func runStoreContract(t *testing.T, s store.Store) {
	t.Run("GetMissingKey", func(t *testing.T) {
		var out record
		ok, err := s.Get("absent", &out)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("PutThenGet", func(t *testing.T) {
		require.NoError(t, s.Put(store.KeyAccountData, record{Name: "dana", Count: 2}))

		var out record
		ok, err := s.Get(store.KeyAccountData, &out)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, record{Name: "dana", Count: 2}, out)
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		require.NoError(t, s.Put(store.KeyKnowledgeBase, record{Name: "v1"}))
		require.NoError(t, s.Put(store.KeyKnowledgeBase, record{Name: "v2"}))

		var out record
		ok, err := s.Get(store.KeyKnowledgeBase, &out)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "v2", out.Name)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Put(store.KeyCustomTemplates, record{Name: "x"}))
		require.NoError(t, s.Delete(store.KeyCustomTemplates))

		var out record
		ok, err := s.Get(store.KeyCustomTemplates, &out)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("DeleteMissingKeyIsFine", func(t *testing.T) {
		assert.NoError(t, s.Delete("never-written"))
	})
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewFileStore(dir)
	require.NoError(t, err)
	defer s.Close()

	runStoreContract(t, s)

	t.Run("RecordsLandAsJSONFiles", func(t *testing.T) {
		require.NoError(t, s.Put(store.KeyAccountData, record{Name: "dana"}))
		_, err := os.Stat(filepath.Join(dir, store.KeyAccountData+".json"))
		assert.NoError(t, err)
	})

	t.Run("CorruptFileErrors", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		var out record
		_, err := s.Get("broken", &out)
		assert.Error(t, err)
	})

	t.Run("CreatesNestedDataDir", func(t *testing.T) {
		nested := filepath.Join(t.TempDir(), "a", "b")
		_, err := store.NewFileStore(nested)
		require.NoError(t, err)
		info, err := os.Stat(nested)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "letteragent.db")
	s, err := store.OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	runStoreContract(t, s)

	t.Run("SurvivesReopen", func(t *testing.T) {
		require.NoError(t, s.Put(store.KeyAccountData, record{Name: "dana"}))
		require.NoError(t, s.Close())

		reopened, err := store.OpenSQLite(path)
		require.NoError(t, err)
		defer reopened.Close()

		var out record
		ok, err := reopened.Get(store.KeyAccountData, &out)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "dana", out.Name)
	})
}
