package kb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letteragent/letteragent/pkg/kb"
	"github.com/letteragent/letteragent/pkg/template"
)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestManager_Save(t *testing.T) {
	t0 := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	t.Run("NewItemGetsTimestampID", func(t *testing.T) {
		m := kb.NewManagerWithClock(nil, clockAt(t0))
		saved, err := m.Save(kb.Item{Title: "Opening paragraph", Content: "Dear..."})
		require.NoError(t, err)

		assert.Equal(t, "kb-1748768400000", saved.ID)
		assert.Equal(t, t0, saved.CreatedAt)
		assert.Equal(t, t0, saved.UpdatedAt)
	})

	t.Run("BlankCategoryDefaultsToGeneral", func(t *testing.T) {
		m := kb.NewManagerWithClock(nil, clockAt(t0))
		saved, err := m.Save(kb.Item{Title: "T", Content: "C"})
		require.NoError(t, err)
		assert.Equal(t, "General", saved.Category)
	})

	t.Run("ExplicitCategoryKept", func(t *testing.T) {
		m := kb.NewManagerWithClock(nil, clockAt(t0))
		saved, err := m.Save(kb.Item{Title: "T", Content: "C", Category: "Legal"})
		require.NoError(t, err)
		assert.Equal(t, "Legal", saved.Category)
	})

	t.Run("UpdateKeepsCreatedAtRefreshesUpdatedAt", func(t *testing.T) {
		now := t0
		m := kb.NewManagerWithClock(nil, func() time.Time { return now })

		saved, err := m.Save(kb.Item{Title: "T", Content: "C"})
		require.NoError(t, err)

		now = t0.Add(time.Hour)
		saved.Content = "C2"
		updated, err := m.Save(saved)
		require.NoError(t, err)

		assert.Equal(t, saved.ID, updated.ID)
		assert.Equal(t, t0, updated.CreatedAt)
		assert.Equal(t, t0.Add(time.Hour), updated.UpdatedAt)

		items := m.List()
		require.Len(t, items, 1)
		assert.Equal(t, "C2", items[0].Content)
	})

	t.Run("UnknownIDInsertsKeepingIt", func(t *testing.T) {
		m := kb.NewManagerWithClock(nil, clockAt(t0))
		saved, err := m.Save(kb.Item{ID: "kb-imported", Title: "T", Content: "C"})
		require.NoError(t, err)
		assert.Equal(t, "kb-imported", saved.ID)
		assert.Len(t, m.List(), 1)
	})

	t.Run("MissingTitleRejected", func(t *testing.T) {
		m := kb.NewManagerWithClock(nil, clockAt(t0))
		_, err := m.Save(kb.Item{Content: "C"})
		assert.Error(t, err)
	})

	t.Run("MissingContentRejected", func(t *testing.T) {
		m := kb.NewManagerWithClock(nil, clockAt(t0))
		_, err := m.Save(kb.Item{Title: "T"})
		assert.Error(t, err)
	})
}

func TestManager_Delete(t *testing.T) {
	m := kb.NewManager([]kb.Item{
		{ID: "kb-1", Title: "A", Content: "a"},
		{ID: "kb-2", Title: "B", Content: "b"},
	})

	assert.True(t, m.Delete("kb-1"))
	assert.False(t, m.Delete("kb-1"))

	items := m.List()
	require.Len(t, items, 1)
	assert.Equal(t, "kb-2", items[0].ID)
}

func TestManager_Replace(t *testing.T) {
	m := kb.NewManager([]kb.Item{{ID: "kb-1", Title: "A", Content: "a"}})
	m.Replace([]kb.Item{
		{ID: "kb-9", Title: "Z", Content: "z"},
	})

	items := m.List()
	require.Len(t, items, 1)
	assert.Equal(t, "kb-9", items[0].ID)
}

func TestManager_Search(t *testing.T) {
	m := kb.NewManager([]kb.Item{
		{ID: "kb-1", Title: "Opening paragraph", Content: "Dear committee", Tags: []string{"formal"}},
		{ID: "kb-2", Title: "Budget table", Content: "Q1 numbers", Tags: []string{"finance"}},
	})

	t.Run("TitleMatch", func(t *testing.T) {
		got := m.Search("OPENING")
		require.Len(t, got, 1)
		assert.Equal(t, "kb-1", got[0].ID)
	})

	t.Run("ContentMatch", func(t *testing.T) {
		got := m.Search("q1")
		require.Len(t, got, 1)
		assert.Equal(t, "kb-2", got[0].ID)
	})

	t.Run("TagMatch", func(t *testing.T) {
		got := m.Search("finance")
		require.Len(t, got, 1)
		assert.Equal(t, "kb-2", got[0].ID)
	})

	t.Run("EmptyQueryReturnsAll", func(t *testing.T) {
		assert.Len(t, m.Search(""), 2)
	})
}

func TestManager_FilterCategory(t *testing.T) {
	m := kb.NewManager([]kb.Item{
		{ID: "kb-1", Title: "A", Content: "a", Category: "General"},
		{ID: "kb-2", Title: "B", Content: "b", Category: "Legal"},
	})

	assert.Len(t, m.FilterCategory(""), 2)

	got := m.FilterCategory("Legal")
	require.Len(t, got, 1)
	assert.Equal(t, "kb-2", got[0].ID)
}

func TestManager_SetPermissions(t *testing.T) {
	m := kb.NewManager([]kb.Item{{ID: "kb-1", Title: "A", Content: "a"}})

	err := m.SetPermissions("kb-1", []template.PermissionRule{
		{UserID: "u1", Access: template.AccessView},
	})
	require.NoError(t, err)

	item, ok := m.Get("kb-1")
	require.True(t, ok)
	require.Len(t, item.Permissions, 1)

	assert.Error(t, m.SetPermissions("kb-404", nil))
	assert.Error(t, m.SetPermissions("kb-1", []template.PermissionRule{{Access: template.AccessView}}))
}
