package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letteragent/letteragent/pkg/template"
)

func TestBuiltins(t *testing.T) {
	all := template.Builtins()
	require.Len(t, all, 13)

	t.Run("SampleCustomCarriesFields", func(t *testing.T) {
		sample := all[len(all)-1]
		assert.Equal(t, "sample-custom-1", sample.ID)
		assert.True(t, sample.IsCustom)
		assert.Len(t, sample.CustomFields, 5)
	})

	t.Run("CallersGetCopies", func(t *testing.T) {
		all[0].Title = "mutated"
		all[12].CustomFields[0].Label = "mutated"

		fresh := template.Builtins()
		assert.Equal(t, "Sick Leave Application", fresh[0].Title)
		assert.Equal(t, "Project Name", fresh[12].CustomFields[0].Label)
	})
}

func TestRegistry_LoadedCustomsForcedGeneric(t *testing.T) {
	reg := template.NewRegistry([]template.Descriptor{{
		ID:          "custom-1",
		Title:       "Tampered",
		Description: "stored with a bogus skeleton tag",
		Skeleton:    template.SkeletonSickLeave,
		IsCustom:    false,
	}})

	d, ok := reg.Get("custom-1")
	require.True(t, ok)
	assert.True(t, d.IsCustom, "loaded customs are always custom")
	assert.Equal(t, template.SkeletonGeneric, d.Skeleton)
}

func TestRegistry_ReloadDoesNotDuplicateSample(t *testing.T) {
	// Customs() includes the shipped sample template, so a persisted
	// custom set fed back into NewRegistry must replace it, not append.
	first := template.NewRegistry(nil)
	reloaded := template.NewRegistry(first.Customs())

	assert.Len(t, reloaded.List(), 13)

	again := template.NewRegistry(reloaded.Customs())
	assert.Len(t, again.List(), 13)
}

func TestRegistry_Add(t *testing.T) {
	reg := template.NewRegistry(nil)

	t.Run("AppendsAfterBuiltins", func(t *testing.T) {
		err := reg.Add(template.Descriptor{ID: "custom-2", Title: "A", Description: "a"})
		require.NoError(t, err)

		all := reg.List()
		assert.Equal(t, "custom-2", all[len(all)-1].ID, "new templates keep insertion order")
	})

	t.Run("RejectsDuplicateID", func(t *testing.T) {
		err := reg.Add(template.Descriptor{ID: "custom-2", Title: "B", Description: "b"})
		assert.Error(t, err)
	})

	t.Run("RejectsEmptyID", func(t *testing.T) {
		err := reg.Add(template.Descriptor{Title: "C", Description: "c"})
		assert.Error(t, err)
	})
}

func TestRegistry_Update(t *testing.T) {
	reg := template.NewRegistry([]template.Descriptor{
		{ID: "custom-1", Title: "Before", Description: "d"},
	})

	t.Run("ReplacesCustomInPlace", func(t *testing.T) {
		err := reg.Update(template.Descriptor{ID: "custom-1", Title: "After", Description: "d"})
		require.NoError(t, err)

		d, ok := reg.Get("custom-1")
		require.True(t, ok)
		assert.Equal(t, "After", d.Title)
	})

	t.Run("BuiltinsAreImmutable", func(t *testing.T) {
		err := reg.Update(template.Descriptor{ID: "1", Title: "Hijacked", Description: "d"})
		assert.Error(t, err)
	})

	t.Run("UnknownIDErrors", func(t *testing.T) {
		err := reg.Update(template.Descriptor{ID: "custom-404", Title: "X", Description: "d"})
		assert.Error(t, err)
	})
}

func TestRegistry_Remove(t *testing.T) {
	reg := template.NewRegistry([]template.Descriptor{
		{ID: "custom-1", Title: "T", Description: "d"},
	})

	assert.False(t, reg.Remove("1"), "builtins are never removed")
	assert.True(t, reg.Remove("custom-1"))
	assert.False(t, reg.Remove("custom-1"), "second removal finds nothing")

	_, ok := reg.Get("custom-1")
	assert.False(t, ok)
}

func TestRegistry_Customs(t *testing.T) {
	reg := template.NewRegistry([]template.Descriptor{
		{ID: "custom-1", Title: "T", Description: "d"},
	})

	customs := reg.Customs()
	// sample-custom-1 ships in the builtin catalog but is custom too.
	require.Len(t, customs, 2)
	assert.Equal(t, "sample-custom-1", customs[0].ID)
	assert.Equal(t, "custom-1", customs[1].ID)
}

func TestRegistry_Filter(t *testing.T) {
	reg := template.NewRegistry(nil)

	t.Run("AllAndEmptyMatchEverything", func(t *testing.T) {
		assert.Len(t, reg.Filter("", template.CategoryAll), 13)
		assert.Len(t, reg.Filter("", ""), 13)
	})

	t.Run("TitleSearchIsCaseInsensitive", func(t *testing.T) {
		got := reg.Filter("SCHOLAR", template.CategoryAll)
		require.Len(t, got, 1)
		assert.Equal(t, "Scholarship Application", got[0].Title)
	})

	t.Run("CategoryNarrows", func(t *testing.T) {
		got := reg.Filter("", template.CategoryInvestor)
		assert.Len(t, got, 3)
		for _, d := range got {
			assert.Equal(t, template.CategoryInvestor, d.Category)
		}
	})

	t.Run("SearchAndCategoryCombine", func(t *testing.T) {
		got := reg.Filter("letter", template.CategoryCorporate)
		require.Len(t, got, 2)
		assert.Equal(t, "Employment Offer Letter", got[0].Title)
		assert.Equal(t, "Resignation Letter", got[1].Title)
	})

	t.Run("NoMatchReturnsEmpty", func(t *testing.T) {
		assert.Empty(t, reg.Filter("zzz", template.CategoryAll))
	})
}

func TestRegistry_SetPermissions(t *testing.T) {
	reg := template.NewRegistry(nil)

	t.Run("ValidRuleSticks", func(t *testing.T) {
		err := reg.SetPermissions("1", []template.PermissionRule{
			{Role: "faculty", Access: template.AccessEdit},
		})
		require.NoError(t, err)

		d, ok := reg.Get("1")
		require.True(t, ok)
		require.Len(t, d.Permissions, 1)
		assert.Equal(t, "faculty", d.Permissions[0].Role)
	})

	t.Run("BothSubjectsRejected", func(t *testing.T) {
		err := reg.SetPermissions("1", []template.PermissionRule{
			{UserID: "u1", Role: "faculty", Access: template.AccessView},
		})
		assert.Error(t, err)
	})

	t.Run("NeitherSubjectRejected", func(t *testing.T) {
		err := reg.SetPermissions("1", []template.PermissionRule{
			{Access: template.AccessView},
		})
		assert.Error(t, err)
	})

	t.Run("BadAccessRejected", func(t *testing.T) {
		err := reg.SetPermissions("1", []template.PermissionRule{
			{UserID: "u1", Access: "owner"},
		})
		assert.Error(t, err)
	})
}
