package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterDisplayOrder(t *testing.T) {
	got := CenterNames()
	want := []string{
		"문화체육센터",
		"용산청소년센터",
		"꿈나무종합타운",
		"이태원초등학교수영장",
		"한강로피트니스센터",
		"원효로다목적체육관",
	}
	assert.Equal(t, want, got)
}

func TestCategoryDisplayOrder(t *testing.T) {
	got := CategoryNames()
	want := []string{"수영", "헬스", "생활체육", "기구필라테스", "문화강좌", "서킷핏"}
	assert.Equal(t, want, got)
}

func TestCategoriesForCenter(t *testing.T) {
	t.Run("follows global category order", func(t *testing.T) {
		got := CategoriesForCenter("이태원초등학교수영장")
		require.Len(t, got, 3)
		// Stored as 수영/서킷핏/기구필라테스, served in display order
		assert.Equal(t, "수영", got[0].Name)
		assert.Equal(t, "기구필라테스", got[1].Name)
		assert.Equal(t, "서킷핏", got[2].Name)
	})

	t.Run("single category center", func(t *testing.T) {
		got := CategoriesForCenter("원효로다목적체육관")
		require.Len(t, got, 1)
		assert.Equal(t, "생활체육", got[0].Name)
	})

	t.Run("unknown center yields empty non-nil list", func(t *testing.T) {
		got := CategoriesForCenter("없는센터")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestEveryCenterHasCategories(t *testing.T) {
	for _, c := range Centers {
		assert.NotEmpty(t, CategoriesForCenter(c.Name), "center %s has no categories", c.Name)
	}
}

func TestCenterContactDetails(t *testing.T) {
	for _, c := range Centers {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Address)
		assert.NotEmpty(t, c.Phone)
	}
}

func TestResolveIconTotality(t *testing.T) {
	// Known tags resolve to themselves
	assert.Equal(t, IconWaves, ResolveIcon(CategoryIcon, IconWaves))
	assert.Equal(t, IconSchool, ResolveIcon(CenterIcon, IconSchool))

	// Unknown tags fall back to the per-kind default
	assert.Equal(t, IconBuilding2, ResolveIcon(CenterIcon, "no-such-icon"))
	assert.Equal(t, IconActivity, ResolveIcon(CategoryIcon, "no-such-icon"))
	assert.Equal(t, IconBuilding2, ResolveIcon(CenterIcon, ""))
}

func TestDisplayTablesCarryResolvedIcons(t *testing.T) {
	centers := DisplayCenters()
	require.Len(t, centers, len(Centers))
	for _, c := range centers {
		assert.True(t, knownIcons[c.Icon], "center %s serves unresolved icon %q", c.Name, c.Icon)
	}

	categories := DisplayCategories()
	require.Len(t, categories, len(Categories))
	for _, c := range categories {
		assert.True(t, knownIcons[c.Icon], "category %s serves unresolved icon %q", c.Name, c.Icon)
	}

	for _, c := range CategoriesForCenter("문화체육센터") {
		assert.True(t, knownIcons[c.Icon], "category %s serves unresolved icon %q", c.Name, c.Icon)
	}
}

func TestDisplayTablesDoNotMutateSource(t *testing.T) {
	got := DisplayCenters()
	require.NotEmpty(t, got)
	got[0].Icon = "scribble"
	assert.NotEqual(t, "scribble", Centers[0].Icon)
}

func TestReferenceIconsAreKnown(t *testing.T) {
	for _, c := range Centers {
		assert.Equal(t, c.Icon, ResolveIcon(CenterIcon, c.Icon), "center %s icon falls back", c.Name)
	}
	for _, c := range Categories {
		assert.Equal(t, c.Icon, ResolveIcon(CategoryIcon, c.Icon), "category %s icon falls back", c.Name)
	}
}
