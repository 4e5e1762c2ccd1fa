package entity_test

import (
	"testing"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() entity.TabList {
	return entity.TabList{
		entity.NewTab("a", "https://a.example/", "A"),
		entity.NewTab("b", "https://b.example/", ""),
		entity.NewTab("c", "https://c.example/", "C"),
	}
}

func TestTab_DisplayTitleFallsBackToURL(t *testing.T) {
	tl := sampleList()
	assert.Equal(t, "A", tl[0].DisplayTitle())
	assert.Equal(t, "https://b.example/", tl[1].DisplayTitle())
}

func TestTab_WithURLCopies(t *testing.T) {
	orig := entity.NewTab("a", "https://a.example/", "A")

	updated := orig.WithURL("https://z.example/")

	assert.NotSame(t, orig, updated)
	assert.Equal(t, orig.ID, updated.ID)
	assert.Equal(t, "A", updated.Title)
	assert.Equal(t, "https://a.example/", orig.URL)
}

func TestTabList_WithoutLeavesOriginalIntact(t *testing.T) {
	tl := sampleList()

	out, idx := tl.Without("b")

	assert.Equal(t, 1, idx)
	assert.Equal(t, []entity.TabID{"a", "c"}, out.IDs())
	assert.Equal(t, []entity.TabID{"a", "b", "c"}, tl.IDs())
}

func TestTabList_WithoutUnknown(t *testing.T) {
	tl := sampleList()

	out, idx := tl.Without("zzz")

	assert.Equal(t, -1, idx)
	assert.Equal(t, tl.IDs(), out.IDs())
}

func TestTabList_AppendAndReplace(t *testing.T) {
	tl := sampleList()

	appended := tl.Append(entity.NewTab("d", "https://d.example/", ""))
	require.Equal(t, 4, appended.Count())
	assert.Equal(t, 3, tl.Count())

	replaced := tl.ReplaceAt(0, tl[0].WithTitle("AA"))
	assert.Equal(t, "AA", replaced.Find("a").Title)
	assert.Equal(t, "A", tl.Find("a").Title)
	assert.Same(t, tl[1], replaced[1])
}

func TestTabList_NeighborWraps(t *testing.T) {
	tl := sampleList()

	assert.Equal(t, entity.TabID("b"), tl.Neighbor("a", 1))
	assert.Equal(t, entity.TabID("a"), tl.Neighbor("c", 1))
	assert.Equal(t, entity.TabID("c"), tl.Neighbor("a", -1))
	assert.Equal(t, entity.TabID(""), tl.Neighbor("zzz", 1))
	assert.True(t, tl.Contains("c"))
	assert.Nil(t, tl.Find("zzz"))
}
