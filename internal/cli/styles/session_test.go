package styles

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tabshell/internal/domain/entity"
)

func testSession() *entity.SessionState {
	return &entity.SessionState{
		Version: entity.SessionStateVersion,
		Tabs: []entity.TabSnapshot{
			{ID: "a", URL: "https://www.example.com/docs", Title: "Docs"},
			{ID: "b", URL: "https://go.dev/"},
		},
		SelectedIndex: 1,
		SavedAt:       time.Now().Add(-5 * time.Minute),
	}
}

func TestTabItemsFromSession(t *testing.T) {
	items := TabItemsFromSession(testSession())

	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Index)
	assert.Equal(t, "Docs", items[0].DisplayTitle())
	assert.False(t, items[0].Selected)
	assert.Equal(t, "https://go.dev/", items[1].DisplayTitle())
	assert.True(t, items[1].Selected)
	assert.Contains(t, items[0].FilterValue(), "example.com")

	assert.Nil(t, TabItemsFromSession(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

func TestSessionRenderer(t *testing.T) {
	r := NewSessionRenderer(NewTheme())

	out := r.RenderSession(testSession())
	assert.Contains(t, out, "2 saved tabs")
	assert.Contains(t, out, "Docs")
	assert.Contains(t, out, "https://go.dev/")
	assert.Contains(t, out, "5m ago")

	assert.Contains(t, r.RenderNoSession(), "No saved session")
	assert.Contains(t, r.RenderCleared(), "cleared")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}
