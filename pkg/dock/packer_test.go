package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func favorites(categories ...string) []Favorite {
	list := make([]Favorite, len(categories))
	for i, cat := range categories {
		list[i] = Favorite{
			ServiceID:  "svc",
			Name:       "svc",
			URL:        "http://example.local",
			Target:     "_blank",
			CategoryID: cat,
		}
	}
	return list
}

func TestPackAllFit(t *testing.T) {
	// Three favorites, two categories. The first pass needs 340px with both
	// reserved slots, so 360px fits everything and overflow is not needed.
	favs := favorites("a", "a", "b")
	result := Pack(favs, 360, true, DefaultMetrics())

	assert.Equal(t, 3, result.VisibleCount)
	assert.False(t, result.NeedsMore)

	entries := Entries(favs, true)
	separators := 0
	for _, e := range entries {
		if e.Type == EntrySeparator {
			separators++
		}
	}
	assert.Equal(t, 1, separators)
	assert.Len(t, entries, 4)
}

func TestPackOverflow(t *testing.T) {
	favs := favorites("a", "a", "a", "a", "a", "a")
	result := Pack(favs, 300, false, DefaultMetrics())

	assert.True(t, result.NeedsMore)
	assert.Less(t, result.VisibleCount, len(favs))
	assert.Greater(t, result.VisibleCount, 0)
}

func TestPackZeroWidth(t *testing.T) {
	result := Pack(favorites("a", "b"), 0, true, DefaultMetrics())

	assert.Equal(t, 0, result.VisibleCount)
	assert.True(t, result.NeedsMore)
}

func TestPackMonotonicWidth(t *testing.T) {
	favs := favorites("a", "a", "b", "b", "c", "c", "c", "d")
	prev := 0
	for width := 0.0; width <= 1200; width += 25 {
		result := Pack(favs, width, true, DefaultMetrics())
		assert.GreaterOrEqual(t, result.VisibleCount, prev, "width %v", width)
		prev = result.VisibleCount
	}
	assert.Equal(t, len(favs), prev)
}

func TestPackSeparatorsCostWidth(t *testing.T) {
	m := DefaultMetrics()
	mixed := favorites("a", "b", "c", "d")
	same := favorites("a", "a", "a", "a")

	for width := 100.0; width <= 600; width += 50 {
		withSep := Pack(mixed, width, true, m)
		without := Pack(same, width, true, m)
		assert.GreaterOrEqual(t, without.VisibleCount, withSep.VisibleCount)
	}
}

func TestEntriesSameCategoryNoSeparator(t *testing.T) {
	entries := Entries(favorites("a", "a", "a"), true)
	for _, e := range entries {
		assert.Equal(t, EntryItem, e.Type)
	}

	// Disabled separators never appear
	entries = Entries(favorites("a", "b"), false)
	assert.Len(t, entries, 2)
}

func TestAvailable(t *testing.T) {
	m := DefaultMetrics()

	assert.Equal(t, 300.0, m.Available(388))
	assert.Equal(t, 0.0, m.Available(50))
	assert.Equal(t, 0.0, m.Available(-10))
}
