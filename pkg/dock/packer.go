// Package dock computes how many favorite shortcuts fit in the fixed-height
// dock strip for a given viewport, mirroring the layout math of the web
// client so the packed result can also be served from the API.
package dock

// Favorite is one dock candidate: a favorited service tagged with its
// owning category, ordered by (category sort order, service sort order).
type Favorite struct {
	ServiceID    string `json:"serviceId"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	Icon         string `json:"icon,omitempty"`
	IconURL      string `json:"iconUrl,omitempty"`
	Target       string `json:"target"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// Metrics holds the fixed pixel sizes of dock elements. The zero value is
// not usable; start from DefaultMetrics.
type Metrics struct {
	ItemWidth      float64
	SeparatorWidth float64
	Gap            float64
	SafeMargin     float64
	PaddingX       float64
}

// DefaultMetrics matches the dock stylesheet: 46px items, 10px separators,
// 20px gaps, 48px viewport safety margin, 40px horizontal container padding.
func DefaultMetrics() Metrics {
	return Metrics{
		ItemWidth:      46,
		SeparatorWidth: 10,
		Gap:            20,
		SafeMargin:     48,
		PaddingX:       40,
	}
}

// Available converts a viewport width to the width usable by dock entries.
// Never negative.
func (m Metrics) Available(viewportWidth float64) float64 {
	available := viewportWidth - m.SafeMargin - m.PaddingX
	if available < 0 {
		return 0
	}
	return available
}

// Result of a packing pass.
type Result struct {
	VisibleCount int  `json:"visibleCount"`
	NeedsMore    bool `json:"needsMore"`
}

// EntryType discriminates packed dock entries.
type EntryType string

const (
	EntryItem      EntryType = "item"
	EntrySeparator EntryType = "separator"
)

// Entry is either a visible favorite or a separator between category runs.
type Entry struct {
	Type     EntryType `json:"type"`
	Favorite *Favorite `json:"service,omitempty"`
}

// Pack determines how many leading favorites fit into availableWidth.
//
// Two passes: the first reserves room for both the overflow ("more") button
// and the settings button. If even then not every favorite fits, overflow is
// needed and that count stands. Otherwise a second pass reserving only the
// settings button may admit more items.
func Pack(favorites []Favorite, availableWidth float64, separatorsEnabled bool, m Metrics) Result {
	withMore := packOnce(favorites, availableWidth, separatorsEnabled, m, true)
	if withMore < len(favorites) {
		return Result{VisibleCount: withMore, NeedsMore: true}
	}
	return Result{
		VisibleCount: packOnce(favorites, availableWidth, separatorsEnabled, m, false),
		NeedsMore:    false,
	}
}

func packOnce(favorites []Favorite, availableWidth float64, separatorsEnabled bool, m Metrics, reserveMore bool) int {
	reservedCount := 1 // settings button
	if reserveMore {
		reservedCount = 2
	}
	reservedWidth := float64(reservedCount) * m.ItemWidth

	widthSum := 0.0
	elementCount := 0
	visibleCount := 0
	prevCategory := ""

	for _, favorite := range favorites {
		needsSeparator := separatorsEnabled && prevCategory != "" && prevCategory != favorite.CategoryID
		candidateCount := 1
		candidateWidth := m.ItemWidth
		if needsSeparator {
			candidateCount = 2
			candidateWidth += m.SeparatorWidth
		}

		totalElements := elementCount + candidateCount + reservedCount
		totalWidth := widthSum + candidateWidth + reservedWidth + m.Gap*float64(totalElements-1)
		if totalWidth > availableWidth {
			break
		}

		widthSum += candidateWidth
		elementCount += candidateCount
		visibleCount++
		prevCategory = favorite.CategoryID
	}

	return visibleCount
}

// Entries interleaves separators into the visible favorites. A separator is
// emitted only where adjacent items belong to different categories, so runs
// from the same category never produce one.
func Entries(visible []Favorite, separatorsEnabled bool) []Entry {
	entries := make([]Entry, 0, len(visible)*2)
	prevCategory := ""
	for i := range visible {
		favorite := visible[i]
		if separatorsEnabled && prevCategory != "" && prevCategory != favorite.CategoryID {
			entries = append(entries, Entry{Type: EntrySeparator})
		}
		entries = append(entries, Entry{Type: EntryItem, Favorite: &favorite})
		prevCategory = favorite.CategoryID
	}
	return entries
}
