package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
}

func TestCatalog_Deterministic(t *testing.T) {
	first := New(fixedClock).Articles()
	second := New(fixedClock).Articles()

	require.Len(t, first, GeneratedCount)
	assert.Equal(t, first, second, "same clock must yield the same catalog")
}

func TestCatalog_UniqueIDsAndValidCategories(t *testing.T) {
	articles := New(fixedClock).Articles()

	valid := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		valid[c] = true
	}

	seen := make(map[string]bool, len(articles))
	for _, a := range articles {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true

		assert.True(t, valid[a.Category], "unknown category %q", a.Category)
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Author)
		assert.NotEmpty(t, a.Source)
		assert.NotEmpty(t, a.ImageURL)
		assert.NotEmpty(t, a.ReadTime)
	}
}

func TestCatalog_NewestFirst(t *testing.T) {
	articles := New(fixedClock).Articles()

	for i := 1; i < len(articles); i++ {
		assert.True(t, !articles[i].PublishedDate.After(articles[i-1].PublishedDate),
			"articles must be ordered newest first")
	}
}

func TestCatalog_VariationSuffix(t *testing.T) {
	articles := New(fixedClock).Articles()

	// The template pool repeats well before 200 entries, so later articles
	// carry a part suffix while the first round does not.
	assert.NotContains(t, articles[0].Title, "Part")
	assert.Contains(t, articles[len(templates)].Title, "Part 2")
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Paris fashion week highlights", "Fashion Week"},
		{"The runway season begins", "Fashion Week"},
		{"New luxury handbags", "Luxury"},
		{"Haute couture at its finest", "Luxury"},
		{"streetwear drops this week", "Streetwear"},
		{"urban outfits for spring", "Streetwear"},
		{"Sustainable fabrics on the rise", "Sustainability"},
		{"AI changes retail forever", "Technology"},
		{"A retro revival", "Vintage"},
		{"the resale market is booming", "Business"},
		{"international style capitals", "Global Fashion"},
		{"what to wear to brunch", "Style"},
		{"", "Style"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Categorize(tc.text), "text: %q", tc.text)
	}
}

func TestCategorize_FirstMatchWins(t *testing.T) {
	// Contains both fashion week and luxury keywords; the ordered rules
	// must pick Fashion Week.
	assert.Equal(t, "Fashion Week", Categorize("luxury looks from fashion week"))
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, "3 min read", ReadTime(""))
	assert.Equal(t, "1 min read", ReadTime("just a few words here"))

	long := ""
	for i := 0; i < 450; i++ {
		long += "word "
	}
	assert.Equal(t, "3 min read", ReadTime(long))
}

func TestTags(t *testing.T) {
	tags := Tags("Luxury streetwear trends", "sustainable designer fashion on the runway")
	assert.LessOrEqual(t, len(tags), 4)
	assert.Contains(t, tags, "luxury")
	assert.Contains(t, tags, "streetwear")

	assert.Empty(t, Tags("nothing relevant", "at all"))
}

func TestImageFor(t *testing.T) {
	assert.NotEmpty(t, ImageFor("Luxury", 0))
	assert.Equal(t, ImageFor("Luxury", 0), ImageFor("Luxury", 5), "pool of 5 rotates")
	assert.Equal(t, ImageFor("Style", 2), ImageFor("No Such Category", 2))
}
