// Package catalog generates the deterministic placeholder content used when
// no live news provider is reachable, and holds the category taxonomy shared
// by every article source.
package catalog

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"

	"tresnow/internal/model"
)

// GeneratedCount is the size of the fallback catalog.
const GeneratedCount = 200

// Categories is the closed taxonomy. Style is the catch-all.
var Categories = []string{
	"Fashion Week",
	"Luxury",
	"Streetwear",
	"Sustainability",
	"Technology",
	"Vintage",
	"Business",
	"Global Fashion",
	"Style",
}

var sources = []string{
	"Vogue", "Harper's Bazaar", "Elle", "Fashionista", "WWD",
	"Refinery29", "Who What Wear", "Glamour", "Marie Claire", "InStyle",
	"Allure", "Cosmopolitan", "Teen Vogue", "Nylon", "Paper Magazine",
}

var authors = []string{
	"Sarah Johnson", "Emma Chen", "Maria Rodriguez", "Alex Thompson",
	"Jessica Park", "Rachel Green", "Sophie Williams", "Maya Patel",
	"Lisa Anderson", "Kate Miller", "Olivia Brown", "Zoe Davis",
	"Ava Wilson", "Mia Taylor", "Isabella Garcia",
}

// tagTerms is the fixed vocabulary tags are drawn from.
var tagTerms = []string{
	"fashion", "style", "trends", "luxury", "streetwear", "sustainable",
	"designer", "runway", "vintage", "tech", "business", "global",
	"haute couture", "fashion week", "eco-friendly", "innovation",
}

// Catalog produces the fallback article set. Generation is purely
// index-seeded: the same clock reading yields the same catalog.
type Catalog struct {
	now func() time.Time
}

func New(now func() time.Time) *Catalog {
	if now == nil {
		now = time.Now
	}
	return &Catalog{now: now}
}

// Articles returns the full generated set, newest first.
func (c *Catalog) Articles() []model.Article {
	base := c.now().UTC().Truncate(time.Hour)

	articles := make([]model.Article, 0, GeneratedCount)
	for i := 0; i < GeneratedCount; i++ {
		articles = append(articles, c.article(i, base))
	}
	return articles
}

func (c *Catalog) article(i int, base time.Time) model.Article {
	tpl := templates[i%len(templates)]

	title := tpl.title
	if variation := i/len(templates) + 1; variation > 1 {
		title = fmt.Sprintf("%s - Part %d", tpl.title, variation)
	}

	content := fmt.Sprintf("%s This comprehensive analysis explores the latest developments in %s, "+
		"examining industry trends, consumer behavior, and future implications. "+
		"Fashion experts and industry insiders provide insights into how these changes are reshaping the global fashion landscape.",
		tpl.description, strings.ToLower(tpl.category))

	return model.Article{
		ID:            fmt.Sprintf("tres-%03d", i),
		Title:         title,
		Description:   tpl.description,
		Content:       content,
		Author:        authors[(i*7)%len(authors)],
		PublishedDate: base.Add(-time.Duration(i) * 3 * time.Hour),
		Source:        sources[(i*3)%len(sources)],
		Category:      tpl.category,
		ImageURL:      ImageFor(tpl.category, i),
		ReadTime:      fmt.Sprintf("%d min read", 3+i%5),
		Tags:          tpl.tags,
		Link:          "#",
	}
}

// Categorize maps free text onto the taxonomy using first-match keyword
// rules. Unmatched text falls through to Style.
func Categorize(text string) string {
	t := strings.ToLower(text)

	rules := []struct {
		category string
		keywords []string
	}{
		{"Fashion Week", []string{"fashion week", "runway"}},
		{"Luxury", []string{"luxury", "designer", "haute couture"}},
		{"Streetwear", []string{"streetwear", "street style", "urban"}},
		{"Sustainability", []string{"sustainable", "eco", "green fashion"}},
		{"Technology", []string{"tech", "ai", "digital", "virtual"}},
		{"Vintage", []string{"vintage", "retro", "classic"}},
		{"Business", []string{"business", "market", "industry"}},
		{"Global Fashion", []string{"global", "international", "world"}},
	}

	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.category
			}
		}
	}
	return "Style"
}

// ReadTime estimates reading time at 200 words per minute.
func ReadTime(content string) string {
	if content == "" {
		return "3 min read"
	}
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / 200))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Tags extracts up to 4 tags from the fixed vocabulary.
func Tags(title, description string) []string {
	text := strings.ToLower(title + " " + description)
	matched := lo.Filter(tagTerms, func(term string, _ int) bool {
		return strings.Contains(text, term)
	})
	return lo.Slice(matched, 0, 4)
}
