package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tresnow/internal/catalog"
)

func TestProxySource_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fashion", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"success": true,
			"articles": [
				{"id": "newsapi-1-0", "title": "Runway report", "description": "d", "category": "Fashion Week"},
				{"id": "newsapi-1-1", "title": "Luxury brief", "description": "d", "category": "Luxury"}
			],
			"totalResults": 2
		}`)
	}))
	defer srv.Close()

	src := NewProxySource(srv.URL, time.Second)
	articles, err := src.Fetch(context.Background(), "fashion")
	require.NoError(t, err)

	require.Len(t, articles, 2)
	assert.Equal(t, "Runway report", articles[0].Title)
}

func TestProxySource_FallbackFlagIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// The proxy reports upstream failure with HTTP 200 and flags.
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success": false, "fallback": true, "error": "API key not configured"}`)
	}))
	defer srv.Close()

	src := NewProxySource(srv.URL, time.Second)
	_, err := src.Fetch(context.Background(), "fashion")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not configured")
}

func TestProxySource_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	src := NewProxySource(srv.URL, time.Second)
	_, err := src.Fetch(context.Background(), "fashion")
	assert.Error(t, err)
}

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Fashion Wire</title>
    <link>http://example.com</link>
    <item>
      <title>Luxury designers bet on quiet elegance</title>
      <link>http://example.com/articles/1</link>
      <guid>wire-1</guid>
      <description>Premium houses lean into understated collections.</description>
      <pubDate>Mon, 02 Mar 2026 15:04:05 GMT</pubDate>
    </item>
    <item>
      <title>Street style report from Seoul</title>
      <link>http://example.com/articles/2</link>
      <guid>wire-2</guid>
      <description>What the crowds outside the shows are wearing.</description>
      <pubDate>Sun, 01 Mar 2026 09:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestRSSSource_MapsFeedItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, sampleFeed)
	}))
	defer srv.Close()

	src := NewRSSSource([]string{srv.URL}, time.Second)
	articles, err := src.Fetch(context.Background(), "fashion")
	require.NoError(t, err)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "Luxury designers bet on quiet elegance", first.Title)
	assert.Equal(t, "Fashion Wire", first.Source)
	assert.Equal(t, "Luxury", first.Category)
	assert.Equal(t, "http://example.com/articles/1", first.Link)
	assert.False(t, first.PublishedDate.IsZero())

	assert.Equal(t, "Streetwear", articles[1].Category)
}

func TestRSSSource_NoFeedsConfigured(t *testing.T) {
	src := NewRSSSource(nil, time.Second)
	_, err := src.Fetch(context.Background(), "fashion")
	assert.Error(t, err)
}

func TestRSSSource_AllFeedsUnreachable(t *testing.T) {
	src := NewRSSSource([]string{"http://127.0.0.1:1/feed.xml"}, time.Second)
	_, err := src.Fetch(context.Background(), "fashion")
	assert.Error(t, err)
}

func TestCatalogSource_NeverFails(t *testing.T) {
	clock := func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	src := NewCatalogSource(catalog.New(clock))

	first, err := src.Fetch(context.Background(), "anything")
	require.NoError(t, err)
	assert.Len(t, first, catalog.GeneratedCount)

	second, err := src.Fetch(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
