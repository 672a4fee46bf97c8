package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"tresnow/internal/catalog"
	"tresnow/internal/model"
	"tresnow/internal/newsapi"
)

// workingSetSize is how many items a remote source is asked for in one shot.
// The service filters and paginates locally over that set.
const workingSetSize = 100

// ProxySource calls the same-origin proxy endpoint, which holds the upstream
// credential server-side. The proxy always answers HTTP 200 and signals
// failure through the success/fallback flags.
type ProxySource struct {
	URL    string
	Client *http.Client
}

func NewProxySource(proxyURL string, timeout time.Duration) *ProxySource {
	return &ProxySource{
		URL:    proxyURL,
		Client: &http.Client{Timeout: timeout},
	}
}

func (p *ProxySource) Name() string { return "NewsAPI (proxy)" }

type proxyResponse struct {
	Success  bool            `json:"success"`
	Fallback bool            `json:"fallback"`
	Error    string          `json:"error"`
	Articles []model.Article `json:"articles"`
}

func (p *ProxySource) Fetch(ctx context.Context, query string) ([]model.Article, error) {
	params := url.Values{
		"query":    {query},
		"page":     {"1"},
		"pageSize": {fmt.Sprint(workingSetSize)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("proxy request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proxy: HTTP %d", resp.StatusCode)
	}

	var body proxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("proxy decode: %w", err)
	}
	if !body.Success {
		return nil, fmt.Errorf("proxy signalled fallback: %s", body.Error)
	}
	return body.Articles, nil
}

// APISource calls the upstream provider directly. In browser deployments
// this leg fails on CORS; server-side it works when a key is configured.
type APISource struct {
	client *newsapi.Client
}

func NewAPISource(client *newsapi.Client) *APISource {
	return &APISource{client: client}
}

func (a *APISource) Name() string { return "NewsAPI" }

func (a *APISource) Fetch(ctx context.Context, query string) ([]model.Article, error) {
	articles, _, err := a.client.Everything(ctx, query, 1, workingSetSize)
	return articles, err
}

// RSSSource aggregates a fixed list of fashion feeds.
type RSSSource struct {
	feeds   []string
	parser  *gofeed.Parser
	timeout time.Duration
}

func NewRSSSource(feeds []string, timeout time.Duration) *RSSSource {
	return &RSSSource{
		feeds:   feeds,
		parser:  gofeed.NewParser(),
		timeout: timeout,
	}
}

func (r *RSSSource) Name() string { return "RSS Feeds" }

func (r *RSSSource) Fetch(ctx context.Context, _ string) ([]model.Article, error) {
	if len(r.feeds) == 0 {
		return nil, fmt.Errorf("no feeds configured")
	}

	fctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var articles []model.Article
	var lastErr error
	for _, feedURL := range r.feeds {
		feed, err := r.parser.ParseURLWithContext(feedURL, fctx)
		if err != nil {
			lastErr = err
			continue
		}
		for i, item := range feed.Items {
			articles = append(articles, rssArticle(feed, item, i))
		}
	}
	if len(articles) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all feeds failed: %w", lastErr)
	}
	return articles, nil
}

func rssArticle(feed *gofeed.Feed, item *gofeed.Item, i int) model.Article {
	id := item.GUID
	if id == "" {
		id = item.Link
	}

	description := item.Description
	if len(description) > 200 {
		description = description[:200] + "..."
	}

	content := item.Content
	if content == "" {
		content = item.Description
	}

	author := "Fashion Editor"
	if item.Author != nil && item.Author.Name != "" {
		author = item.Author.Name
	}

	published := time.Time{}
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	}

	imageURL := ""
	if item.Image != nil {
		imageURL = item.Image.URL
	}

	return model.Article{
		ID:            fmt.Sprintf("rss-%d-%s", i, id),
		Title:         item.Title,
		Description:   description,
		Content:       content,
		Author:        author,
		PublishedDate: published,
		Source:        feed.Title,
		Category:      catalog.Categorize(item.Title + " " + description),
		ImageURL:      imageURL,
		ReadTime:      catalog.ReadTime(content),
		Tags:          catalog.Tags(item.Title, description),
		Link:          item.Link,
	}
}

// CatalogSource is the durable tail of the chain: deterministic generated
// content so the UI is never empty.
type CatalogSource struct {
	catalog *catalog.Catalog
}

func NewCatalogSource(c *catalog.Catalog) *CatalogSource {
	return &CatalogSource{catalog: c}
}

func (c *CatalogSource) Name() string { return "Generated Content" }

func (c *CatalogSource) Fetch(_ context.Context, _ string) ([]model.Article, error) {
	return c.catalog.Articles(), nil
}
