// Package newsapi is a best-effort client for the upstream news provider.
// Malformed records are dropped rather than failing the whole call.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tresnow/internal/catalog"
	"tresnow/internal/model"
)

// FashionDomains narrows the upstream query to fashion publications.
var FashionDomains = []string{
	"vogue.com", "harpersbazaar.com", "elle.com", "wwd.com",
	"fashionista.com", "refinery29.com", "whowhatwear.com",
}

// editorialMarker matches bracketed insertions like "[Removed]" or "[+123 chars]".
var editorialMarker = regexp.MustCompile(`\[.*?\]`)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func New(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type rawArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
}

type response struct {
	Status       string       `json:"status"`
	Message      string       `json:"message"`
	TotalResults int          `json:"totalResults"`
	Articles     []rawArticle `json:"articles"`
}

// Everything queries the provider's keyword search. It returns the cleaned
// article set plus the upstream total result count.
func (c *Client) Everything(ctx context.Context, query string, page, pageSize int) ([]model.Article, int, error) {
	params := url.Values{
		"apiKey":   {c.apiKey},
		"q":        {query},
		"language": {"en"},
		"sortBy":   {"publishedAt"},
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
		"domains":  {strings.Join(FashionDomains, ",")},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", "TresNow/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("newsapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("newsapi: HTTP %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, 0, fmt.Errorf("newsapi decode: %w", err)
	}
	if body.Status != "ok" {
		return nil, 0, fmt.Errorf("newsapi: status %q: %s", body.Status, body.Message)
	}

	now := time.Now().UnixMilli()
	articles := make([]model.Article, 0, len(body.Articles))
	for i, raw := range body.Articles {
		if raw.Title == "" || raw.Description == "" {
			continue
		}
		if strings.Contains(raw.Title, "[Removed]") || strings.Contains(raw.Description, "[Removed]") {
			continue
		}
		articles = append(articles, normalize(raw, now, i))
	}
	return articles, body.TotalResults, nil
}

func normalize(raw rawArticle, stamp int64, i int) model.Article {
	title := strings.TrimSpace(editorialMarker.ReplaceAllString(raw.Title, ""))
	description := strings.TrimSpace(editorialMarker.ReplaceAllString(raw.Description, ""))
	if len(description) > 200 {
		description = description[:200] + "..."
	}

	content := raw.Content
	if content == "" {
		content = description
	}

	author := raw.Author
	if author == "" {
		author = "Fashion Editor"
	}
	source := raw.Source.Name
	if source == "" {
		source = "Fashion News"
	}
	link := raw.URL
	if link == "" {
		link = "#"
	}

	return model.Article{
		ID:            fmt.Sprintf("newsapi-%d-%d", stamp, i),
		Title:         title,
		Description:   description,
		Content:       content,
		Author:        author,
		PublishedDate: raw.PublishedAt,
		Source:        source,
		Category:      catalog.Categorize(title + " " + description),
		ImageURL:      raw.URLToImage,
		ReadTime:      catalog.ReadTime(content),
		Tags:          catalog.Tags(title, description),
		Link:          link,
	}
}
