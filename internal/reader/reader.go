// Package reader fetches an article's outbound link and extracts the
// readable full text, since upstream news APIs truncate content.
package reader

import (
	"errors"
	"time"

	"github.com/go-shiori/go-readability"
	"go.uber.org/zap"

	"tresnow/internal/catalog"
	"tresnow/internal/model"
)

// ErrNoLink is returned for articles without a real outbound URL.
var ErrNoLink = errors.New("article has no outbound link")

// Scraper defines the interface for downloading web pages.
// This allows us to mock the "Download" step in tests.
type Scraper interface {
	Scrape(url string, timeout time.Duration) (*readability.Article, error)
}

// DefaultScraper is the real implementation that uses the internet.
type DefaultScraper struct{}

func (s *DefaultScraper) Scrape(url string, timeout time.Duration) (*readability.Article, error) {
	art, err := readability.FromURL(url, timeout)
	return &art, err
}

type Reader struct {
	scraper Scraper
	logger  *zap.Logger
	timeout time.Duration
}

func NewReader(logger *zap.Logger, timeout time.Duration) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Reader{
		scraper: &DefaultScraper{},
		logger:  logger,
		timeout: timeout,
	}
}

// WithScraper swaps the download step. Intended for tests.
func (r *Reader) WithScraper(s Scraper) *Reader {
	r.scraper = s
	return r
}

// Read returns a copy of the article with its content replaced by the
// extracted full text of the linked page.
func (r *Reader) Read(article model.Article) (model.Article, error) {
	if article.Link == "" || article.Link == "#" {
		return model.Article{}, ErrNoLink
	}

	r.logger.Info("extracting full text",
		zap.String("id", article.ID),
		zap.String("url", article.Link))

	parsed, err := r.scraper.Scrape(article.Link, r.timeout)
	if err != nil {
		r.logger.Warn("extraction failed", zap.String("url", article.Link), zap.Error(err))
		return model.Article{}, err
	}

	article.Content = parsed.Content
	if parsed.Excerpt != "" && article.Description == "" {
		article.Description = parsed.Excerpt
	}
	article.ReadTime = catalog.ReadTime(parsed.TextContent)
	return article, nil
}
