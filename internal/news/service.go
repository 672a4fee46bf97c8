// Package news is the content service layer: it resolves a working set of
// articles through an ordered chain of data sources and serves filtered,
// paginated views of it.
package news

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"tresnow/internal/model"
)

var (
	// ErrInvalidQuery is returned when a trimmed search query is shorter
	// than two characters.
	ErrInvalidQuery = errors.New("search query must be at least 2 characters long")

	// ErrNotFound is returned by GetByID when no article matches.
	ErrNotFound = errors.New("article not found")
)

// DefaultPageSize matches the SPA's fixed page length.
const DefaultPageSize = 20

// defaultQuery is the working-set query used for every listing operation.
const defaultQuery = "fashion"

// Source produces a full working set of articles for a query. Implementations
// report a stable name used as page metadata.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query string) ([]model.Article, error)
}

type Service struct {
	sources  []Source
	cache    Cache
	logger   *zap.Logger
	pageSize int
	now      func() time.Time
}

// NewService builds a service over the given ordered source chain. The last
// source is expected to be infallible (the generated catalog) so that
// listing operations always succeed.
func NewService(sources []Source, cache Cache, logger *zap.Logger) *Service {
	if cache == nil {
		cache = NewMemoryCache(DefaultCacheTTL, time.Now)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sources:  sources,
		cache:    cache,
		logger:   logger,
		pageSize: DefaultPageSize,
		now:      time.Now,
	}
}

// WithClock overrides the clock used for page timestamps. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// resolve walks the source chain until one yields articles. Failures are
// logged and absorbed; they never surface to callers.
func (s *Service) resolve(ctx context.Context, query string) ([]model.Article, string) {
	if articles, src, ok := s.cache.Get(ctx, query); ok {
		return articles, src
	}

	for _, src := range s.sources {
		articles, err := src.Fetch(ctx, query)
		if err != nil {
			s.logger.Warn("news source failed",
				zap.String("source", src.Name()),
				zap.Error(err))
			continue
		}
		if len(articles) == 0 {
			s.logger.Warn("news source returned no articles", zap.String("source", src.Name()))
			continue
		}

		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].PublishedDate.After(articles[j].PublishedDate)
		})

		s.cache.Set(ctx, query, src.Name(), articles)
		return articles, src.Name()
	}

	return nil, "none"
}

// ListAll returns a page of all known articles, newest first.
func (s *Service) ListAll(ctx context.Context, page, pageSize int) (model.Page, error) {
	articles, source := s.resolve(ctx, defaultQuery)
	return s.paginate(articles, source, page, pageSize), nil
}

// ListByCategory filters by category, case-insensitively.
func (s *Service) ListByCategory(ctx context.Context, category string, page, pageSize int) (model.Page, error) {
	articles, source := s.resolve(ctx, defaultQuery)
	filtered := lo.Filter(articles, func(a model.Article, _ int) bool {
		return strings.EqualFold(a.Category, category)
	})
	return s.paginate(filtered, source, page, pageSize), nil
}

// ListBySource filters by publication name, substring match.
func (s *Service) ListBySource(ctx context.Context, name string, page, pageSize int) (model.Page, error) {
	articles, source := s.resolve(ctx, defaultQuery)
	needle := strings.ToLower(name)
	filtered := lo.Filter(articles, func(a model.Article, _ int) bool {
		return strings.Contains(strings.ToLower(a.Source), needle)
	})
	return s.paginate(filtered, source, page, pageSize), nil
}

// Search matches the query against title, description, tags and category.
func (s *Service) Search(ctx context.Context, query string, page, pageSize int) (model.Page, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < 2 {
		return model.Page{}, ErrInvalidQuery
	}

	articles, source := s.resolve(ctx, defaultQuery)
	needle := strings.ToLower(trimmed)
	filtered := lo.Filter(articles, func(a model.Article, _ int) bool {
		if strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Description), needle) ||
			strings.Contains(strings.ToLower(a.Category), needle) {
			return true
		}
		return lo.SomeBy(a.Tags, func(tag string) bool {
			return strings.Contains(strings.ToLower(tag), needle)
		})
	})
	return s.paginate(filtered, source, page, pageSize), nil
}

// Featured returns the first limit articles of the working set.
func (s *Service) Featured(ctx context.Context, limit int) ([]model.Article, error) {
	if limit <= 0 {
		limit = 6
	}
	articles, _ := s.resolve(ctx, defaultQuery)
	return lo.Slice(articles, 0, limit), nil
}

// GetByID looks up a single article.
func (s *Service) GetByID(ctx context.Context, id string) (model.Article, error) {
	articles, _ := s.resolve(ctx, defaultQuery)
	for _, a := range articles {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Article{}, ErrNotFound
}

// paginate slices the working set into a 1-based page. Out-of-range pages
// yield an empty article list with valid metadata.
func (s *Service) paginate(articles []model.Article, source string, page, pageSize int) model.Page {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	total := len(articles)
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return model.Page{
		Articles: articles[start:end],
		Pagination: model.Pagination{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalArticles:   total,
			ArticlesPerPage: pageSize,
			HasNextPage:     end < total,
			HasPrevPage:     page > 1,
		},
		Source:      source,
		LastUpdated: s.now(),
	}
}
