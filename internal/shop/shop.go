// Package shop is the product catalog provider: an optional remote source
// with a deterministic generated catalog as the durable fallback, mirroring
// the tiered discipline of the news service.
package shop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tresnow/internal/model"
)

// Provider is a remote product source. A nil provider skips straight to the
// generated catalog.
type Provider interface {
	Products(ctx context.Context, category string, limit int) ([]model.Product, error)
}

// List is a product listing plus source metadata.
type List struct {
	Products    []model.Product `json:"products"`
	Total       int             `json:"total"`
	Category    string          `json:"category,omitempty"`
	Query       string          `json:"query,omitempty"`
	Source      string          `json:"source"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

type Service struct {
	remote Provider
	logger *zap.Logger
	now    func() time.Time
}

func NewService(remote Provider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{remote: remote, logger: logger, now: time.Now}
}

// WithClock overrides the clock used for timestamps and generation. Intended
// for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ProductsByCategory returns up to limit products for a category, trying the
// remote provider first.
func (s *Service) ProductsByCategory(ctx context.Context, category string, limit int) List {
	if limit <= 0 {
		limit = 20
	}

	if s.remote != nil {
		products, err := s.remote.Products(ctx, category, limit)
		if err == nil && len(products) > 0 {
			return List{
				Products:    products,
				Total:       len(products),
				Category:    category,
				Source:      "Remote Provider",
				LastUpdated: s.now(),
			}
		}
		if err != nil {
			s.logger.Warn("product provider failed", zap.String("category", category), zap.Error(err))
		}
	}

	products := generate(category, limit)
	return List{
		Products:    products,
		Total:       len(products),
		Category:    category,
		Source:      "Generated Catalog",
		LastUpdated: s.now(),
	}
}

// Search maps a free-text query onto the closest product category.
func (s *Service) Search(ctx context.Context, query string, limit int) List {
	category := categoryForQuery(query)
	list := s.ProductsByCategory(ctx, category, limit)
	list.Query = query
	return list
}

// Trending returns the luxury picks shown on the shopping landing page.
func (s *Service) Trending(ctx context.Context, limit int) List {
	if limit <= 0 {
		limit = 12
	}
	list := s.ProductsByCategory(ctx, "luxury", limit)
	list.Category = ""
	return list
}

func categoryForQuery(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "street"):
		return "streetwear"
	case strings.Contains(q, "eco") || strings.Contains(q, "sustain"):
		return "sustainability"
	case strings.Contains(q, "tech"):
		return "technology"
	default:
		return "luxury"
	}
}

var brands = []string{
	"Zara", "H&M", "Gucci", "Prada", "Nike",
	"Adidas", "Uniqlo", "COS", "Arket", "Mango",
}

var productTypes = map[string][]string{
	"luxury":         {"Designer Dress", "Luxury Handbag", "Premium Coat", "Designer Shoes", "Silk Blouse"},
	"streetwear":     {"Hoodie", "Sneakers", "Joggers", "Graphic Tee", "Baseball Cap"},
	"sustainability": {"Organic Cotton Tee", "Recycled Jacket", "Eco Dress", "Sustainable Jeans", "Hemp Bag"},
	"technology":     {"Smart Watch", "Fitness Tracker", "Tech Jacket", "LED Sneakers", "Smart Ring"},
	"fashion-week":   {"Runway Dress", "Statement Coat", "Designer Bag", "Fashion Boots", "Avant-garde Top"},
}

var productImages = []string{
	"https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=400&h=600&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1445205170230-053b83016050?w=400&h=600&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1558769132-cb1aea458c5e?w=400&h=600&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=400&h=600&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1509631179647-0177331693ae?w=400&h=600&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=400&h=600&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=600&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1483985988355-763728e1935b?w=400&h=600&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=400&h=600&fit=crop&auto=format&q=80",
	"https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=400&h=600&fit=crop&auto=format&q=80",
}

// generate builds the fallback catalog for a category. Index-seeded, so the
// same inputs always produce the same products.
func generate(category string, count int) []model.Product {
	types, ok := productTypes[strings.ToLower(category)]
	if !ok {
		types = productTypes["luxury"]
	}

	products := make([]model.Product, 0, count)
	for i := 0; i < count; i++ {
		productType := types[i%len(types)]
		brand := brands[i%len(brands)]
		price := 50 + (i*37)%500

		salePrice := 0
		if i%4 == 3 {
			salePrice = price * 80 / 100
		}

		products = append(products, model.Product{
			ID:          fmt.Sprintf("product-%s-%d", category, i),
			Name:        fmt.Sprintf("%s %s", brand, productType),
			Brand:       brand,
			Price:       price,
			SalePrice:   salePrice,
			Currency:    "USD",
			Image:       productImages[i%len(productImages)],
			Category:    category,
			Description: fmt.Sprintf("Premium %s from %s. Perfect for modern fashion enthusiasts.", strings.ToLower(productType), brand),
			Rating:      fmt.Sprintf("%.1f", 3.0+float64((i*13)%21)/10),
			Reviews:     10 + (i*97)%1000,
			InStock:     i%10 != 9,
			URL:         "#",
		})
	}
	return products
}
