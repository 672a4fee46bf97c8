package shop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tresnow/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

type stubProvider struct {
	products []model.Product
	err      error
}

func (s *stubProvider) Products(context.Context, string, int) ([]model.Product, error) {
	return s.products, s.err
}

func TestProductsByCategory_GeneratedFallback(t *testing.T) {
	svc := NewService(nil, nil).WithClock(fixedClock)

	list := svc.ProductsByCategory(context.Background(), "streetwear", 10)

	assert.Equal(t, "Generated Catalog", list.Source)
	assert.Equal(t, "streetwear", list.Category)
	assert.Len(t, list.Products, 10)
	assert.Equal(t, fixedClock(), list.LastUpdated)

	for _, p := range list.Products {
		assert.Equal(t, "streetwear", p.Category)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Brand)
		assert.GreaterOrEqual(t, p.Price, 50)
		assert.Equal(t, "USD", p.Currency)
	}
}

func TestProductsByCategory_Deterministic(t *testing.T) {
	svc := NewService(nil, nil).WithClock(fixedClock)

	first := svc.ProductsByCategory(context.Background(), "luxury", 20)
	second := svc.ProductsByCategory(context.Background(), "luxury", 20)
	assert.Equal(t, first.Products, second.Products)
}

func TestProductsByCategory_UnknownCategoryUsesLuxuryTypes(t *testing.T) {
	svc := NewService(nil, nil).WithClock(fixedClock)

	list := svc.ProductsByCategory(context.Background(), "no-such-category", 5)
	require.Len(t, list.Products, 5)
	assert.Contains(t, list.Products[0].Name, "Designer Dress")
}

func TestProductsByCategory_RemoteWins(t *testing.T) {
	remote := &stubProvider{products: []model.Product{
		{ID: "r-1", Name: "Remote Coat", Brand: "ACME", Category: "luxury"},
	}}
	svc := NewService(remote, nil).WithClock(fixedClock)

	list := svc.ProductsByCategory(context.Background(), "luxury", 5)
	assert.Equal(t, "Remote Provider", list.Source)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "Remote Coat", list.Products[0].Name)
}

func TestProductsByCategory_RemoteFailureFallsBack(t *testing.T) {
	remote := &stubProvider{err: errors.New("rate limited")}
	svc := NewService(remote, nil).WithClock(fixedClock)

	list := svc.ProductsByCategory(context.Background(), "luxury", 5)
	assert.Equal(t, "Generated Catalog", list.Source)
	assert.Len(t, list.Products, 5)
}

func TestSearch_MapsQueryToCategory(t *testing.T) {
	svc := NewService(nil, nil).WithClock(fixedClock)

	cases := []struct {
		query string
		want  string
	}{
		{"street style sneakers", "streetwear"},
		{"eco friendly", "sustainability"},
		{"sustainable denim", "sustainability"},
		{"tech wearables", "technology"},
		{"evening gowns", "luxury"},
	}

	for _, tc := range cases {
		list := svc.Search(context.Background(), tc.query, 5)
		assert.Equal(t, tc.want, list.Category, "query: %q", tc.query)
		assert.Equal(t, tc.query, list.Query)
		assert.Len(t, list.Products, 5)
	}
}

func TestTrending(t *testing.T) {
	svc := NewService(nil, nil).WithClock(fixedClock)

	list := svc.Trending(context.Background(), 0)
	assert.Len(t, list.Products, 12)
	assert.Empty(t, list.Category)
	for _, p := range list.Products {
		assert.Equal(t, "luxury", p.Category)
	}
}

func TestGenerate_SalePricing(t *testing.T) {
	products := generate("luxury", 8)

	// Every fourth product is on sale at 80% of list price.
	assert.Zero(t, products[0].SalePrice)
	assert.Equal(t, products[3].Price*80/100, products[3].SalePrice)
	assert.Equal(t, products[7].Price*80/100, products[7].SalePrice)
}
