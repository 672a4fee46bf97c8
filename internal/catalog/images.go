package catalog

// categoryImages rotates a small pool of stock photos per category so
// generated articles render with plausible imagery.
var categoryImages = map[string][]string{
	"Fashion Week": {
		"https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1445205170230-053b83016050?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1558769132-cb1aea458c5e?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1509631179647-0177331693ae?w=400&h=600&fit=crop",
	},
	"Luxury": {
		"https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1483985988355-763728e1935b?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=400&h=600&fit=crop",
	},
	"Streetwear": {
		"https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1506629905607-d405d7d3b0d2?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1552374196-1ab2a1c593e8?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1529139574466-a303027c1d8b?w=400&h=600&fit=crop",
	},
	"Sustainability": {
		"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=400&h=600&fit=crop",
	},
	"Technology": {
		"https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1483985988355-763728e1935b?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1552374196-1ab2a1c593e8?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=400&h=600&fit=crop",
	},
	"Vintage": {
		"https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1509631179647-0177331693ae?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1558769132-cb1aea458c5e?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=400&h=600&fit=crop",
	},
	"Business": {
		"https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1483985988355-763728e1935b?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1445205170230-053b83016050?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=400&h=600&fit=crop",
	},
	"Global Fashion": {
		"https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1552374196-1ab2a1c593e8?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1529139574466-a303027c1d8b?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=600&fit=crop",
	},
	"Style": {
		"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=400&h=600&fit=crop",
		"https://images.unsplash.com/photo-1558769132-cb1aea458c5e?w=400&h=600&fit=crop",
	},
}

// ImageFor picks an image for the category, rotating by index. Unknown
// categories fall back to the Style pool.
func ImageFor(category string, i int) string {
	pool, ok := categoryImages[category]
	if !ok {
		pool = categoryImages["Style"]
	}
	return pool[i%len(pool)]
}
