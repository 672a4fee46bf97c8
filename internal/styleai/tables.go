package styleai

// Canned descriptive content keyed by style category. The first three tags
// of each list accompany a result.
var styleTags = map[string][]string{
	"luxury":     {"premium", "elegant", "sophisticated", "high-end", "refined"},
	"streetwear": {"urban", "edgy", "bold", "trendy", "contemporary"},
	"casual":     {"comfortable", "relaxed", "everyday", "versatile", "easy-going"},
	"formal":     {"professional", "structured", "polished", "business", "classic"},
	"vintage":    {"retro", "timeless", "nostalgic", "classic", "heritage"},
	"minimalist": {"clean", "simple", "modern", "neutral", "understated"},
}

var occasions = map[string]string{
	"luxury":     "evening",
	"formal":     "business",
	"streetwear": "casual",
	"vintage":    "weekend",
	"minimalist": "everyday",
	"casual":     "weekend",
}

var suggestions = map[string][]string{
	"luxury": {
		"Add statement jewelry for extra elegance",
		"Consider a structured blazer for sophistication",
		"Pair with premium leather accessories",
	},
	"streetwear": {
		"Layer with an oversized jacket",
		"Add chunky sneakers for authentic street style",
		"Mix textures for visual interest",
	},
	"casual": {
		"Perfect for weekend activities",
		"Add a denim jacket for versatility",
		"Comfortable shoes complete the look",
	},
	"formal": {
		"Ideal for professional settings",
		"Add a classic watch for polish",
		"Consider neutral color palette",
	},
	"vintage": {
		"Pair with retro accessories",
		"Add vintage-inspired shoes",
		"Consider classic silhouettes",
	},
	"minimalist": {
		"Keep accessories simple and clean",
		"Focus on quality over quantity",
		"Neutral colors work best",
	},
}
