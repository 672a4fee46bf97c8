package catalog

type template struct {
	title       string
	description string
	category    string
	tags        []string
}

var templates = []template{
	// Fashion Week
	{"Spring 2026 Fashion Week: Sustainable Luxury Takes Center Stage", "From Paris to Milan, designers are embracing eco-friendly materials and ethical production methods, setting new standards for luxury fashion.", "Fashion Week", []string{"fashion week", "sustainability", "luxury", "eco-friendly"}},
	{"Milan Fashion Week Highlights: Bold Colors and Innovative Silhouettes", "Italian designers showcase vibrant palettes and architectural shapes that define the upcoming season.", "Fashion Week", []string{"milan", "fashion week", "colors", "silhouettes"}},
	{"Paris Fashion Week: The Return of Haute Couture Glamour", "French fashion houses present breathtaking couture collections that celebrate craftsmanship and artistry.", "Fashion Week", []string{"paris", "haute couture", "glamour", "craftsmanship"}},
	{"New York Fashion Week: Emerging Designers Steal the Spotlight", "Young talents present fresh perspectives on American fashion with innovative designs and sustainable practices.", "Fashion Week", []string{"new york", "emerging designers", "innovation", "american fashion"}},
	{"London Fashion Week: British Creativity Meets Global Influence", "UK designers blend traditional British tailoring with contemporary global trends.", "Fashion Week", []string{"london", "british fashion", "tailoring", "global trends"}},

	// Technology
	{"The Rise of Digital Fashion: NFTs and Virtual Wardrobes", "As the metaverse expands, digital fashion is becoming a billion-dollar industry with virtual clothing and NFT collections.", "Technology", []string{"digital fashion", "nft", "technology", "virtual"}},
	{"AI-Powered Personal Styling: The Future of Fashion Retail", "Artificial intelligence is revolutionizing how we shop for clothes with personalized recommendations and virtual try-ons.", "Technology", []string{"ai", "personal styling", "retail", "virtual try-on"}},
	{"3D Fashion Design: How Technology is Changing Creation", "Designers are using 3D modeling and virtual prototyping to create more sustainable and innovative fashion.", "Technology", []string{"3d design", "virtual prototyping", "innovation", "sustainable"}},
	{"Smart Fabrics: The Integration of Technology and Textiles", "Wearable technology meets fashion as smart fabrics offer new possibilities for interactive clothing.", "Technology", []string{"smart fabrics", "wearable tech", "interactive", "textiles"}},
	{"Blockchain in Fashion: Transparency and Authenticity", "Fashion brands are using blockchain technology to ensure authenticity and supply chain transparency.", "Technology", []string{"blockchain", "transparency", "authenticity", "supply chain"}},

	// Streetwear
	{"Streetwear Meets High Fashion: The Collaboration Revolution", "Luxury brands continue to partner with streetwear labels, creating limited-edition collections that sell out in minutes.", "Streetwear", []string{"streetwear", "collaboration", "luxury", "limited edition"}},
	{"The Evolution of Sneaker Culture in High Fashion", "From basketball courts to luxury runways, sneakers have become the ultimate fashion statement.", "Streetwear", []string{"sneakers", "culture", "luxury", "basketball"}},
	{"Urban Fashion Trends: What's Next for Street Style", "Exploring the latest trends emerging from city streets and how they influence mainstream fashion.", "Streetwear", []string{"urban fashion", "street style", "trends", "city culture"}},
	{"Hip-Hop's Influence on Contemporary Fashion", "How hip-hop culture continues to shape fashion trends and luxury brand collaborations.", "Streetwear", []string{"hip-hop", "culture", "influence", "luxury brands"}},
	{"The Rise of Streetwear Brands in Luxury Markets", "Independent streetwear labels are gaining recognition and competing with established luxury houses.", "Streetwear", []string{"streetwear brands", "luxury market", "independent", "competition"}},

	// Sustainability
	{"Vintage Fashion Boom: Why Pre-Loved is the New Luxury", "The vintage fashion market is experiencing unprecedented growth as consumers seek unique, sustainable style options.", "Sustainability", []string{"vintage", "sustainable", "luxury", "pre-loved"}},
	{"Circular Fashion: Brands Leading the Sustainability Revolution", "Fashion companies are adopting circular economy principles to reduce waste and environmental impact.", "Sustainability", []string{"circular fashion", "sustainability", "environment", "waste reduction"}},
	{"Eco-Friendly Materials: The Future of Fashion Production", "Innovative sustainable materials are replacing traditional fabrics in the quest for environmental responsibility.", "Sustainability", []string{"eco-friendly", "materials", "innovation", "environment"}},
	{"Fashion Rental Services: Changing How We Consume Style", "Clothing rental platforms are offering sustainable alternatives to fast fashion consumption.", "Sustainability", []string{"fashion rental", "sustainable", "consumption", "alternative"}},
	{"Zero Waste Fashion: Designers Pioneering Sustainable Practices", "Fashion designers are creating collections with zero waste principles, revolutionizing production methods.", "Sustainability", []string{"zero waste", "sustainable practices", "production", "innovation"}},

	// Luxury
	{"Heritage Houses Reinvent Themselves for a New Generation", "Storied luxury maisons are courting younger customers with fresh creative direction and digital-first campaigns.", "Luxury", []string{"luxury", "heritage", "creative direction", "digital"}},
	{"The Quiet Luxury Movement: Understated Elegance Wins", "Logo-free dressing and premium fabrics define the quiet luxury aesthetic dominating wardrobes this season.", "Luxury", []string{"quiet luxury", "elegance", "premium", "minimalism"}},

	// Vintage
	{"Archival Fashion: Collectors Chase Rare Runway Pieces", "Vintage archive collecting has become serious business, with rare designer pieces fetching record prices.", "Vintage", []string{"archive", "vintage", "collectors", "runway"}},
	{"The Nineties Revival Refuses to Fade", "Slip dresses and minimalist tailoring from the nineties continue to anchor contemporary wardrobes.", "Vintage", []string{"nineties", "revival", "retro", "minimalist"}},

	// Business
	{"Luxury Conglomerates Report Record Quarterly Earnings", "The fashion industry's biggest groups post strong results despite shifting consumer spending patterns.", "Business", []string{"business", "earnings", "luxury market", "industry"}},
	{"Resale Platforms Reshape the Fashion Market", "Secondhand marketplaces are forcing brands to rethink pricing, production volumes, and ownership.", "Business", []string{"resale", "market", "business", "secondhand"}},

	// Global Fashion
	{"Seoul Street Style Sets the Global Agenda", "Korean fashion continues its international ascent as Seoul emerges as a leading style capital.", "Global Fashion", []string{"seoul", "global", "street style", "korean fashion"}},
	{"African Designers Command the International Stage", "A new wave of designers from Lagos to Nairobi is redefining global fashion's center of gravity.", "Global Fashion", []string{"african fashion", "global", "designers", "international"}},

	// Style
	{"Capsule Wardrobes: Building a Closet That Works", "Stylists share how a small set of versatile pieces can cover every occasion without the clutter.", "Style", []string{"capsule wardrobe", "style", "versatile", "essentials"}},
	{"Color Theory for Everyday Dressing", "Understanding undertones and palettes takes the guesswork out of putting together an outfit.", "Style", []string{"color theory", "style", "palettes", "outfits"}},
}
