// Package model defines the flat records served by the Très.Now backend:
// news articles, shop products, mood boards and calendar events. Records are
// created once by the service layer and never mutated afterwards.
package model

import "time"

// Article is a single fashion news item. IDs are unique per source
// ("tres-NNN" for generated content, "newsapi-..." for upstream items).
type Article struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"publishedDate"`
	Source        string    `json:"source"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	ReadTime      string    `json:"readTime"`
	Tags          []string  `json:"tags"`
	Link          string    `json:"link"`
}

// Pagination describes the position of a page within the full result set.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalArticles   int  `json:"totalArticles"`
	ArticlesPerPage int  `json:"articlesPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPrevPage     bool `json:"hasPrevPage"`
}

// Page is one page of articles plus metadata about which data source
// actually produced it.
type Page struct {
	Articles    []Article  `json:"articles"`
	Pagination  Pagination `json:"pagination"`
	Source      string     `json:"source"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// Product is a shopping item from the product catalog provider.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Price       int    `json:"price"`
	SalePrice   int    `json:"salePrice,omitempty"`
	Currency    string `json:"currency"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Rating      string `json:"rating"`
	Reviews     int    `json:"reviews"`
	InStock     bool   `json:"inStock"`
	URL         string `json:"url"`
}

// ColorToken, TextureToken and MoodToken are the selectable style elements
// a mood board is assembled from.
type ColorToken struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type TextureToken struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

type MoodToken struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MoodBoard is a user-assembled aggregate of style tokens plus free-text
// notes, identified by its creation timestamp (unix milliseconds).
type MoodBoard struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Colors    []ColorToken   `json:"colors"`
	Textures  []TextureToken `json:"textures"`
	Moods     []MoodToken    `json:"moods"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Event is a single entry in the fashion calendar. Day is the day of the
// month the event falls on.
type Event struct {
	Day         int    `json:"date"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
