// Package web serves the JSON API the Très.Now front end talks to.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"tresnow/internal/news"
	"tresnow/internal/newsapi"
	"tresnow/internal/reader"
	"tresnow/internal/shop"
	"tresnow/internal/store"
)

// Deps carries everything the server needs. Upstream may be nil when no API
// key is configured; the proxy endpoint then signals fallback.
type Deps struct {
	News     *news.Service
	Shop     *shop.Service
	Favs     *store.Favourites
	Boards   *store.MoodBoards
	Reader   *reader.Reader
	Upstream *newsapi.Client
	Logger   *zap.Logger
	PageSize int
}

type Server struct {
	news     *news.Service
	shop     *shop.Service
	favs     *store.Favourites
	boards   *store.MoodBoards
	reader   *reader.Reader
	upstream *newsapi.Client
	logger   *zap.Logger
	pageSize int
	router   *mux.Router
	handler  http.Handler
	server   *http.Server
}

func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := deps.PageSize
	if pageSize <= 0 {
		pageSize = news.DefaultPageSize
	}

	s := &Server{
		news:     deps.News,
		shop:     deps.Shop,
		favs:     deps.Favs,
		boards:   deps.Boards,
		reader:   deps.Reader,
		upstream: deps.Upstream,
		logger:   logger,
		pageSize: pageSize,
		router:   mux.NewRouter(),
	}
	s.routes()
	s.handler = s.logRequests(cors(s.router))
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/fashion-news", s.handleFashionNews).Methods("GET")
	api.HandleFunc("/articles", s.handleListArticles).Methods("GET")
	api.HandleFunc("/articles/{id}", s.handleGetArticle).Methods("GET")
	api.HandleFunc("/articles/{id}/read", s.handleReadArticle).Methods("GET")
	api.HandleFunc("/search", s.handleSearch).Methods("GET")
	api.HandleFunc("/products", s.handleProducts).Methods("GET")
	api.HandleFunc("/events", s.handleEvents).Methods("GET")
	api.HandleFunc("/favourites", s.handleListFavourites).Methods("GET")
	api.HandleFunc("/favourites", s.handleAddFavourite).Methods("POST")
	api.HandleFunc("/favourites/{id}", s.handleRemoveFavourite).Methods("DELETE")
	api.HandleFunc("/moodboards", s.handleListBoards).Methods("GET")
	api.HandleFunc("/moodboards", s.handleSaveBoard).Methods("POST")
	api.HandleFunc("/moodboards/{id}", s.handleGetBoard).Methods("GET")
	api.HandleFunc("/moodboards/{id}", s.handleDeleteBoard).Methods("DELETE")
	api.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
}

// Handler exposes the fully wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start launches the HTTP server.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("API server listening", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
