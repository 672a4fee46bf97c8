package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"tresnow/internal/calendar"
	"tresnow/internal/model"
	"tresnow/internal/news"
	"tresnow/internal/styleai"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleFashionNews implements the proxy contract: the upstream call happens
// here with the server-held key, and the response is always HTTP 200 so the
// caller branches on the success flag, not the status code.
func (s *Server) handleFashionNews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		query = "fashion"
	}
	page := intParam(r, "page", 1)
	pageSize := intParam(r, "pageSize", s.pageSize)

	if s.upstream == nil {
		s.writeJSON(w, http.StatusOK, map[string]any{
			"success":  false,
			"fallback": true,
			"error":    "API key not configured",
		})
		return
	}

	articles, totalResults, err := s.upstream.Everything(r.Context(), query, page, pageSize)
	if err != nil || len(articles) == 0 {
		msg := "no articles returned from upstream"
		if err != nil {
			s.logger.Warn("upstream news call failed", zap.Error(err))
			msg = err.Error()
		}
		s.writeJSON(w, http.StatusOK, map[string]any{
			"success":  false,
			"fallback": true,
			"error":    msg,
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"articles":     articles,
		"totalResults": totalResults,
		"query":        query,
		"page":         page,
		"pageSize":     pageSize,
		"source":       "NewsAPI (TresNow proxy)",
	})
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	page := intParam(r, "page", 1)
	pageSize := intParam(r, "pageSize", s.pageSize)
	q := r.URL.Query()

	if raw := q.Get("featured"); raw != "" {
		limit, _ := strconv.Atoi(raw)
		articles, err := s.news.Featured(r.Context(), limit)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, "failed to load featured articles")
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{
			"articles": articles,
			"total":    len(articles),
		})
		return
	}

	var result model.Page
	var err error
	switch {
	case q.Get("category") != "":
		result, err = s.news.ListByCategory(r.Context(), q.Get("category"), page, pageSize)
	case q.Get("source") != "":
		result, err = s.news.ListBySource(r.Context(), q.Get("source"), page, pageSize)
	default:
		result, err = s.news.ListAll(r.Context(), page, pageSize)
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to load articles")
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	article, err := s.news.GetByID(r.Context(), id)
	if errors.Is(err, news.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "article not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to load article")
		return
	}
	s.writeJSON(w, http.StatusOK, article)
}

// handleReadArticle returns the article with full extracted text when the
// outbound link is reachable, and the stored record otherwise.
func (s *Server) handleReadArticle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	article, err := s.news.GetByID(r.Context(), id)
	if errors.Is(err, news.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "article not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to load article")
		return
	}

	if enriched, err := s.reader.Read(article); err == nil {
		article = enriched
	}
	s.writeJSON(w, http.StatusOK, article)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page := intParam(r, "page", 1)
	pageSize := intParam(r, "pageSize", s.pageSize)

	result, err := s.news.Search(r.Context(), query, page, pageSize)
	if errors.Is(err, news.ErrInvalidQuery) {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := intParam(r, "limit", 20)

	switch {
	case q.Get("q") != "":
		s.writeJSON(w, http.StatusOK, s.shop.Search(r.Context(), q.Get("q"), limit))
	case q.Get("trending") != "":
		s.writeJSON(w, http.StatusOK, s.shop.Trending(r.Context(), limit))
	default:
		category := q.Get("category")
		if category == "" {
			category = "luxury"
		}
		s.writeJSON(w, http.StatusOK, s.shop.ProductsByCategory(r.Context(), category, limit))
	}
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := intParam(r, "year", now.Year())
	month := time.Month(intParam(r, "month", int(now.Month())))

	events := calendar.EventsForMonth(year, month)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"year":   year,
		"month":  int(month),
		"events": events,
		"total":  len(events),
	})
}

func (s *Server) handleListFavourites(w http.ResponseWriter, _ *http.Request) {
	articles, err := s.favs.List()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to load favourites")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"articles": articles,
		"total":    len(articles),
	})
}

func (s *Server) handleAddFavourite(w http.ResponseWriter, r *http.Request) {
	var article model.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil || article.ID == "" {
		s.writeError(w, http.StatusBadRequest, "article with an id is required")
		return
	}
	if err := s.favs.Add(article); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to save favourite")
		return
	}
	s.writeJSON(w, http.StatusCreated, article)
}

func (s *Server) handleRemoveFavourite(w http.ResponseWriter, r *http.Request) {
	if err := s.favs.Remove(mux.Vars(r)["id"]); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to remove favourite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListBoards(w http.ResponseWriter, _ *http.Request) {
	boards, err := s.boards.List()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to load mood boards")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"boards": boards,
		"total":  len(boards),
	})
}

func (s *Server) handleSaveBoard(w http.ResponseWriter, r *http.Request) {
	var board model.MoodBoard
	if err := json.NewDecoder(r.Body).Decode(&board); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid mood board payload")
		return
	}
	saved, err := s.boards.Save(board)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to save mood board")
		return
	}
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid board id")
		return
	}
	board, err := s.boards.Get(id)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "mood board not found")
		return
	}
	s.writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid board id")
		return
	}
	if err := s.boards.Delete(id); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to delete mood board")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAnalyze classifies an uploaded image. Accepts either a multipart
// form with an "image" field or the raw image as the request body. Analysis
// never fails; undecodable input yields the casual default.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var body io.Reader = r.Body

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("image")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "image field is required")
			return
		}
		defer file.Close()
		body = file
	}

	result := styleai.Analyze(body)
	s.writeJSON(w, http.StatusOK, result)
}
