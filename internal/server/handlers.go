package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/retailops/helpsearch/internal/ranking"
)

// SearchRequest is the body for POST /api/v1/search.
type SearchRequest struct {
	Query   string                `json:"query"`
	Context *ranking.QueryContext `json:"context,omitempty"`
	Limit   int                   `json:"limit,omitempty"`
}

// ClassifyRequest is the body for POST /api/v1/classify.
type ClassifyRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request", zap.String("query", req.Query), zap.Int("limit", req.Limit))
	response := s.engine.Rank(r.Context(), req.Query, req.Context, req.Limit)
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.respondJSON(w, http.StatusOK, ranking.Classify(req.Query))
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, ok := s.corpus.Get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "entry not found")
		return
	}
	s.respondJSON(w, http.StatusOK, entry)
}

func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.corpus.Get(id); !ok {
		s.respondError(w, http.StatusNotFound, "entry not found")
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	s.respondJSON(w, http.StatusOK, s.engine.Related(id, limit))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	idx := s.engine.Index()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"entries":          s.corpus.Len(),
		"embeddings":       idx.Size(),
		"stale_embeddings": idx.StaleCount(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
