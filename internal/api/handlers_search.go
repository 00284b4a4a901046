package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pdfsift/pdfsift/internal/search"
	"github.com/pdfsift/pdfsift/internal/usage"
)

func (s *Server) handleSearchPDF(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Query string `json:"query"`
		TopK  int    `json:"top_k"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if in.TopK <= 0 {
		in.TopK = s.cfg.SearchTopK
	}

	start := time.Now()
	results, err := s.retriever.Search(s.store.Pages(), in.Query, in.TopK)
	if err != nil {
		if errors.Is(err, search.ErrNoDocument) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error("search failed", "error", err)
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []search.Result{}
	}

	outputTokens := 0
	for _, res := range results {
		outputTokens += usage.EstimateTokens(res.Text)
	}
	s.usage.TrackAsync(usage.Record{
		Model:        "pdf-search",
		Feature:      "extraction",
		InputTokens:  usage.EstimateTokens(in.Query),
		OutputTokens: outputTokens,
		ResponseTime: time.Since(start).Seconds(),
	})

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Stats())
}
