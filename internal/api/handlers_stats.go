package api

import "net/http"

func (s *Server) handleOCRStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"model": s.cfg.MistralModel,
		"stats": s.stats.Snapshot(),
	})
}
