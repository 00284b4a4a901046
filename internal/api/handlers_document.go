package api

import (
	"bytes"
	"net/http"
)

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	combined, ok := s.store.Combined()
	if !ok {
		jsonError(w, "no PDF has been processed yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(combined))
}

func (s *Server) handleDocumentHTML(w http.ResponseWriter, r *http.Request) {
	combined, ok := s.store.Combined()
	if !ok {
		jsonError(w, "no PDF has been processed yet", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Convert([]byte(combined), &buf); err != nil {
		s.log.Error("markdown render failed", "error", err)
		jsonError(w, "failed to render document", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
