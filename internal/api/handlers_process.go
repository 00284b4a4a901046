package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pdfsift/pdfsift/internal/document"
	"github.com/pdfsift/pdfsift/internal/ingest"
)

type processResponse struct {
	Status          string                    `json:"status"`
	DocID           string                    `json:"doc_id"`
	StructuredPages []document.StructuredPage `json:"structured_pages"`
}

func (s *Server) handleProcessPDF(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	s.process(w, r, data, sanitizeFilename(header.Filename))
}

func (s *Server) handleProcessPDFURL(w http.ResponseWriter, r *http.Request) {
	var in struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if in.URL == "" {
		jsonError(w, "url is required", http.StatusBadRequest)
		return
	}

	data, filename, err := s.downloader.Fetch(r.Context(), in.URL)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.process(w, r, data, filename)
}

// process runs the ingest pipeline and writes the response, mapping
// failures to the declared error kinds: invalid upload is the caller's
// fault, everything past that is a processing failure.
func (s *Server) process(w http.ResponseWriter, r *http.Request, data []byte, filename string) {
	docID, pages, err := s.pipeline.Process(r.Context(), data, filename)
	if err != nil {
		var invalid *ingest.InvalidPDFError
		if errors.As(err, &invalid) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error("processing failed", "filename", filename, "error", err)
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, processResponse{
		Status:          "success",
		DocID:           docID,
		StructuredPages: pages,
	})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed.pdf"
	}
	return name
}
