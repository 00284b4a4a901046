package document

import (
	"sync"
	"time"

	"github.com/pdfsift/pdfsift/internal/ocr"
)

// Store holds the single current document. Each ingest replaces the whole
// slot in one assignment; documents are never merged or appended. The
// lock keeps readers off a slot that is mid-replacement.
type Store struct {
	mu        sync.RWMutex
	docID     string
	filename  string
	pages     []StructuredPage
	raw       *ocr.Response
	updatedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new document wholesale.
func (s *Store) Replace(docID, filename string, pages []StructuredPage, raw *ocr.Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docID = docID
	s.filename = filename
	s.pages = pages
	s.raw = raw
	s.updatedAt = time.Now()
}

// Pages returns a snapshot copy of the current structured pages.
func (s *Store) Pages() []StructuredPage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pages := make([]StructuredPage, len(s.pages))
	copy(pages, s.pages)
	return pages
}

// Combined renders the current document's combined markdown view. The
// second return is false when no document has been processed.
func (s *Store) Combined() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.raw == nil {
		return "", false
	}
	return CombinedMarkdown(s.raw), true
}

// Stats reflects current store contents for the debug endpoint.
type Stats struct {
	HasPages    bool   `json:"has_structured_pages"`
	NumPages    int    `json:"num_pages"`
	HasResponse bool   `json:"has_ocr_response"`
	DocID       string `json:"doc_id,omitempty"`
	Filename    string `json:"filename,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{
		HasPages:    len(s.pages) > 0,
		NumPages:    len(s.pages),
		HasResponse: s.raw != nil,
		DocID:       s.docID,
		Filename:    s.filename,
	}
	if !s.updatedAt.IsZero() {
		st.UpdatedAt = s.updatedAt.Format(time.RFC3339)
	}
	return st
}
