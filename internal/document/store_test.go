package document

import (
	"testing"

	"github.com/pdfsift/pdfsift/internal/ocr"
)

func TestStoreEmptyStats(t *testing.T) {
	s := NewStore()
	st := s.Stats()
	if st.HasPages || st.NumPages != 0 || st.HasResponse {
		t.Errorf("expected empty stats, got %+v", st)
	}
	if _, ok := s.Combined(); ok {
		t.Error("expected no combined view for empty store")
	}
	if pages := s.Pages(); len(pages) != 0 {
		t.Errorf("expected no pages, got %d", len(pages))
	}
}

func TestStoreReplaceIsWholesale(t *testing.T) {
	s := NewStore()

	first := &ocr.Response{Pages: []ocr.Page{
		{Index: 0, Markdown: "a"},
		{Index: 1, Markdown: "b"},
		{Index: 2, Markdown: "c"},
	}}
	s.Replace("doc-1", "first.pdf", BuildPages(first), first)

	second := &ocr.Response{Pages: []ocr.Page{
		{Index: 0, Markdown: "x"},
	}}
	s.Replace("doc-2", "second.pdf", BuildPages(second), second)

	st := s.Stats()
	if st.NumPages != 1 {
		t.Errorf("expected second document only (1 page), got %d", st.NumPages)
	}
	if st.DocID != "doc-2" || st.Filename != "second.pdf" {
		t.Errorf("expected second document identity, got %+v", st)
	}
	pages := s.Pages()
	if len(pages) != 1 || pages[0].Markdown != "x" {
		t.Errorf("expected pages replaced, not merged, got %+v", pages)
	}
}

func TestStorePagesReturnsCopy(t *testing.T) {
	s := NewStore()
	resp := &ocr.Response{Pages: []ocr.Page{{Index: 0, Markdown: "original"}}}
	s.Replace("doc-1", "doc.pdf", BuildPages(resp), resp)

	snapshot := s.Pages()
	snapshot[0].Markdown = "mutated"

	if s.Pages()[0].Markdown != "original" {
		t.Error("mutating a snapshot must not affect the store")
	}
}

func TestStoreStatsAfterReplace(t *testing.T) {
	s := NewStore()
	resp := &ocr.Response{Pages: []ocr.Page{{Index: 0, Markdown: "a"}}}
	s.Replace("doc-1", "doc.pdf", BuildPages(resp), resp)

	st := s.Stats()
	if !st.HasPages || !st.HasResponse {
		t.Errorf("expected populated stats, got %+v", st)
	}
	if st.UpdatedAt == "" {
		t.Error("expected updated_at to be set")
	}
}
