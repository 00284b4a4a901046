// Package ingest runs the document pipeline: validate the upload, send it
// to the OCR vendor, structure the pages, and swap them into the store.
package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	pdflib "github.com/ledongthuc/pdf"

	"github.com/pdfsift/pdfsift/internal/document"
	"github.com/pdfsift/pdfsift/internal/ocr"
	"github.com/pdfsift/pdfsift/internal/usage"
)

// Pipeline turns raw PDF bytes into structured pages in the store.
type Pipeline struct {
	engine ocr.Engine
	store  *document.Store
	usage  *usage.Client
	stats  *usage.Stats
	model  string
	log    *slog.Logger
}

func NewPipeline(engine ocr.Engine, store *document.Store, usageClient *usage.Client, stats *usage.Stats, model string, log *slog.Logger) *Pipeline {
	return &Pipeline{
		engine: engine,
		store:  store,
		usage:  usageClient,
		stats:  stats,
		model:  model,
		log:    log,
	}
}

// Process runs the full ingest for one document and replaces the store
// wholesale. Returns the assigned document ID and the structured pages.
func (p *Pipeline) Process(ctx context.Context, data []byte, filename string) (string, []document.StructuredPage, error) {
	start := time.Now()
	sizeKB := float64(len(data)) / 1024

	if err := checkPDFHeader(data); err != nil {
		return "", nil, err
	}
	if n, err := localPageCount(data); err != nil {
		// Advisory only: the vendor may still handle files the local
		// parser cannot.
		p.log.Warn("local pdf parse failed", "filename", filename, "error", err)
	} else {
		p.log.Info("pdf accepted", "filename", filename, "local_pages", n, "size_kb", fmt.Sprintf("%.1f", sizeKB))
	}

	resp, err := p.processWithRetry(ctx, data, filename)
	if err != nil {
		return "", nil, fmt.Errorf("ocr processing: %w", err)
	}
	elapsed := time.Since(start)
	p.stats.Record(elapsed.Milliseconds())

	pages := document.BuildPages(resp)
	docID := uuid.NewString()
	p.store.Replace(docID, filename, pages, resp)

	var allText strings.Builder
	for i, pg := range pages {
		if i > 0 {
			allText.WriteString(" ")
		}
		allText.WriteString(pg.PlainText)
	}
	p.usage.TrackAsync(usage.Record{
		Model:        p.model,
		Feature:      "extraction",
		InputTokens:  usage.EstimateDocumentTokens(sizeKB),
		OutputTokens: usage.EstimateTokens(allText.String()),
		ResponseTime: elapsed.Seconds(),
		DocumentSize: sizeKB,
	})

	p.log.Info("document processed",
		"doc_id", docID,
		"filename", filename,
		"pages", len(pages),
		"duration_ms", elapsed.Milliseconds(),
	)
	return docID, pages, nil
}

func (p *Pipeline) processWithRetry(ctx context.Context, data []byte, filename string) (*ocr.Response, error) {
	var resp *ocr.Response
	var lastErr error
	for attempt := range MaxRetries {
		resp, lastErr = p.engine.Process(ctx, data, filename)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		p.log.Warn("retryable ocr error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return resp, nil
}

func checkPDFHeader(data []byte) error {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return &InvalidPDFError{Reason: "missing %PDF header"}
	}
	return nil
}

// localPageCount parses the PDF locally for a page count. The library
// panics on some malformed inputs, so the parse is fenced.
func localPageCount(data []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}
