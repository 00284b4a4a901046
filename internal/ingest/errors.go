package ingest

import "fmt"

// DownloadError reports a failed PDF fetch from a user-supplied URL.
// Surfaces as HTTP 400 since the caller's URL is the problem, not the
// service.
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to download PDF from URL: %d", e.StatusCode)
	}
	return fmt.Sprintf("failed to download PDF from %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// InvalidPDFError reports upload bytes that are not a PDF. Caught before
// any vendor call is spent.
type InvalidPDFError struct {
	Reason string
}

func (e *InvalidPDFError) Error() string {
	return "invalid PDF document: " + e.Reason
}
