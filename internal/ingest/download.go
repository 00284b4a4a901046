package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

const defaultFilename = "document.pdf"

// Downloader fetches PDFs from user-supplied URLs.
type Downloader struct {
	httpClient *http.Client
	maxBytes   int64
}

func NewDownloader(timeout time.Duration, maxBytes int64) *Downloader {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Downloader{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxBytes: maxBytes,
	}
}

// Fetch downloads a PDF and derives a display filename from the URL path.
// Any failure, from a bad URL to an oversized body, is a DownloadError.
func (d *Downloader) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, "", &DownloadError{URL: rawURL, Err: fmt.Errorf("unsupported or malformed URL")}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", &DownloadError{URL: rawURL, Err: err}
	}

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, "", &DownloadError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &DownloadError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBytes+1))
	if err != nil {
		return nil, "", &DownloadError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(data)) > d.maxBytes {
		return nil, "", &DownloadError{URL: rawURL, Err: fmt.Errorf("document exceeds max size (%d bytes)", d.maxBytes)}
	}

	return data, filenameFromURL(u), nil
}

func filenameFromURL(u *url.URL) string {
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return defaultFilename
	}
	return name
}

// Close releases resources.
func (d *Downloader) Close() {
	d.httpClient.CloseIdleConnections()
}
