package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Engine is the OCR collaborator: raw document bytes in, ordered pages
// out. Single-shot; retry policy belongs to the caller.
type Engine interface {
	Process(ctx context.Context, data []byte, filename string) (*Response, error)
}

// Response is the vendor OCR result.
type Response struct {
	Pages []Page `json:"pages"`
	Model string `json:"model,omitempty"`
}

// Page is one OCR'd page: vendor-assigned 0-based index, extracted
// markdown, and any embedded images referenced from the markdown.
type Page struct {
	Index    int     `json:"index"`
	Markdown string  `json:"markdown"`
	Images   []Image `json:"images,omitempty"`
}

// Image is an extracted page image with its base64-encoded data.
type Image struct {
	ID          string `json:"id"`
	ImageBase64 string `json:"image_base64"`
}

// Client calls the Mistral OCR API. Processing is a three-step flow:
// upload the file, fetch a signed URL for it, then run OCR on that URL
// with image extraction enabled.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Model returns the configured OCR model name.
func (c *Client) Model() string {
	return c.model
}

// Process uploads the document and runs OCR on it.
func (c *Client) Process(ctx context.Context, data []byte, filename string) (*Response, error) {
	fileID, err := c.upload(ctx, data, filename)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	signedURL, err := c.signedURL(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("signed url: %w", err)
	}

	resp, err := c.runOCR(ctx, signedURL)
	if err != nil {
		return nil, fmt.Errorf("run ocr: %w", err)
	}
	return resp, nil
}

func (c *Client) upload(ctx context.Context, data []byte, filename string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("purpose", "ocr"); err != nil {
		return "", fmt.Errorf("write purpose field: %w", err)
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return "", fmt.Errorf("write file data: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/files", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	respBody, err := c.do(httpReq)
	if err != nil {
		return "", err
	}

	var uploaded struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &uploaded); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if uploaded.ID == "" {
		return "", fmt.Errorf("upload response missing file id")
	}
	return uploaded.ID, nil
}

func (c *Client) signedURL(ctx context.Context, fileID string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/files/"+fileID+"/url?expiry=1", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	respBody, err := c.do(httpReq)
	if err != nil {
		return "", err
	}

	var signed struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(respBody, &signed); err != nil {
		return "", fmt.Errorf("decode signed url response: %w", err)
	}
	if signed.URL == "" {
		return "", fmt.Errorf("signed url response missing url")
	}
	return signed.URL, nil
}

type ocrDocument struct {
	Type        string `json:"type"`
	DocumentURL string `json:"document_url"`
}

type ocrRequest struct {
	Model              string      `json:"model"`
	Document           ocrDocument `json:"document"`
	IncludeImageBase64 bool        `json:"include_image_base64"`
}

func (c *Client) runOCR(ctx context.Context, documentURL string) (*Response, error) {
	reqBody := ocrRequest{
		Model: c.model,
		Document: ocrDocument{
			Type:        "document_url",
			DocumentURL: documentURL,
		},
		IncludeImageBase64: true,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/ocr", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	respBody, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decode ocr response: %w", err)
	}
	return &resp, nil
}

// do executes a request and classifies vendor failures: 429 and 5xx are
// retryable, everything else non-2xx is terminal.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocr api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 256<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ocr api status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}
	return respBody, nil
}

// RetryableError indicates a transient vendor failure worth retrying.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
