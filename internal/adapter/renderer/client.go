package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/document"
)

var (
	ErrGeneration    = errors.New("document generation failed")
	ErrUnknownFormat = errors.New("unknown output format")
)

type Format string

const (
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatDocx, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Client dispatches a memo snapshot to the external rendering
// service, which owns docx/pdf construction. The call is
// fire-and-forget from the editor's perspective: the only thing the
// core needs back is the download path to navigate to.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type generateRequest struct {
	document.Document
	GeneratePDF bool `json:"generate_pdf"`
}

type generateResponse struct {
	DocxPath string `json:"docx_path"`
	PDFPath  string `json:"pdf_path"`
	Error    string `json:"error"`
}

// Generate validates the snapshot's dates, posts it to the rendering
// service and returns the download path for the requested format.
// Any transport failure or non-2xx response maps to ErrGeneration.
func (c *Client) Generate(ctx context.Context, d document.Document, format Format) (string, error) {
	for _, raw := range []string{d.Date, d.Activity.StartDate, d.Activity.EndDate} {
		if _, err := document.ParseDate(raw); err != nil {
			return "", err
		}
	}

	body, err := json.Marshal(generateRequest{
		Document:    d,
		GeneratePDF: format == FormatPDF,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "err", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: rendering service returned %d", ErrGeneration, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if out.DocxPath == "" && out.PDFPath == "" {
		return "", fmt.Errorf("%w: rendering service returned no file path", ErrGeneration)
	}

	c.logger.Info("document generated", "format", format, "docx_path", out.DocxPath, "pdf_path", out.PDFPath)
	return "/download/" + string(format), nil
}
