// Package extraction turns a remote PDF resume into plain text. It fetches
// the document over HTTP and extracts per-page text. Retry policy belongs to
// callers; this layer only enforces a per-request timeout.
package extraction

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single document fetch so one unreachable host
// cannot stall a whole ranking batch.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for document requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeMatcher/1.0)"

// Extractor fetches and extracts PDF resumes. Safe for concurrent use.
type Extractor struct {
	client    *http.Client
	userAgent string
	logger    zerolog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTimeout overrides the fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.client.Timeout = d
	}
}

// WithHTTPClient replaces the HTTP client (used by tests).
func WithHTTPClient(c *http.Client) Option {
	return func(e *Extractor) {
		e.client = c
	}
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Extractor) {
		e.logger = l
	}
}

// New creates an Extractor with a 30s timeout by default.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractFromURL downloads a PDF and returns its text, pages joined by
// newlines. Returns *FetchError when the resource is unreachable or the
// server answers with a non-2xx status, and *EmptyDocumentError when the
// extracted text is empty or whitespace-only.
func (e *Extractor) ExtractFromURL(ctx context.Context, resumeURL string) (string, error) {
	data, err := e.fetch(ctx, resumeURL)
	if err != nil {
		return "", err
	}

	text, err := pdfText(data)
	if err != nil {
		return "", &ParseError{URL: resumeURL, Cause: err}
	}

	if strings.TrimSpace(text) == "" {
		return "", &EmptyDocumentError{URL: resumeURL}
	}

	e.logger.Debug().
		Str("url", resumeURL).
		Int("bytes", len(data)).
		Int("chars", len(text)).
		Msg("extracted resume text")

	return text, nil
}

// fetch downloads the raw document bytes.
func (e *Extractor) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &FetchError{URL: rawURL, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Cause: err}
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Cause: err}
	}

	return data, nil
}
