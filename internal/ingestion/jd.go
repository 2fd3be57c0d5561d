// Package ingestion acquires job-description text, either passed directly or
// scraped from a job-posting URL. HTML pages are reduced to their main text;
// JavaScript-rendered pages can fall back to a headless browser.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds a job-posting fetch.
const DefaultTimeout = 30 * time.Second

// userAgent is sent with job-posting requests.
const userAgent = "Mozilla/5.0 (compatible; ResumeMatcher/1.0)"

// Options configures JD ingestion from a URL.
type Options struct {
	Timeout    time.Duration
	UseBrowser bool // force headless-browser rendering
	HTTPClient *http.Client
}

// FromText normalizes directly supplied JD text.
func FromText(text string) string {
	return cleanWhitespace(text)
}

// FromURL fetches a job posting and extracts its main text. When the static
// HTML yields too little text (a likely SPA) and browser use is allowed, the
// page is re-rendered in a headless browser.
func FromURL(ctx context.Context, jobURL string, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	html, err := fetchHTML(ctx, jobURL, opts)
	if err != nil {
		return "", err
	}

	text, err := extractMainText(html)
	if err != nil {
		return "", err
	}

	if opts.UseBrowser && shouldUseBrowser(text) {
		rendered, berr := renderWithBrowser(ctx, jobURL, opts.Timeout)
		if berr != nil {
			return "", fmt.Errorf("static fetch yielded no content and browser rendering failed: %w", berr)
		}
		text, err = extractMainText(rendered)
		if err != nil {
			return "", err
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no job description text found at %s", jobURL)
	}

	return text, nil
}

func fetchHTML(ctx context.Context, jobURL string, opts *Options) (string, error) {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", jobURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", jobURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: HTTP status %d", jobURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", jobURL, err)
	}

	return string(body), nil
}

// jobPostingSelectors are tried in order before falling back to <body>.
var jobPostingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"main",
	"article",
	".content",
	"#content",
}

// extractMainText parses HTML and returns the main body text with noise
// elements removed.
func extractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .sidebar, .cookie-banner, .popup").Remove()

	var mainContent *goquery.Selection
	for _, selector := range jobPostingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return cleanWhitespace(mainContent.Text()), nil
}

// cleanWhitespace trims each line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
