package extraction

import "fmt"

// FetchError indicates the resume resource could not be retrieved: the host
// was unreachable, the request timed out, or the server returned a
// non-success status.
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed for %s: HTTP status %d", e.URL, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("fetch failed for %s", e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// EmptyDocumentError indicates the document was fetched and parsed but
// yielded no extractable text.
type EmptyDocumentError struct {
	URL string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("no extractable text in document %s", e.URL)
}

// ParseError indicates the fetched bytes could not be read as a PDF.
type ParseError struct {
	URL   string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse document %s: %v", e.URL, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
