package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText_NormalizesWhitespace(t *testing.T) {
	got := FromText("  Senior Engineer  \n\n   Remote   \n")
	assert.Equal(t, "Senior Engineer\nRemote", got)
}

func TestFromText_Empty(t *testing.T) {
	assert.Empty(t, FromText("   \n\n  "))
}

func TestExtractMainText_PrefersJobDescriptionSelector(t *testing.T) {
	html := `
		<html><body>
			<nav>Home | Jobs | About</nav>
			<div class="job-description">
				We are hiring a Go engineer.
				Requirements: 3+ years of experience.
			</div>
			<footer>Copyright</footer>
		</body></html>`

	text, err := extractMainText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Go engineer")
	assert.Contains(t, text, "3+ years of experience")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "Home | Jobs")
}

func TestExtractMainText_RemovesNoiseElements(t *testing.T) {
	html := `
		<html><body>
			<script>var x = 1;</script>
			<style>.a { color: red }</style>
			<div class="sidebar">Related jobs</div>
			<main>Backend role in Berlin.</main>
		</body></html>`

	text, err := extractMainText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend role in Berlin.")
	assert.NotContains(t, text, "var x")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Related jobs")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := extractMainText(`<html><body><p>Plain posting text.</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
}

func TestFromURL_FetchesAndExtracts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><article>Platform engineer wanted.</article></body></html>`))
	}))
	defer server.Close()

	text, err := FromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Platform engineer wanted.", text)
}

func TestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := FromURL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFromURL_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body></body></html>`))
	}))
	defer server.Close()

	_, err := FromURL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no job description text")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, shouldUseBrowser(""))
	assert.True(t, shouldUseBrowser("short"))
	assert.False(t, shouldUseBrowser(strings.Repeat("job description content ", 30)))
}
