package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!doctype html>
<html>
<head>
<title>Fallback Title</title>
<meta property="og:title" content="Ten Go Tips">
<meta property="og:description" content="Short tricks for faster Go.">
</head>
<body><h1>Heading</h1></body>
</html>`

func servePage(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchPrefersOpenGraph(t *testing.T) {
	srv := servePage(t, samplePage)

	page, err := Fetch(context.Background(), srv.URL, "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "Ten Go Tips", page.Title)
	assert.Equal(t, "Short tricks for faster Go.", page.Description)
}

func TestFetchFallsBackToTitleTag(t *testing.T) {
	srv := servePage(t, `<html><head><title>Only Title</title></head><body></body></html>`)

	page, err := Fetch(context.Background(), srv.URL, "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "Only Title", page.Title)
	assert.Empty(t, page.Description)
}

func TestFetchRejectsBadScheme(t *testing.T) {
	_, err := Fetch(context.Background(), "ftp://example.com/thing", "test-agent")
	assert.Error(t, err)
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := Fetch(context.Background(), srv.URL, "test-agent")
	assert.Error(t, err)
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	t.Cleanup(func() {
		close(blocked)
		srv.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Fetch(ctx, srv.URL, "test-agent")
	assert.Error(t, err)
}

func TestPromptText(t *testing.T) {
	p := &PageContext{Title: "Ten Go Tips", Description: "Short tricks."}
	assert.Equal(t, "Page title: Ten Go Tips\nPage description: Short tricks.", p.PromptText())

	empty := &PageContext{}
	assert.Empty(t, empty.PromptText())
}
