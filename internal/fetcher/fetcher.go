package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PageContext is the scraped summary of a reference page, folded into the
// suggestion prompt when the caller supplies a URL.
type PageContext struct {
	Title       string
	Description string
	URL         string
}

// Fetch downloads a reference page and pulls its title and description.
// The request is bound to ctx and capped at 15 seconds so a slow page
// cannot stall the caller.
func Fetch(ctx context.Context, rawURL, userAgent string) (*PageContext, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme: %s", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	res := &PageContext{URL: rawURL}

	// Prefer OpenGraph metadata, fall back to document title / h1.
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		res.Title = strings.TrimSpace(og)
	}
	if res.Title == "" {
		res.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if res.Title == "" {
		res.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	if og, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		res.Description = strings.TrimSpace(og)
	}
	if res.Description == "" {
		if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			res.Description = strings.TrimSpace(desc)
		}
	}

	return res, nil
}

// PromptText renders the scraped context as a block for the model prompt.
func (p *PageContext) PromptText() string {
	var b strings.Builder
	if p.Title != "" {
		fmt.Fprintf(&b, "Page title: %s\n", p.Title)
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "Page description: %s\n", p.Description)
	}
	return strings.TrimSpace(b.String())
}
