// Package apiclient is the typed HTTP client for the content-dashboard API,
// used by the planner CLI. Content mutations in the local store do not go
// through it; it exists for the explicit pull/push and suggestion flows.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ahosmi/content-dashboard/pkg/model"
)

type Client struct {
	base  string
	token string
	http  *http.Client
}

func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{}
	}
	return &Client{base: baseURL, http: client}
}

// SetToken sets the bearer token attached to every request.
func (c *Client) SetToken(token string) { c.token = token }

// ListContent fetches every item, sorted by planned date ascending.
func (c *Client) ListContent(ctx context.Context) ([]model.Content, error) {
	var out []model.Content
	if err := c.do(ctx, "GET", "/api/content", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateContent(ctx context.Context, draft model.ContentDraft) (*model.Content, error) {
	var out model.Content
	if err := c.do(ctx, "POST", "/api/content", draft, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateContent(ctx context.Context, id string, patch model.ContentPatch) (*model.Content, error) {
	var out model.Content
	if err := c.do(ctx, "PUT", "/api/content/"+id, patch, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteContent(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/api/content/"+id, nil, http.StatusNoContent, nil)
}

func (c *Client) GenerateSuggestions(ctx context.Context, req model.SuggestionReq) ([]string, error) {
	var out model.SuggestionRes
	if err := c.do(ctx, "POST", "/api/ai/suggestions", req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
