package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ahosmi/content-dashboard/pkg/model"
)

// HTTPAuthenticator exchanges credentials with the backend auth endpoints.
type HTTPAuthenticator struct {
	base string
	http *http.Client
}

func NewHTTPAuthenticator(baseURL string, client *http.Client) *HTTPAuthenticator {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPAuthenticator{base: baseURL, http: client}
}

func (a *HTTPAuthenticator) Login(ctx context.Context, email, password string) (*Identity, string, error) {
	body, _ := json.Marshal(model.LoginReq{Email: email, Password: password})

	resp, err := a.post(ctx, "/api/auth/login", body)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// bad credentials are a negative result, not an error
		return nil, "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("login: unexpected status %d", resp.StatusCode)
	}

	var res model.LoginRes
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, "", fmt.Errorf("login: decode response: %w", err)
	}

	return &Identity{Username: res.User.Username, Email: res.User.Email}, res.Token, nil
}

// Register creates the account and then logs in with the same credentials to
// establish the session.
func (a *HTTPAuthenticator) Register(ctx context.Context, name, email, password string) (*Identity, string, error) {
	body, _ := json.Marshal(model.RegisterReq{Username: name, Email: email, Password: password})

	resp, err := a.post(ctx, "/api/auth/register", body)
	if err != nil {
		return nil, "", err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, "", nil
	}

	return a.Login(ctx, email, password)
}

func (a *HTTPAuthenticator) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", a.base+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return a.http.Do(req)
}
