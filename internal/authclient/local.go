package authclient

import (
	"context"
	"strings"
	"time"
)

// LocalAuthenticator validates credentials without a backend: any email with
// a password of at least six characters is accepted. It simulates network
// latency so flows behave like the real thing. Useful for demos and tests;
// the backend routes are the authoritative path.
type LocalAuthenticator struct {
	Delay time.Duration
}

func (a *LocalAuthenticator) Login(ctx context.Context, email, password string) (*Identity, string, error) {
	if err := a.wait(ctx); err != nil {
		return nil, "", err
	}
	if email == "" || len(password) < 6 {
		return nil, "", nil
	}
	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}
	return &Identity{Username: name, Email: email}, "", nil
}

func (a *LocalAuthenticator) Register(ctx context.Context, name, email, password string) (*Identity, string, error) {
	if err := a.wait(ctx); err != nil {
		return nil, "", err
	}
	if name == "" || email == "" || len(password) < 6 {
		return nil, "", nil
	}
	return &Identity{Username: name, Email: email}, "", nil
}

func (a *LocalAuthenticator) wait(ctx context.Context) error {
	if a.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(a.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
