package authclient

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ahosmi/content-dashboard/pkg"
)

// State is the persisted auth slice: identity and flag only, written whole
// on every change, independently of the content snapshot.
type State struct {
	User            *Identity `json:"user"`
	Token           string    `json:"token,omitempty"`
	IsAuthenticated bool      `json:"isAuthenticated"`
}

type StatePersister interface {
	Persist(State) error
	Load() State
}

const AuthStorageKey = "auth-storage"

// FileStatePersister keeps the auth slice as JSON under the state directory.
// When a Crypto is supplied the bearer token is sealed before it is written.
type FileStatePersister struct {
	path   string
	crypto *pkg.Crypto
}

func NewFileStatePersister(stateDir string, crypto *pkg.Crypto) (*FileStatePersister, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStatePersister{
		path:   filepath.Join(stateDir, AuthStorageKey+".json"),
		crypto: crypto,
	}, nil
}

func (p *FileStatePersister) Persist(st State) error {
	if p.crypto != nil && st.Token != "" {
		sealed, err := p.crypto.Encrypt(st.Token)
		if err != nil {
			return fmt.Errorf("seal token: %w", err)
		}
		st.Token = sealed
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode auth state: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write auth state: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("replace auth state: %w", err)
	}
	return nil
}

// Load restores the last auth slice. Missing or unreadable state, including
// a token sealed with a different key, yields a signed-out state.
func (p *FileStatePersister) Load() State {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return State{}
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}
	}

	if p.crypto != nil && st.Token != "" {
		plain, err := p.crypto.Decrypt(st.Token)
		if err != nil {
			return State{}
		}
		st.Token = plain
	}
	return st
}
