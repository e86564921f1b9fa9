package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ahosmi/content-dashboard/pkg/model"
)

// Snapshot is the persisted form of the whole store: collection, generation
// history and filter state, serialized as one document on every mutation.
type Snapshot struct {
	Contents          []model.Content       `json:"contents"`
	AIGenerations     []model.AIGeneration  `json:"aiGenerations"`
	SearchQuery       string                `json:"searchQuery"`
	SelectedPlatforms []model.Platform      `json:"selectedPlatforms"`
	SelectedStatuses  []model.ContentStatus `json:"selectedStatuses"`
}

// Persister saves a snapshot after each store mutation.
type Persister interface {
	Persist(Snapshot) error
}

// FilePersister writes snapshots as JSON under a state directory, one file
// per storage key. Writes go through a temp file and rename so a crash never
// leaves a half-written snapshot.
type FilePersister struct {
	path string
}

const ContentStorageKey = "content-storage"

func NewFilePersister(stateDir, key string) (*FilePersister, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FilePersister{path: filepath.Join(stateDir, key+".json")}, nil
}

func (p *FilePersister) Persist(snap Snapshot) error {
	return writeJSON(p.path, snap)
}

// Load reads the last snapshot. A missing or corrupt file yields an empty
// snapshot so the caller starts fresh.
func (p *FilePersister) Load() Snapshot {
	var snap Snapshot
	if err := readJSON(p.path, &snap); err != nil {
		return Snapshot{}
	}
	return snap
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return err
		}
		return fmt.Errorf("read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	return nil
}
