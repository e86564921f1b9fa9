package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// ClientConfig configures the planner CLI.
type ClientConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	APIURL   string `envconfig:"PLANNER_API_URL" default:"http://localhost:8080"`
	StateDir string `envconfig:"PLANNER_STATE_DIR" default:""`
	// StateKey, when set, must be 16, 24 or 32 bytes; the cached bearer
	// token is then encrypted at rest.
	StateKey string `envconfig:"PLANNER_STATE_KEY" default:""`
}

// LoadClient reads the planner configuration from environment variables.
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".content-dashboard")
	}

	if n := len(cfg.StateKey); n != 0 && n != 16 && n != 24 && n != 32 {
		return nil, fmt.Errorf("PLANNER_STATE_KEY must be 16, 24, or 32 bytes (got %d)", n)
	}

	return &cfg, nil
}
