package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/dials/corenote/internal/constants"
	"github.com/dials/corenote/internal/keyring"
	"github.com/dials/corenote/internal/logger"
)

// TokenLookup resolves a token that is neither in the config file nor in the environment.
type TokenLookup func(service constants.KeyringService) (string, error)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file is path, else CORENOTE_CONFIG, else ./corenote.yaml when it exists.
// Tokens missing from both are looked up in the OS keyring.
func Load(path string) (*Config, error) {
	return LoadWithTokens(path, keyring.GetToken)
}

// LoadWithTokens is Load with a custom fallback for missing tokens.
func LoadWithTokens(path string, lookup TokenLookup) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}

	cfg.resolveTokens(lookup)

	cfg.ConfigDir = expandHome(cfg.ConfigDir)
	cfg.SnapshotPath = expandHome(cfg.SnapshotPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return cfg, nil
}

// LoadOffline reads the configuration without requiring tokens, for commands that make no API calls.
func LoadOffline(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	cfg.ConfigDir = expandHome(cfg.ConfigDir)
	cfg.SnapshotPath = expandHome(cfg.SnapshotPath)

	if err := cfg.Meeting.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: meeting: %w", err)
	}
	return cfg, nil
}

func read(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv(constants.ConfigPathEnv)
		explicitPath = path != ""
	}
	if !explicitPath {
		path = constants.DefaultConfigFile
	}
	path = expandHome(path)

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}

func (c *Config) resolveTokens(lookup TokenLookup) {
	if lookup == nil {
		return
	}

	fill := func(token *string, service constants.KeyringService) {
		if *token != "" {
			return
		}
		value, err := lookup(service)
		if err != nil {
			// a missing entry or unavailable keyring leaves the token empty for Validate to report
			if !errors.Is(err, keyring.ErrNotFound) {
				logger.Warn("Keyring lookup failed", "service", service, "error", err)
			}
			return
		}
		*token = value
	}

	fill(&c.HackMD.Token, constants.KeyringHackMD)
	fill(&c.GitHub.Token, constants.KeyringGitHub)
}

// Dir returns the expanded application directory, CORENOTE_CONFIG_DIR or the default.
// It is available before the configuration file is read, for setting up logging.
func Dir() string {
	if dir := os.Getenv("CORENOTE_CONFIG_DIR"); dir != "" {
		return expandHome(dir)
	}
	return expandHome(constants.DefaultConfigDir)
}

// Help returns the environment variable reference rendered by cleanenv.
func Help() string {
	var cfg Config
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&cfg, &header)
	if err != nil {
		return ""
	}
	return text
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
