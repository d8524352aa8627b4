package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Server  ServerConfig
	GenAI   GenAIConfig
	Session SessionConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type GenAIConfig struct {
	APIKey string
	Model  string
}

type SessionConfig struct {
	// Secret signs session cookies. Optional: an empty secret only
	// weakens session confidentiality and is reported as a warning at
	// startup, not a failure.
	Secret string
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 5000,
		},
		GenAI: GenAIConfig{
			Model: "gemini-2.0-flash",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".certpath"
	}
	return filepath.Join(home, ".local", "share", "certpath")
}

// Load reads configuration from environment variables (CERTPATH_*) over
// built-in defaults. The Gemini API key is the one required value: without
// it the process refuses to start.
func Load() (Config, error) {
	return loadWith(os.LookupEnv)
}

func loadWith(lookup func(string) (string, bool)) (Config, error) {
	cfg := defaults()

	for _, s := range specs {
		raw, ok := lookup(s.env)
		if !ok || raw == "" {
			continue
		}
		switch s.typ {
		case kString:
			s.apply(&cfg, raw)
		case kInt:
			i, err := strconv.Atoi(raw)
			if err != nil {
				return Config{}, fmt.Errorf("invalid integer value for %s: %w", s.env, err)
			}
			s.apply(&cfg, i)
		}
	}

	if cfg.GenAI.APIKey == "" {
		return Config{}, fmt.Errorf("missing required config: Gemini API key. " +
			"Set it via environment variable CERTPATH_GENAI_API_KEY")
	}

	return cfg, nil
}
