package config

import (
	"strings"
	"testing"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := loadWith(envLookup(map[string]string{
		"CERTPATH_GENAI_API_KEY": "test-key",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.GenAI.Model != "gemini-2.0-flash" {
		t.Errorf("GenAI.Model = %q, want %q", cfg.GenAI.Model, "gemini-2.0-flash")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Session.Secret != "" {
		t.Errorf("Session.Secret = %q, want empty by default", cfg.Session.Secret)
	}
	if cfg.Storage.DataDir == "" {
		t.Error("Storage.DataDir should have a default")
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := loadWith(envLookup(map[string]string{
		"CERTPATH_GENAI_API_KEY":  "test-key",
		"CERTPATH_SERVER_PORT":    "8080",
		"CERTPATH_GENAI_MODEL":    "gemini-2.5-flash",
		"CERTPATH_SESSION_SECRET": "hunter2",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.GenAI.Model != "gemini-2.5-flash" {
		t.Errorf("GenAI.Model = %q, want override", cfg.GenAI.Model)
	}
	if cfg.Session.Secret != "hunter2" {
		t.Errorf("Session.Secret = %q, want override", cfg.Session.Secret)
	}
}

func TestMissingAPIKey(t *testing.T) {
	_, err := loadWith(envLookup(nil))
	if err == nil {
		t.Fatal("expected error for missing API key, got nil")
	}
	if !strings.Contains(err.Error(), "missing required config") {
		t.Errorf("error = %q, want it to mention the missing key", err)
	}
}

func TestInvalidPort(t *testing.T) {
	_, err := loadWith(envLookup(map[string]string{
		"CERTPATH_GENAI_API_KEY": "test-key",
		"CERTPATH_SERVER_PORT":   "not-a-port",
	}))
	if err == nil {
		t.Fatal("expected error for invalid port, got nil")
	}
}

func TestShowAll_HidesSecrets(t *testing.T) {
	cfg, err := loadWith(envLookup(map[string]string{
		"CERTPATH_GENAI_API_KEY":  "test-key",
		"CERTPATH_SESSION_SECRET": "hunter2",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, info := range ShowAll(cfg) {
		if info.Key == "genai.api_key" || info.Key == "session.secret" {
			t.Errorf("secret key %q exposed by ShowAll", info.Key)
		}
		if info.Value == "test-key" || info.Value == "hunter2" {
			t.Errorf("secret value leaked under key %q", info.Key)
		}
	}
}
