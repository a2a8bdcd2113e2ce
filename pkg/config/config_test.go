package config

import (
	"os"
	"path/filepath"
	"testing"
)

// lookupFrom returns a lookup function backed by a map
func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv(empty) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("FromEnv(empty) = %+v, want %+v", cfg, Default())
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		EnvMap:        " maps/forest.json ",
		EnvMoveTokens: "4",
		EnvTracing:    "true",
		EnvLogLevel:   "debug",
		EnvLogFormat:  "json",
	}))
	if err != nil {
		t.Fatalf("FromEnv error = %v", err)
	}
	if cfg.MapPath != "maps/forest.json" {
		t.Errorf("MapPath = %q, want %q", cfg.MapPath, "maps/forest.json")
	}
	if cfg.MoveTokens != 4 {
		t.Errorf("MoveTokens = %d, want 4", cfg.MoveTokens)
	}
	if !cfg.Tracing {
		t.Error("Tracing = false, want true")
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("log settings = %q/%q, want debug/json", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestFromEnv_Malformed(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"tokens not a number", map[string]string{EnvMoveTokens: "lots"}},
		{"negative tokens", map[string]string{EnvMoveTokens: "-2"}},
		{"tracing not a bool", map[string]string{EnvTracing: "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(lookupFrom(tt.env)); err == nil {
				t.Error("FromEnv error = nil, want error")
			}
		})
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvMoveTokens+"=7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv(EnvMoveTokens)
	t.Cleanup(func() { os.Unsetenv(EnvMoveTokens) })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.MoveTokens != 7 {
		t.Errorf("MoveTokens = %d, want 7 from env file", cfg.MoveTokens)
	}
}
