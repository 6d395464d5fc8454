package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iangfernandes96/combiner/internal/ir"
)

var envKeys = []string{
	"COMBINER_MAX_BYTES",
	"COMBINER_PAD",
	"COMBINER_FILTER",
	"COMBINER_JPEG_QUALITY",
	"COMBINER_LOG_DIR",
	"COMBINER_VERBOSE",
}

// clearEnv unsets every COMBINER_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Config{
		MaxBytes:    ir.DefaultCapacity,
		Pad:         "tail",
		Filter:      "bilinear",
		JPEGQuality: 90,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "combiner.env")
	content := "COMBINER_MAX_BYTES=0\nCOMBINER_PAD=alpha\nCOMBINER_JPEG_QUALITY=70\nCOMBINER_VERBOSE=true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxBytes != 0 || cfg.Pad != "alpha" || cfg.JPEGQuality != 70 || !cfg.Verbose {
		t.Errorf("env file not applied: %+v", cfg)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMBINER_FILTER", "catmull-rom")

	path := filepath.Join(t.TempDir(), "combiner.env")
	if err := os.WriteFile(path, []byte("COMBINER_FILTER=approx-bilinear\n"), 0644); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Filter != "catmull-rom" {
		t.Errorf("filter = %q, expected environment value", cfg.Filter)
	}
}

func TestInvalidValuesFallBackOrFail(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMBINER_MAX_BYTES", "lots")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxBytes != ir.DefaultCapacity {
		t.Errorf("unparsable int should fall back to default, got %d", cfg.MaxBytes)
	}

	t.Setenv("COMBINER_PAD", "zeros")
	if _, err := Load(""); err == nil {
		t.Error("expected error for unknown pad mode")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{Pad: "tail", Filter: "bilinear", JPEGQuality: 90}, true},
		{"negative max", Config{MaxBytes: -1, Pad: "tail", Filter: "bilinear", JPEGQuality: 90}, false},
		{"nearest filter", Config{Pad: "tail", Filter: "nearest", JPEGQuality: 90}, false},
		{"quality zero", Config{Pad: "tail", Filter: "bilinear", JPEGQuality: 0}, false},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v, expected ok=%v", tt.name, err, tt.ok)
		}
	}
}
