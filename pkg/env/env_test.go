package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "PIPECHECK_LOG_LEVEL=debug\n# comment\nexport PIPECHECK_ALLOWED_ORIGINS=\"https://app.example.com\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	_ = os.Unsetenv("PIPECHECK_LOG_LEVEL")
	_ = os.Unsetenv("PIPECHECK_ALLOWED_ORIGINS")
	if err := LoadFromDir(dir); err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if got := os.Getenv("PIPECHECK_LOG_LEVEL"); got != "debug" {
		t.Fatalf("expected PIPECHECK_LOG_LEVEL=debug, got %q", got)
	}
	if got := os.Getenv("PIPECHECK_ALLOWED_ORIGINS"); got != "https://app.example.com" {
		t.Fatalf("expected quoted value stripped, got %q", got)
	}
}

func TestLoadDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PIPECHECK_LISTEN_ADDR=:9999\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("PIPECHECK_LISTEN_ADDR", ":8000")
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("PIPECHECK_LISTEN_ADDR"); got != ":8000" {
		t.Fatalf("expected existing value preserved, got %q", got)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
}

func TestParseLine(t *testing.T) {
	cases := []struct {
		line     string
		key, val string
		ok       bool
	}{
		{"FOO=bar", "FOO", "bar", true},
		{"export FOO='bar'", "FOO", "bar", true},
		{"# FOO=bar", "", "", false},
		{"", "", "", false},
		{"no-equals", "", "", false},
		{"=value", "", "", false},
	}
	for _, tc := range cases {
		key, val, ok := parseLine(tc.line)
		if key != tc.key || val != tc.val || ok != tc.ok {
			t.Fatalf("parseLine(%q) = %q, %q, %v", tc.line, key, val, ok)
		}
	}
}
