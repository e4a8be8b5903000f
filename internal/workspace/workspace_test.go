package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureAtCreatesLayout(t *testing.T) {
	base := filepath.Join(t.TempDir(), BaseDirName)

	got, err := EnsureAt(base)
	if err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}
	if got != base {
		t.Fatalf("expected base %s, got %s", base, got)
	}

	for _, dir := range []string{"configs", "corpus"} {
		info, err := os.Stat(filepath.Join(base, dir))
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %s to be a directory", dir)
		}
	}

	raw, err := os.ReadFile(ConfigPath(base))
	if err != nil {
		t.Fatalf("read seeded config: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("expected seeded config to have content")
	}
}

func TestEnsureAtKeepsExistingConfig(t *testing.T) {
	base := filepath.Join(t.TempDir(), BaseDirName)
	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("first ensure: %v", err)
	}

	custom := []byte("log_level: debug\n")
	if err := os.WriteFile(ConfigPath(base), custom, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	raw, err := os.ReadFile(ConfigPath(base))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(raw) != string(custom) {
		t.Fatal("expected existing config to survive ensure")
	}
}
