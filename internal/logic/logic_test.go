package logic

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/toxicbishop/Crypt-Vault/internal/config"
)

func TestResolveFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	listPath := filepath.Join(dir, "batch.jsonc")

	const doc = `[
  "b.txt", // already given on the command line
  "c.txt",
]`

	if err := os.WriteFile(listPath, []byte(doc), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg := &config.Config{
		Files:     []string{"a.txt", "b.txt"},
		FilesFrom: listPath,
	}

	if err := resolveFiles(cfg); err != nil {
		t.Fatalf("resolveFiles: %v", err)
	}

	want := []string{"a.txt", "b.txt", "c.txt"}
	if !reflect.DeepEqual(cfg.Files, want) {
		t.Errorf("resolveFiles merged to %v, want %v", cfg.Files, want)
	}
}

func TestResolveFilesEmpty(t *testing.T) {
	t.Parallel()

	if err := resolveFiles(&config.Config{}); err == nil {
		t.Error("resolveFiles accepted an empty file set")
	}
}
