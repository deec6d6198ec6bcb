package tscheck

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindComponentFilesSkipsNodeModulesAndHidden(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "App.vue"), "")
	mustWrite(t, filepath.Join(root, "node_modules", "dep", "Ignored.vue"), "")
	mustWrite(t, filepath.Join(root, ".hidden", "Ignored.vue"), "")
	mustWrite(t, filepath.Join(root, "src", "Button.vue"), "")
	mustWrite(t, filepath.Join(root, "src", "notes.txt"), "")

	files, err := findComponentFiles(root, []string{".vue"})
	if err != nil {
		t.Fatalf("findComponentFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
