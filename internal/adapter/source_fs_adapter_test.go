package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "umlauter.dev/pkg/umlauter/internal/model"
)

func TestLocalSourceFSAdapter_ReadDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "Käfer.mp3"), "audio")
	mustMkdir(t, filepath.Join(root, "Mädchen"))

	entries, err := adapter.ReadDir(m.Path(root))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("ReadDir() returned %d entries, want 2", len(entries))
	}

	kinds := map[string]bool{}
	for _, entry := range entries {
		kinds[entry.Name()] = entry.IsDir()
	}

	if !kinds["Mädchen"] {
		t.Fatalf("ReadDir() did not report Mädchen as directory")
	}

	if kinds["Käfer.mp3"] {
		t.Fatalf("ReadDir() reported Käfer.mp3 as directory")
	}

	t.Run("missing directory fails", func(t *testing.T) {
		if _, err := adapter.ReadDir(m.Path(filepath.Join(root, "missing"))); err == nil {
			t.Fatalf("ReadDir() expected error for missing directory")
		}
	})
}

func TestLocalSourceFSAdapter_Rename(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	oldPath := filepath.Join(root, "Öl.txt")
	newPath := filepath.Join(root, "Ol.txt")
	writeTestFile(t, oldPath, "x")

	if err := adapter.Rename(m.Path(oldPath), m.Path(newPath)); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Fatalf("Rename() left old path behind: %v", err)
	}

	if _, err := os.Stat(newPath); err != nil {
		t.Fatalf("Rename() new path missing: %v", err)
	}
}

func TestLocalSourceFSAdapter_FileInfoAndJoin(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()

	info, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !info.IsDir() {
		t.Fatalf("FileInfo() IsDir = false for %s", root)
	}

	joined := adapter.JoinPath(root, "sub", "file.flac")
	if string(joined) != filepath.Join(root, "sub", "file.flac") {
		t.Fatalf("JoinPath() = %s", joined)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
