package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlauter.dev/pkg/umlauter/internal/adapter"
	adaptermocks "umlauter.dev/pkg/umlauter/internal/adapter/mocks"
	m "umlauter.dev/pkg/umlauter/internal/model"
)

func TestRenamer_RenameToASCII(t *testing.T) {
	t.Run("renames file with umlauts", func(t *testing.T) {
		root := t.TempDir()
		oldPath := filepath.Join(root, "Käfer.mp3")
		writeFile(t, oldPath, "audio")

		renamer := NewRenamer(adapter.NewLocalSourceFSAdapter())

		got, err := renamer.RenameToASCII(m.Path(oldPath))
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(root, "Kafer.mp3")), got)
		assert.NoFileExists(t, oldPath)
		assert.FileExists(t, string(got))
	})

	t.Run("renames directory and only its last component", func(t *testing.T) {
		root := t.TempDir()
		parent := filepath.Join(root, "Äpfel")
		mustMkdirAll(t, filepath.Join(parent, "Öl"))

		renamer := NewRenamer(adapter.NewLocalSourceFSAdapter())

		got, err := renamer.RenameToASCII(m.Path(filepath.Join(parent, "Öl")))
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(parent, "Ol")), got)
		assert.DirExists(t, string(got))
		assert.DirExists(t, parent, "parent keeps its name")
	})

	t.Run("trailing separator is accepted", func(t *testing.T) {
		root := t.TempDir()
		mustMkdirAll(t, filepath.Join(root, "Bär"))

		renamer := NewRenamer(adapter.NewLocalSourceFSAdapter())

		got, err := renamer.RenameToASCII(m.Path(filepath.Join(root, "Bär") + string(filepath.Separator)))
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(root, "Bar")), got)
	})

	t.Run("unchanged name touches nothing", func(t *testing.T) {
		fsMock := adaptermocks.NewMockSourceFSAdapter(t)
		renamer := NewRenamer(fsMock)

		got, err := renamer.RenameToASCII("/music/Müller/Song.mp3")
		require.NoError(t, err)
		assert.Equal(t, m.Path("/music/Müller/Song.mp3"), got)
		fsMock.AssertNotCalled(t, "Rename")
	})

	t.Run("invalid names", func(t *testing.T) {
		fsMock := adaptermocks.NewMockSourceFSAdapter(t)
		renamer := NewRenamer(fsMock)

		for _, path := range []m.Path{"", ".", "..", "/", "music/.."} {
			_, err := renamer.RenameToASCII(path)
			assert.ErrorIs(t, err, ErrInvalidPath, "path %q", path)
		}
	})

	t.Run("rename failure names both paths", func(t *testing.T) {
		cause := errors.New("permission denied")

		fsMock := adaptermocks.NewMockSourceFSAdapter(t)
		fsMock.EXPECT().JoinPath("/music", "Madchen").Return(m.Path("/music/Madchen"))
		fsMock.EXPECT().Rename(m.Path("/music/Mädchen"), m.Path("/music/Madchen")).Return(cause)

		renamer := NewRenamer(fsMock)

		_, err := renamer.RenameToASCII("/music/Mädchen")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRename)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "/music/Mädchen")
		assert.Contains(t, err.Error(), "Madchen")
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}
