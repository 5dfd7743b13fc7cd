// Package testutil builds documentation trees on disk and asserts on the files
// generated from them.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// dirPermissions is the permission mode for fixture folders.
	dirPermissions = 0o750

	// filePermissions is the permission mode for fixture files.
	filePermissions = 0o600
)

// WriteTree creates files beneath root. Keys are slash-separated paths; a key
// ending in "/" creates an empty folder.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(full, dirPermissions))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), dirPermissions))
		require.NoError(t, os.WriteFile(full, []byte(content), filePermissions))
	}
}

// NewDocsTree writes files into a fresh temporary docs root and returns it.
func NewDocsTree(t testing.TB, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	WriteTree(t, root, files)
	return root
}

// FileAssertions checks files beneath a base folder.
type FileAssertions struct {
	t       testing.TB
	baseDir string
}

// NewFileAssertions creates a new file assertions helper.
func NewFileAssertions(t testing.TB, baseDir string) *FileAssertions {
	return &FileAssertions{t: t, baseDir: baseDir}
}

// Read returns the content of a file, failing the test when it is unreadable.
func (fa *FileAssertions) Read(relativePath string) string {
	fa.t.Helper()
	data, err := os.ReadFile(fa.path(relativePath))
	require.NoError(fa.t, err)
	return string(data)
}

func (fa *FileAssertions) AssertFileExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	assert.FileExists(fa.t, fa.path(relativePath))
	return fa
}

func (fa *FileAssertions) AssertFileNotExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	assert.NoFileExists(fa.t, fa.path(relativePath))
	return fa
}

func (fa *FileAssertions) AssertFileContains(relativePath, expected string) *FileAssertions {
	fa.t.Helper()
	assert.Contains(fa.t, fa.Read(relativePath), expected, relativePath)
	return fa
}

func (fa *FileAssertions) AssertFileEquals(relativePath, expected string) *FileAssertions {
	fa.t.Helper()
	assert.Equal(fa.t, expected, fa.Read(relativePath), relativePath)
	return fa
}

func (fa *FileAssertions) path(relativePath string) string {
	return filepath.Join(fa.baseDir, filepath.FromSlash(relativePath))
}
