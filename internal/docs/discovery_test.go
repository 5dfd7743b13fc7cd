package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/autotoc/internal/foundation/errors"
	"git.home.luguber.info/inful/autotoc/internal/paths"
)

// makeTree creates files (names with an extension) and folders (names without).
func makeTree(t *testing.T, root string, items ...string) {
	t.Helper()
	for _, item := range items {
		full := filepath.Join(root, filepath.FromSlash(item))
		if filepath.Ext(item) == "" {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("content\n"), 0o644))
	}
}

func collected(c *Collection) []string {
	out := make([]string, 0, c.Len())
	for _, p := range c.Paths() {
		out = append(out, p.String())
	}
	return out
}

func TestCollect(t *testing.T) {
	rst := []string{".rst"}
	tests := []struct {
		name     string
		tree     []string
		exclude  []string
		suffixes []string
		expected []string
	}{
		{
			name:     "files and ancestors",
			tree:     []string{"root_file.rst", "dir1/file1.rst", "dir2/file3.rst"},
			suffixes: rst,
			expected: []string{"root_file.rst", "dir1", "dir1/file1.rst", "dir2", "dir2/file3.rst"},
		},
		{
			name:     "empty folder is pruned",
			tree:     []string{"dir1/file1.rst", "empty_directory"},
			suffixes: rst,
			expected: []string{"dir1", "dir1/file1.rst"},
		},
		{
			name:     "underscored folders are pruned at any depth",
			tree:     []string{"dir1/file1.rst", "_dir2/file2.rst", "dir1/_hidden_subdir/subfile.rst"},
			suffixes: rst,
			expected: []string{"dir1", "dir1/file1.rst"},
		},
		{
			name:     "underscored files are kept",
			tree:     []string{"_root_file.rst", "dir1/file1.rst", "dir2/_file2.rst"},
			suffixes: rst,
			expected: []string{"_root_file.rst", "dir1", "dir1/file1.rst", "dir2", "dir2/_file2.rst"},
		},
		{
			name: "exclusion patterns match folders and files at any depth",
			tree: []string{
				"shown_folder/visible_file.rst",
				"hidden_folder/file.rst",
				"mixed_folder/hidden_file.rst",
				"mixed_folder/visible_file.rst",
			},
			exclude:  []string{"*hidden*"},
			suffixes: rst,
			expected: []string{"mixed_folder", "mixed_folder/visible_file.rst", "shown_folder", "shown_folder/visible_file.rst"},
		},
		{
			name:     "unrecognized suffixes are invisible",
			tree:     []string{"rst/rst-file.rst", "txt/txt-file.txt"},
			suffixes: rst,
			expected: []string{"rst", "rst/rst-file.rst"},
		},
		{
			name:     "suffixes without a dot are accepted",
			tree:     []string{"a/one.md", "a/two.rst"},
			suffixes: []string{"md"},
			expected: []string{"a", "a/one.md"},
		},
		{
			name:     "root anchored pattern with double star",
			tree:     []string{"src/build/out.rst", "src/keep.rst", "build/x.rst"},
			exclude:  []string{"src/**/build"},
			suffixes: rst,
			expected: []string{"build", "build/x.rst", "src", "src/keep.rst"},
		},
		{
			name: "outputs of a previous run are not content",
			tree: []string{
				"autotoc.rst",
				"src/guide/autotoc.guide.rst",
				"src/guide/intro.rst",
				"src/stale/autotoc.stale.rst",
			},
			suffixes: rst,
			expected: []string{"src", "src/guide", "src/guide/intro.rst"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			makeTree(t, root, tt.tree...)

			c, err := Collect(root, Options{ExcludePatterns: tt.exclude, SourceSuffixes: tt.suffixes})
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, collected(c))
		})
	}
}

func TestCollect_AncestorsPrecedeContent(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a/b/c/deep.rst", "a/top.rst")

	c, err := Collect(root, Options{SourceSuffixes: []string{".rst"}})
	require.NoError(t, err)

	seen := map[paths.Rel]bool{}
	for _, p := range c.Paths() {
		for _, anc := range p.Ancestors() {
			assert.True(t, seen[anc], "%s listed before its folder %s", p, anc)
		}
		seen[p] = true
	}
	assert.True(t, c.IsDir("a/b"))
	assert.False(t, c.IsDir("a/top.rst"))
	assert.Equal(t, []paths.Rel{"a/b/c/deep.rst", "a/top.rst"}, c.Files())
}

func TestCollect_MissingRoot(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "doesnotexist"), Options{SourceSuffixes: []string{".rst"}})
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))
}

func TestCollect_EmptyRoot(t *testing.T) {
	_, err := Collect(t.TempDir(), Options{SourceSuffixes: []string{".rst"}})
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))
	assert.True(t, strings.Contains(err.Error(), "empty"))
}

func TestCollect_InvalidPattern(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a.rst")

	_, err := Collect(root, Options{ExcludePatterns: []string{"[unclosed"}, SourceSuffixes: []string{".rst"}})
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestMatcher(t *testing.T) {
	m, err := NewMatcher([]string{"*hidden*", "", "  ", "/drafts", "api/**/private.rst"})
	require.NoError(t, err)

	assert.True(t, m.Match("hidden_folder"))
	assert.True(t, m.Match("mixed/hidden_file.rst"))
	assert.True(t, m.Match("drafts"))
	assert.True(t, m.Match("src/drafts"))
	assert.True(t, m.Match("api/v1/internal/private.rst"))
	assert.False(t, m.Match("visible.rst"))
	assert.False(t, m.Match(paths.Root))

	var none *Matcher
	assert.False(t, none.Match("anything"))
}

func TestCollect_KeepsDecomposedNames(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "src/cafe\u0301/a.rst")

	c, err := Collect(root, Options{SourceSuffixes: []string{".rst"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "src/cafe\u0301", "src/cafe\u0301/a.rst"}, collected(c))

	for _, p := range c.Paths() {
		_, statErr := os.Stat(p.OS(root))
		require.NoError(t, statErr, "collected path %q must exist on disk", p)
	}

	assert.Equal(t, paths.Rel("src/cafe\u0301"), c.Resolve("src/caf\u00e9"))
	assert.Equal(t, paths.Rel("src/missing"), c.Resolve("src/missing"))
	assert.Equal(t, paths.Root, c.Resolve(paths.Root))
}

func TestCollect_SkipsUnreadableFolder(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := t.TempDir()
	makeTree(t, root, "src/ok/a.rst", "src/locked/b.rst")
	locked := filepath.Join(root, "src", "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	c, err := Collect(root, Options{SourceSuffixes: []string{".rst"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "src/ok", "src/ok/a.rst"}, collected(c))
	assert.Equal(t, []paths.Rel{"src/locked"}, c.Skipped())
}

func TestMatcher_ComposedPatternMatchesDecomposedName(t *testing.T) {
	m, err := NewMatcher([]string{"caf\u00e9"})
	require.NoError(t, err)

	assert.True(t, m.Match("src/cafe\u0301"))
	assert.False(t, m.Match("src/cafe"))
}
