package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]Rel{
		"":                  Root,
		".":                 Root,
		"./src/guide/":      "src/guide",
		"src//guide/../api": "src/api",
		// Decomposed names keep their on-disk spelling.
		"src/cafe\u0301": "src/cafe\u0301",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestRelEqual(t *testing.T) {
	decomposed := Rel("src/\u0438\u0306")
	composed := Rel("src/\u0439")

	assert.NotEqual(t, decomposed, composed)
	assert.True(t, decomposed.Equal(composed))
	assert.Equal(t, composed.Key(), decomposed.Key())
	assert.False(t, Rel("src/a").Equal("src/b"))
}

func TestRelOSKeepsDiskSpelling(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "src", "cafe\u0301")
	require.NoError(t, os.MkdirAll(dir, 0o750))

	rel, err := FromOS(root, filepath.Join(dir, "a.rst"))
	require.NoError(t, err)

	nav := NavigatorOf(rel.Parent())
	assert.Equal(t, "autotoc.cafe\u0301.rst", nav.Name())
	require.NoError(t, os.WriteFile(nav.OS(root), []byte("x"), 0o600))
	_, err = os.Stat(filepath.Join(dir, "autotoc.cafe\u0301.rst"))
	require.NoError(t, err)
}

func TestRelNavigation(t *testing.T) {
	r := Rel("src/1. level1/l1.1.rst")

	assert.Equal(t, "l1.1.rst", r.Name())
	assert.Equal(t, "l1.1", r.Stem())
	assert.Equal(t, Rel("src/1. level1"), r.Parent())
	assert.Equal(t, []Rel{"src/1. level1", "src"}, r.Ancestors())
	assert.Equal(t, []string{"src", "1. level1", "l1.1.rst"}, r.Segments())
	assert.Equal(t, Root, Rel("src").Parent())
	assert.Equal(t, Root, Root.Parent())
	assert.Empty(t, Root.Name())
	assert.Nil(t, Root.Segments())
	assert.Equal(t, Rel("src/a/b"), Rel("src").Join("a", "b"))
	assert.Equal(t, Rel("a"), Root.Join("a"))
}

func TestNavigatorNaming(t *testing.T) {
	assert.Equal(t, "autotoc.1. level1.rst", NavigatorName("1. level1"))
	assert.Equal(t, Rel("src/1. level1/autotoc.1. level1.rst"), NavigatorOf("src/1. level1"))

	assert.True(t, IsGenerated("src/guide/autotoc.guide.rst"))
	assert.True(t, IsGenerated("autotoc.rst"))
	assert.False(t, IsGenerated("src/autotoc.rst"))
	assert.False(t, IsGenerated("src/guide/autotoc.other.rst"))
	assert.False(t, IsGenerated("src/guide/intro.rst"))
}

func TestTrimLeadingNumbers(t *testing.T) {
	cases := []struct {
		original string
		modified string
	}{
		{"1425. faire46", "faire46"},
		{"No leading number", "No leading number"},
		{"", ""},
		{"   42. with spaces", "   42. with spaces"},
		{"1234. !@#$%^&*()", "!@#$%^&*()"},
		{"1234.", "1234."},
		{"5678.foo", "foo"},
		{"1234. text with 5678 number", "text with 5678 number"},
		{"1234. 5678. double number dot", "5678. double number dot"},
		{"5678.\nnew line", "new line"},
		{".hidden", ".hidden"},
		{"12a. mixed", "12a. mixed"},
	}
	for _, tc := range cases {
		t.Run(tc.original, func(t *testing.T) {
			assert.Equal(t, tc.modified, TrimLeadingNumbers(tc.original))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "level1", DisplayName("1. level1", true))
	assert.Equal(t, "1. level1", DisplayName("1. level1", false))
}
