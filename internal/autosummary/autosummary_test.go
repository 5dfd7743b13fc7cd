package autosummary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/autotoc/internal/paths"
	"git.home.luguber.info/inful/autotoc/internal/testutil"
)

const entryPage = paths.Rel(paths.EntryPageName)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		header  string
		ident   string
		ok      bool
	}{
		{
			name:    "directive with options",
			content: "L1header\n========\n\n.. autosummary::\n   :toctree: _autosummary\n   :recursive:\n\n   Level1\n   Level2\n",
			header:  "L1header",
			ident:   "Level1",
			ok:      true,
		},
		{
			name:    "indented directive line",
			content: "  API  \n\n   .. autosummary::  \n\n      pkg.mod\n",
			header:  "API",
			ident:   "pkg.mod",
			ok:      true,
		},
		{
			name:    "no directive",
			content: "Title\n=====\n\nBody text\n",
		},
		{
			name:    "directive without symbols",
			content: "Title\n\n.. autosummary::\n   :toctree: _autosummary\n",
		},
		{
			name:    "empty first line",
			content: "\n.. autosummary::\n\n   mod\n",
		},
		{
			name:    "directive after a very long line",
			content: "Long\n" + strings.Repeat("x", 2<<20) + "\n.. autosummary::\n   big.mod\n",
			header:  "Long",
			ident:   "big.mod",
			ok:      true,
		},
		{
			name:    "byte order mark stripped from header",
			content: "\ufeffReference\n.. autosummary::\n   mod\n",
			header:  "Reference",
			ident:   "mod",
			ok:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, ident, ok := Parse([]byte(tt.content))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.header, header)
			assert.Equal(t, tt.ident, ident)
		})
	}
}

func TestTargets(t *testing.T) {
	content := paths.Rel("src")
	tests := []struct {
		file string
		want []paths.Rel
	}{
		{"src/api.rst", []paths.Rel{entryPage}},
		{"src/1. level1/api.rst", []paths.Rel{"src/1. level1/autotoc.1. level1.rst", entryPage}},
		{"src/a/b/api.rst", []paths.Rel{"src/a/b/autotoc.b.rst"}},
		{"api.rst", []paths.Rel{entryPage}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got := Targets(Capture{File: paths.Rel(tt.file)}, content, entryPage)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind(t *testing.T) {
	root := testutil.NewDocsTree(t, map[string]string{
		"src/a/api.rst":   "API\n\n.. autosummary::\n   :toctree: _autosummary\n\n   pkg.api\n",
		"src/a/plain.rst": "Plain\n=====\n",
	})

	got, err := Find(root, []paths.Rel{"src/a/api.rst", "src/a/plain.rst"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Capture{File: "src/a/api.rst", Header: "API", Identifier: "pkg.api"}, got[0])

	_, err = Find(root, []paths.Rel{"src/a/missing.rst"})
	require.Error(t, err)
}

func TestFind_EmptyFirstLineKeepsPlainEntry(t *testing.T) {
	root := testutil.NewDocsTree(t, map[string]string{
		"src/a/api.rst":       "\n.. autosummary::\n\n   pkg.api\n",
		"src/a/autotoc.a.rst": "\na\n=\n\n.. toctree::\n   :maxdepth: 2\n\n   api.rst\n",
		paths.EntryPageName:   "\nDocs\n====\n\n.. toctree::\n   :maxdepth: 2\n\n   src/a/api.rst\n",
	})

	captures, err := Find(root, []paths.Rel{"src/a/api.rst"})
	require.NoError(t, err)
	assert.Empty(t, captures, "a placeholder without a title line is not linked")

	n, err := Apply(root, captures, "src", entryPage, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	testutil.NewFileAssertions(t, root).
		AssertFileContains("src/a/autotoc.a.rst", "   api.rst\n").
		AssertFileContains(paths.EntryPageName, "   src/a/api.rst\n")
}

func TestRewrite_DecomposedFolderName(t *testing.T) {
	root := t.TempDir()
	const folder = "cafe\u0301"
	nav := "\n" + folder + "\n====\n\n.. toctree::\n   :maxdepth: 2\n\n   api.rst\n"
	testutil.WriteTree(t, root, map[string]string{"src/" + folder + "/autotoc." + folder + ".rst": nav})

	// The capture may carry the composed spelling; the file on disk keeps the decomposed one.
	c := Capture{File: "src/caf\u00e9/api.rst", Header: "API", Identifier: "pkg.api"}
	n, err := Rewrite(root, paths.Rel("src/"+folder+"/autotoc."+folder+".rst"), c)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	testutil.NewFileAssertions(t, root).
		AssertFileContains("src/"+folder+"/autotoc."+folder+".rst", "   API <_autosummary/pkg.api>\n")
}

func TestRewrite_OnlyToctreeEntriesOfTheSameFile(t *testing.T) {
	root := t.TempDir()
	nav := "\nlevel\n=====\nSee api.rst for details.\n\n.. toctree::\n   :maxdepth: 2\n\n   sub/autotoc.sub.rst\n   api.rst\n   other.rst\n"
	testutil.WriteTree(t, root, map[string]string{"src/level/autotoc.level.rst": nav})

	c := Capture{File: "src/level/api.rst", Header: "API", Identifier: "pkg.api"}
	n, err := Rewrite(root, "src/level/autotoc.level.rst", c)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	want := "\nlevel\n=====\nSee api.rst for details.\n\n.. toctree::\n   :maxdepth: 2\n\n   sub/autotoc.sub.rst\n   API <_autosummary/pkg.api>\n   other.rst\n"
	assert.Equal(t, want, testutil.NewFileAssertions(t, root).Read("src/level/autotoc.level.rst"))

	n, err = Rewrite(root, "src/level/autotoc.level.rst", c)
	require.NoError(t, err)
	assert.Zero(t, n, "rewritten lines no longer refer to the file")
}

func TestRewrite_SameNameInAnotherFolderUntouched(t *testing.T) {
	root := t.TempDir()
	page := "\nDocs\n====\n\n.. toctree::\n   :maxdepth: 2\n   :caption: a\n\n   src/a/api.rst\n\n.. toctree::\n   :maxdepth: 2\n   :caption: b\n\n   src/b/api.rst\n"
	testutil.WriteTree(t, root, map[string]string{paths.EntryPageName: page})

	n, err := Rewrite(root, entryPage, Capture{File: "src/b/api.rst", Header: "B API", Identifier: "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	got := testutil.NewFileAssertions(t, root).Read(paths.EntryPageName)
	assert.Contains(t, got, "   src/a/api.rst\n")
	assert.Contains(t, got, "   B API <src/b/_autosummary/b>\n")
}

func TestRewrite_MissingTargetIsNoop(t *testing.T) {
	n, err := Rewrite(t.TempDir(), "src/x/autotoc.x.rst", Capture{File: "src/x/a.rst", Header: "A", Identifier: "a"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestApply_NestedScenario(t *testing.T) {
	root := testutil.NewDocsTree(t, map[string]string{
		"src/1. level1/autotoc.1. level1.rst": "\n1. level1\n=========\n\n\n.. toctree::\n   :maxdepth: 2\n\n   2. level2/autotoc.2. level2.rst\n   autotoc.autosummary.rst\n",
		paths.EntryPageName:                   "\nDocs\n====\n\n.. toctree::\n   :maxdepth: 2\n   :caption: 1. level1\n\n   src/1. level1/2. level2/autotoc.2. level2.rst\n   src/1. level1/autotoc.autosummary.rst\n",
	})

	captures := []Capture{{File: "src/1. level1/autotoc.autosummary.rst", Header: "L1header", Identifier: "Level1"}}
	n, err := Apply(root, captures, "src", entryPage, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	testutil.NewFileAssertions(t, root).
		AssertFileContains("src/1. level1/autotoc.1. level1.rst", "   L1header <_autosummary/Level1>\n").
		AssertFileContains(paths.EntryPageName, "   L1header <src/1. level1/_autosummary/Level1>\n")
}

func TestApply_NoCaptures(t *testing.T) {
	n, err := Apply(t.TempDir(), nil, "src", entryPage, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
