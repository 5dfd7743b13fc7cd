package visual

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/autotoc/internal/paths"
	"git.home.luguber.info/inful/autotoc/internal/routes"
)

type listSource []string

func (s listSource) Paths() []paths.Rel {
	out := make([]paths.Rel, 0, len(s))
	for _, p := range s {
		out = append(out, paths.Normalize(p))
	}
	return out
}

func (s listSource) IsDir(p paths.Rel) bool {
	for _, it := range s {
		if strings.HasSuffix(it, "/") && paths.Normalize(it) == p {
			return true
		}
	}
	return false
}

func sampleTable() *routes.Table {
	return routes.Build(listSource{
		"src/",
		"src/10. api/",
		"src/10. api/ref.rst",
		"src/2. guide/",
		"src/2. guide/b.rst",
		"src/2. guide/a.rst",
	})
}

func TestRender_DisplayOrder(t *testing.T) {
	out := NewRouteTree("docs", sampleTable(), Options{}).Render()

	assert.True(t, strings.HasPrefix(out, "docs\n"))
	order := []string{"src/", "2. guide/", "a.rst", "b.rst", "10. api/", "ref.rst"}
	last := -1
	for _, label := range order {
		i := strings.Index(out, label)
		if assert.GreaterOrEqual(t, i, 0, label) {
			assert.Greater(t, i, last, label)
			last = i
		}
	}
}

func TestRender_Labels(t *testing.T) {
	out := NewRouteTree("docs", sampleTable(), Options{
		TrimFolderNumbers: true,
		ShowNavigators:    true,
		ContentDir:        "src",
	}).Render()

	assert.Contains(t, out, "2. guide/ (guide) -> autotoc.2. guide.rst")
	assert.Contains(t, out, "10. api/ (api) -> autotoc.10. api.rst")
	assert.NotContains(t, out, "autotoc.src.rst")
}
