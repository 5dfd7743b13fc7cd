package navigator

import (
	"bytes"
	"fmt"
	"text/template"

	"git.home.luguber.info/inful/autotoc/internal/rst"
)

// The navigator and entry page layouts. Both start with an empty line; toctree
// bodies list one entry per line.
const (
	navigatorTemplate = `
{{.Title}}
{{rule .Title}}
{{.Preamble}}

.. toctree::
   :maxdepth: 2

{{range .Entries}}{{entry .}}
{{end}}`

	entryPageTemplate = `
{{.Title}}
{{rule .Title}}{{range .Groups}}
.. toctree::
   :maxdepth: 2
   :caption: {{.Caption}}

{{range .Entries}}{{entry .}}
{{end}}{{end}}`
)

var templates = template.Must(template.New("autotoc").Funcs(template.FuncMap{
	"rule":  rst.Rule,
	"entry": rst.TocEntry,
}).Parse(`{{define "navigator"}}` + navigatorTemplate + `{{end}}{{define "entry_page"}}` + entryPageTemplate + `{{end}}`))

type navigatorData struct {
	Title    string
	Preamble string
	Entries  []string
}

// Group is one captioned toctree block of the entry page.
type Group struct {
	Caption string
	Entries []string
}

type entryPageData struct {
	Title  string
	Groups []Group
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
