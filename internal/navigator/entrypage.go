package navigator

import (
	"strings"

	"git.home.luguber.info/inful/autotoc/internal/logfields"
	"git.home.luguber.info/inful/autotoc/internal/metrics"
	"git.home.luguber.info/inful/autotoc/internal/paths"
)

// EntryPage is the location of the generated top-level page.
const EntryPage = paths.Rel(paths.EntryPageName)

// Groups assembles the toctree blocks of the entry page.
//
// In flat mode there is exactly one block, captioned with the configured header,
// listing the content folder's children. In per-subfolder mode every folder
// directly inside the content folder gets its own block, captioned with its
// display name and listing that folder's children directly.
func (g *Generator) Groups() []Group {
	content := g.opts.ContentDir
	if !g.opts.HeadersFromSubfolder {
		return []Group{{
			Caption: g.opts.HeaderText,
			Entries: g.entries(content, content.String()),
		}}
	}

	var groups []Group
	loose := 0
	for _, e := range g.table.Ordered(content) {
		if !e.IsDir {
			loose++
			continue
		}
		groups = append(groups, Group{
			Caption: paths.DisplayName(e.Name(), g.opts.TrimFolderNumbers),
			Entries: g.entries(e.Path, e.Path.String()),
		})
	}
	if loose > 0 {
		g.logger.Warn("Files directly in the content folder are not listed in per-subfolder mode",
			logfields.Dir(content.String()), logfields.Count(loose))
	}
	return groups
}

// RenderEntryPage produces the entry page: the project title and its toctree blocks.
func (g *Generator) RenderEntryPage() (string, error) {
	out, err := render("entry_page", entryPageData{
		Title:  g.opts.ProjectName,
		Groups: g.Groups(),
	})
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// WriteEntryPage writes the entry page at the docs root.
func (g *Generator) WriteEntryPage() (paths.Rel, error) {
	content, err := g.RenderEntryPage()
	if err != nil {
		return "", err
	}
	if err := g.write(EntryPage, content); err != nil {
		return "", err
	}
	g.recorder.IncFilesWritten(metrics.KindEntryPage)
	mode := "flat"
	if g.opts.HeadersFromSubfolder {
		mode = "per_subfolder"
	}
	g.logger.Info("Generated entry page", logfields.Target(EntryPage.String()), logfields.Mode(mode))
	return EntryPage, nil
}
