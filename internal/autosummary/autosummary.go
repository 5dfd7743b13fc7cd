// Package autosummary links autosummary-generated API listings from the navigation.
//
// A content file holding an ".. autosummary::" directive is normally listed as a
// plain toctree entry. After the navigators are written, each such entry is
// replaced by a link to the per-symbol summary page the host build generates
// under "_autosummary/", titled with the first line of the file.
package autosummary

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	ferrors "git.home.luguber.info/inful/autotoc/internal/foundation/errors"
	"git.home.luguber.info/inful/autotoc/internal/logfields"
	"git.home.luguber.info/inful/autotoc/internal/paths"
	"git.home.luguber.info/inful/autotoc/internal/rst"
)

// Directive is the placeholder line looked for in content files.
const Directive = ".. autosummary::"

// ExtensionName is the host extension whose presence enables the rewrite.
const ExtensionName = "sphinx.ext.autosummary"

// Capture is one content file holding the placeholder.
type Capture struct {
	File       paths.Rel
	Header     string // first line of the file, used as link text
	Identifier string // first listed symbol after the directive
}

// Link is the toctree target of the generated summary, relative to dir.
func (c Capture) Link(dir string) string {
	return path.Join(dir, paths.AutosummaryDir, c.Identifier)
}

// Parse extracts the header and symbol identifier from content. ok is false when
// the directive is absent or either part is missing.
func Parse(content []byte) (header, identifier string, ok bool) {
	first := true
	inDirective := false
	for raw := range bytes.Lines(content) {
		line := strings.TrimSpace(string(raw))
		if first {
			header = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
			first = false
		}
		if !inDirective {
			inDirective = line == Directive
			continue
		}
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		identifier = line
		break
	}
	if header == "" || identifier == "" {
		return "", "", false
	}
	return header, identifier, true
}

// Find scans files beneath root and returns those holding the placeholder.
func Find(root string, files []paths.Rel) ([]Capture, error) {
	var out []Capture
	for _, f := range files {
		data, err := os.ReadFile(f.OS(root))
		if err != nil {
			return nil, ferrors.FileSystemError(err, "read content file").WithContext("path", f.String()).Build()
		}
		header, ident, ok := Parse(data)
		if !ok {
			continue
		}
		slog.Debug("Found autosummary placeholder", logfields.File(f.String()), slog.String("module", ident))
		out = append(out, Capture{File: f, Header: header, Identifier: ident})
	}
	return out, nil
}

// Targets lists the generated files that index c.File. A file in the content
// folder itself is listed by the entry page. Otherwise its folder's navigator
// lists it, and the entry page does too when the folder sits directly in the
// content folder (per-subfolder mode lists those children at the top level).
func Targets(c Capture, contentDir, entryPage paths.Rel) []paths.Rel {
	dir := c.File.Parent()
	if dir.IsRoot() || dir.Equal(contentDir) {
		return []paths.Rel{entryPage}
	}
	targets := []paths.Rel{paths.NavigatorOf(dir)}
	if dir.Parent().Equal(contentDir) {
		targets = append(targets, entryPage)
	}
	return targets
}

// Rewrite replaces, inside the toctree blocks of target, every entry referring
// to c.File with a titled link to its summary. It returns the number of lines
// changed; a missing target is not an error.
func Rewrite(root string, target paths.Rel, c Capture) (int, error) {
	file := target.OS(root)
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Autosummary target not generated", logfields.Target(target.String()))
		return 0, nil
	}
	if err != nil {
		return 0, ferrors.FileSystemError(err, "read generated file").WithContext("path", file).Build()
	}

	base := target.Parent()
	lines := strings.SplitAfter(string(data), "\n")
	changed := 0
	inToctree := false
	for i, raw := range lines {
		body := strings.TrimRight(raw, "\r\n")
		eol := raw[len(body):]
		trimmed := strings.TrimSpace(body)

		if trimmed == ".. toctree::" {
			inToctree = true
			continue
		}
		if !inToctree {
			continue
		}
		if trimmed != "" && !strings.HasPrefix(body, " ") && !strings.HasPrefix(body, "\t") {
			inToctree = false
			continue
		}

		ref := rst.EntryTarget(body)
		if ref == "" || !base.Join(ref).Equal(c.File) {
			continue
		}
		lines[i] = rst.TitledTocEntry(c.Header, c.Link(path.Dir(ref))) + eol
		changed++
	}
	if changed == 0 {
		return 0, nil
	}

	// #nosec G306 -- generated documentation sources are public content
	if err := os.WriteFile(file, []byte(strings.Join(lines, "")), 0o644); err != nil {
		return 0, ferrors.FileSystemError(err, "rewrite generated file").WithContext("path", file).Build()
	}
	return changed, nil
}

// Apply rewrites every target of every capture and returns the total number of
// replaced lines.
func Apply(root string, captures []Capture, contentDir, entryPage paths.Rel, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	total := 0
	for _, c := range captures {
		for _, target := range Targets(c, contentDir, entryPage) {
			n, err := Rewrite(root, target, c)
			if err != nil {
				return total, err
			}
			if n > 0 {
				logger.Info("Linked autosummary reference",
					logfields.File(c.File.String()),
					logfields.Target(target.String()),
					slog.String("module", c.Identifier))
			}
			total += n
		}
	}
	return total, nil
}
