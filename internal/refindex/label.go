package refindex

import (
	"regexp"
	"strings"

	"github.com/pbsdocs/scanrefs/internal/doctree"
)

// genericID matches the renderer's generic placeholder ("id" plus digits).
// When an explicit label's text coincides with the slug derived from the
// heading, the renderer stores such a placeholder in the label's slot instead
// of repeating the slug.
var genericID = regexp.MustCompile(`^id[0-9]*$`)

// canonicalLabel picks the label identifying a section that carries more than
// one ID. Normally that is the explicit label in IDs[1]; if the renderer put
// a generic placeholder there, the heading slug in IDs[0] is the label.
func canonicalLabel(ids []string) string {
	if genericID.MatchString(ids[1]) {
		return ids[0]
	}
	return ids[1]
}

// termPrefix is the glossary-reference marker wrapping some section titles.
const termPrefix = ":term:`"

// sectionTitle extracts the display title of a section, preferring the raw
// markup source and unwrapping a :term:`...` reference when the title is one.
// Extraction is best-effort; a missing title yields an empty string.
func sectionTitle(t *doctree.Title) string {
	if t == nil {
		return ""
	}
	name := t.RawSource
	if name == "" {
		name = t.Text
	}
	if strings.HasPrefix(name, termPrefix) && len(name) > len(termPrefix) {
		name = name[len(termPrefix) : len(name)-1]
	}
	return name
}
