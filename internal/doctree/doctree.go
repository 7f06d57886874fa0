// Package doctree defines the parsed document trees handed over by the
// documentation renderer.
//
// scanrefs never parses markup itself. The renderer dumps one JSON file per
// document and this package is the narrow adapter over that dump format,
// including the renderer's identifier convention: IDs[0] is a slug derived
// from the heading text, and a section the author labelled explicitly carries
// a second identifier — the label itself, or a generic "idN" placeholder when
// the label text coincided with the slug.
package doctree

// Title holds both renderings of a section heading. RawSource keeps the
// original markup (for example a :term:`...` reference), Text the plain
// rendered form.
type Title struct {
	Text      string `json:"text"`
	RawSource string `json:"rawsource,omitempty"`
}

// Section is one node of the parsed document tree.
type Section struct {
	IDs      []string   `json:"ids,omitempty"`
	Title    *Title     `json:"title,omitempty"`
	Children []*Section `json:"sections,omitempty"`
}

// Document is one parsed source document.
type Document struct {
	// Docname is the renderer's document identifier, e.g. "storage".
	Docname string `json:"docname"`
	// Source is the path of the source file the document was parsed from,
	// e.g. "storage.rst".
	Source string `json:"source"`
	// Sections are the top-level sections in document order.
	Sections []*Section `json:"sections,omitempty"`
}

// Walk traverses the section and its descendants in depth-first order.
func (s *Section) Walk(fn func(*Section)) {
	if s == nil {
		return
	}
	fn(s)
	for _, child := range s.Children {
		child.Walk(fn)
	}
}

// Walk visits every section of the document in document order.
func (d *Document) Walk(fn func(*Section)) {
	for _, s := range d.Sections {
		s.Walk(fn)
	}
}
