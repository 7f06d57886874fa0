package doctree

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads a single document dump. Missing fields are filled in leniently:
// an absent docname falls back to the dump's base name, an absent source to
// "<docname>.rst".
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read doctree dump: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse doctree dump %s: %w", path, err)
	}

	if doc.Docname == "" {
		doc.Docname = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if doc.Source == "" {
		doc.Source = doc.Docname + ".rst"
	}

	return &doc, nil
}

// LoadDir loads every *.json dump in dir, in lexical filename order. That
// order is the order the indexing session processes documents in, so it must
// be stable across builds.
func LoadDir(dir string) ([]*Document, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list doctree dumps: %w", err)
	}
	sort.Strings(matches)

	docs := make([]*Document, 0, len(matches))
	for _, path := range matches {
		doc, err := Load(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
