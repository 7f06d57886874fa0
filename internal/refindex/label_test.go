package refindex

import (
	"testing"

	"github.com/pbsdocs/scanrefs/internal/doctree"
)

func TestCanonicalLabel(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected string
	}{
		{"explicit label", []string{"storage-pools", "storage-pool-mgmt"}, "storage-pool-mgmt"},
		{"generic placeholder", []string{"storage-pools", "id12"}, "storage-pools"},
		{"bare id placeholder", []string{"storage-pools", "id"}, "storage-pools"},
		{"label starting with id but not generic", []string{"slug", "identity-management"}, "identity-management"},
		{"label with digits elsewhere", []string{"slug", "sysadmin-2fa"}, "sysadmin-2fa"},
		{"uppercase Id is not generic", []string{"slug", "Id12"}, "Id12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := canonicalLabel(tt.ids)
			if result != tt.expected {
				t.Errorf("canonicalLabel(%v) = %q, want %q", tt.ids, result, tt.expected)
			}
		})
	}
}

func TestSectionTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    *doctree.Title
		expected string
	}{
		{"nil title", nil, ""},
		{"plain title", &doctree.Title{Text: "Storage Pools", RawSource: "Storage Pools"}, "Storage Pools"},
		{"raw source preferred", &doctree.Title{Text: "Remote", RawSource: "Remote*"}, "Remote*"},
		{"falls back to rendered text", &doctree.Title{Text: "Storage Pools"}, "Storage Pools"},
		{"term markup stripped", &doctree.Title{RawSource: ":term:`Foo Bar`"}, "Foo Bar"},
		{"bare term marker", &doctree.Title{RawSource: ":term:`"}, ":term:`"},
		{"term prefix only in middle untouched", &doctree.Title{RawSource: "About :term:`Foo`"}, "About :term:`Foo`"},
		{"empty title node", &doctree.Title{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sectionTitle(tt.title)
			if result != tt.expected {
				t.Errorf("sectionTitle(%+v) = %q, want %q", tt.title, result, tt.expected)
			}
		})
	}
}

func TestHTMLName(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"rst source", "storage.rst", "storage.html"},
		{"nested path", "docs/chapters/backup-client.rst", "backup-client.html"},
		{"no extension", "README", "README.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := htmlName(tt.source)
			if result != tt.expected {
				t.Errorf("htmlName(%q) = %q, want %q", tt.source, result, tt.expected)
			}
		})
	}
}
