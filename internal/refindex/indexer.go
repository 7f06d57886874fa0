// Package refindex builds the online-help anchor table from parsed document
// trees and serializes it as a script-embeddable assignment.
//
// One Indexer instance is one indexing session: it is opened against an
// output directory, fed documents one at a time in the order the build driver
// determines, and finalized exactly once. There is no way back from the
// finalized state; a new build needs a new instance.
package refindex

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pbsdocs/scanrefs/internal/doctree"
)

// Defaults for the serialized artifact.
const (
	DefaultOutputFile = "OnlineHelpInfo.js"
	DefaultIdent      = "proxmoxOnlineHelpInfo"
	DefaultLinkPrefix = "/docs/"
)

// The documentation index page is always reachable from the help viewer,
// whatever the scanned documents contain.
const (
	bootstrapLabel = "pbs_documentation_index"
	bootstrapPage  = "index.html"
	bootstrapTitle = "Proxmox Backup Server Documentation Index"
)

// Session failures come in exactly two kinds; everything about document
// content is handled leniently and never raised as an error.
var (
	// ErrSetup marks failures opening the session (output directory or file).
	ErrSetup = errors.New("session setup failed")
	// ErrWrite marks failures serializing or writing the output.
	ErrWrite = errors.New("output write failed")
	// ErrFinalized is returned when a finalized session is used again.
	ErrFinalized = errors.New("session already finalized")
)

// Config holds the settings of one indexing session.
type Config struct {
	// OutDir is the directory the output file is written to. Created if
	// absent.
	OutDir string
	// OutputFile is the output file name (default DefaultOutputFile).
	OutputFile string
	// Ident is the JavaScript identifier the table is assigned to (default
	// DefaultIdent).
	Ident string
	// LinkPrefix is prepended to every generated link (default
	// DefaultLinkPrefix).
	LinkPrefix string
	// Validator, when set, runs over the table before serialization. Unset by
	// default: anchor-usage validation is dormant.
	Validator Validator
	// Output receives progress notes. Defaults to io.Discard.
	Output io.Writer
}

// Indexer accumulates anchor entries over one session.
type Indexer struct {
	cfg       Config
	out       *os.File
	table     *Table
	finalized bool
}

// New opens a session: it ensures the output directory exists, opens the
// output file and seeds the table with the bootstrap index entry.
func New(cfg Config) (*Indexer, error) {
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.Ident == "" {
		cfg.Ident = DefaultIdent
	}
	if cfg.LinkPrefix == "" {
		cfg.LinkPrefix = DefaultLinkPrefix
	}
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", ErrSetup, cfg.OutDir, err)
	}
	out, err := os.Create(filepath.Join(cfg.OutDir, cfg.OutputFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSetup, err)
	}

	table := NewTable()
	table.Set(bootstrapLabel, Entry{
		Link:  cfg.LinkPrefix + bootstrapPage,
		Title: bootstrapTitle,
	})

	return &Indexer{cfg: cfg, out: out, table: table}, nil
}

// OutputPath returns the path of the file the session writes.
func (ix *Indexer) OutputPath() string {
	return filepath.Join(ix.cfg.OutDir, ix.cfg.OutputFile)
}

// Table exposes the accumulated table for summaries and validators.
func (ix *Indexer) Table() *Table {
	return ix.table
}

// ProcessDocument records an entry for every explicitly labelled section of
// doc and reports how many entries it recorded. Sections carrying fewer than
// two IDs have no explicit label and contribute nothing. A label seen before
// is overwritten: last write wins across documents. Malformed or missing
// titles degrade to best-effort text, never to an error.
func (ix *Indexer) ProcessDocument(doc *doctree.Document) (int, error) {
	if ix.finalized {
		return 0, ErrFinalized
	}

	page := htmlName(doc.Source)
	added := 0
	doc.Walk(func(s *doctree.Section) {
		if len(s.IDs) < 2 {
			return
		}
		label := canonicalLabel(s.IDs)
		ix.table.Set(label, Entry{
			Link:  ix.cfg.LinkPrefix + page + "#" + label,
			Title: sectionTitle(s.Title),
		})
		added++
	})
	return added, nil
}

// Finalize runs the validator if one is configured, writes the table as a
// single const assignment and closes the output file. The session is spent
// afterwards.
func (ix *Indexer) Finalize() error {
	if ix.finalized {
		return ErrFinalized
	}
	ix.finalized = true

	if ix.cfg.Validator != nil {
		if err := ix.cfg.Validator.Validate(ix.table); err != nil {
			ix.out.Close()
			return fmt.Errorf("validating anchors: %w", err)
		}
	}

	data, err := json.MarshalIndent(ix.table, "", "  ")
	if err != nil {
		ix.out.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if _, err := fmt.Fprintf(ix.out, "const %s = %s;\n", ix.cfg.Ident, data); err != nil {
		ix.out.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := ix.out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// htmlName maps a document source path to the base name of its rendered page.
func htmlName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}
