package usescan

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDir(t *testing.T) {
	t.Run("both reference forms", func(t *testing.T) {
		dir := t.TempDir()
		writeSource(t, dir, "panel/Storage.js", `
Ext.define('PBS.StoragePanel', {
	onlineHelp: 'storage-pools',
});
`)
		writeSource(t, dir, "window/Help.js", `
tools: [ get_help_tool("client-repository") ],
`)

		anchors, err := ScanDir(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(anchors) != 2 {
			t.Fatalf("expected 2 anchors, got %d: %v", len(anchors), anchors)
		}
	})

	t.Run("underscores normalized to dashes", func(t *testing.T) {
		dir := t.TempDir()
		writeSource(t, dir, "Datastore.js", `onlineHelp: 'storage_pool_mgmt',`)

		anchors, err := ScanDir(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(anchors) != 1 || anchors[0] != "storage-pool-mgmt" {
			t.Errorf("expected [storage-pool-mgmt], got %v", anchors)
		}
	})

	t.Run("duplicates removed", func(t *testing.T) {
		dir := t.TempDir()
		writeSource(t, dir, "a.js", `onlineHelp: 'shared-anchor',`)
		writeSource(t, dir, "b.js", `get_help_tool('shared-anchor')`)

		anchors, err := ScanDir(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(anchors) != 1 {
			t.Errorf("expected 1 anchor, got %v", anchors)
		}
	})

	t.Run("non-js files ignored", func(t *testing.T) {
		dir := t.TempDir()
		writeSource(t, dir, "notes.md", `onlineHelp: 'not-a-source',`)
		writeSource(t, dir, "real.js", `get_help_tool( 'spaced_call' )`)

		anchors, err := ScanDir(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(anchors) != 1 || anchors[0] != "spaced-call" {
			t.Errorf("expected [spaced-call], got %v", anchors)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if _, err := ScanDir(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
