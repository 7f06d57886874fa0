// Package usescan finds the online-help anchors referenced by the front-end
// JavaScript sources.
package usescan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// The widget toolkit attaches help anchors either as an onlineHelp panel
// config or through the get_help_tool helper:
//
//	onlineHelp: 'storage_pools'
//	get_help_tool("client-repository")
var refPattern = regexp.MustCompile(`(?:onlineHelp:|get_help_tool\s*\()\s*['"](.*?)['"]`)

// ScanDir walks dir recursively, scans every .js file and returns the
// referenced anchors in discovery order, underscores normalized to dashes and
// duplicates removed.
func ScanDir(dir string) ([]string, error) {
	var anchors []string
	seen := make(map[string]struct{})

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".js" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		for _, m := range refPattern.FindAllStringSubmatch(string(data), -1) {
			anchor := strings.ReplaceAll(m[1], "_", "-")
			if _, ok := seen[anchor]; ok {
				continue
			}
			seen[anchor] = struct{}{}
			anchors = append(anchors, anchor)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return anchors, nil
}
