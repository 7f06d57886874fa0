package refindex

import (
	"fmt"
	"io"
	"sort"
)

// Validator runs over the accumulated table before serialization. Sessions
// run without one unless explicitly configured: anchor-usage checking is
// dormant until the front-end sources it would have to scan are all known.
type Validator interface {
	Validate(t *Table) error
}

// UsageValidator prunes anchors no front-end source references and reports
// anchors the front end references but the documentation never defines. The
// bootstrap entry is always kept.
type UsageValidator struct {
	used   map[string]struct{}
	output io.Writer
}

// NewUsageValidator builds a validator from the anchor list collected out of
// the front-end sources.
func NewUsageValidator(used []string, output io.Writer) *UsageValidator {
	if output == nil {
		output = io.Discard
	}
	set := make(map[string]struct{}, len(used))
	for _, anchor := range used {
		set[anchor] = struct{}{}
	}
	return &UsageValidator{used: set, output: output}
}

// Validate reports missing anchors and deletes unused ones.
func (v *UsageValidator) Validate(t *Table) error {
	missing := make([]string, 0, len(v.used))
	for anchor := range v.used {
		if _, ok := t.Get(anchor); !ok {
			missing = append(missing, anchor)
		}
	}
	sort.Strings(missing)
	for _, anchor := range missing {
		fmt.Fprintf(v.output, "[-] anchor %s is missing from onlinehelp\n", anchor)
	}

	for _, anchor := range t.Labels() {
		if anchor == bootstrapLabel {
			continue
		}
		if _, ok := v.used[anchor]; !ok {
			fmt.Fprintf(v.output, "[*] anchor %s not used, deleting\n", anchor)
			t.Delete(anchor)
		}
	}
	return nil
}
