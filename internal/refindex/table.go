package refindex

import (
	"bytes"
	"encoding/json"
)

// Entry is one anchor target in the online-help table.
type Entry struct {
	Link  string `json:"link"`
	Title string `json:"title"`
}

// Table is an insertion-ordered mapping from label ID to Entry. Consumers
// look entries up by key, but the serialized form keeps insertion order so
// the bootstrap entry stays first and regenerated output diffs stay small.
type Table struct {
	labels  []string
	entries map[string]Entry
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Set inserts or overwrites an entry. Overwriting keeps the label's original
// position.
func (t *Table) Set(label string, e Entry) {
	if _, ok := t.entries[label]; !ok {
		t.labels = append(t.labels, label)
	}
	t.entries[label] = e
}

// Get looks up the entry for label.
func (t *Table) Get(label string) (Entry, bool) {
	e, ok := t.entries[label]
	return e, ok
}

// Delete removes label from the table. Unknown labels are a no-op.
func (t *Table) Delete(label string) {
	if _, ok := t.entries[label]; !ok {
		return
	}
	delete(t.entries, label)
	for i, l := range t.labels {
		if l == label {
			t.labels = append(t.labels[:i], t.labels[i+1:]...)
			break
		}
	}
}

// Len reports the number of entries.
func (t *Table) Len() int {
	return len(t.labels)
}

// Labels returns the label IDs in insertion order.
func (t *Table) Labels() []string {
	return append([]string(nil), t.labels...)
}

// MarshalJSON emits the table as a JSON object with keys in insertion order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range t.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t.entries[label])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
