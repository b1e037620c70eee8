package corpus

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Corpus is an immutable, validated snapshot of documentation entries.
// It is loaded once at process start and passed explicitly to consumers;
// there is no ambient singleton.
type Corpus struct {
	entries []*Entry
	byID    map[string]*Entry
}

// Load reads a YAML list of entries from path and validates it.
// A corpus that fails validation is never served: the error is fatal.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	var entries []*Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	return New(entries)
}

// New builds a corpus from entries, enforcing the schema invariants ranking
// depends on: unique non-empty ids, known categories, non-empty keyword sets.
func New(entries []*Entry) (*Corpus, error) {
	byID := make(map[string]*Entry, len(entries))
	for i, e := range entries {
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("corpus entry %d: %w", i, err)
		}
		if _, dup := byID[e.ID]; dup {
			return nil, fmt.Errorf("corpus entry %d: duplicate id %q", i, e.ID)
		}
		byID[e.ID] = e
	}
	return &Corpus{entries: entries, byID: byID}, nil
}

func validate(e *Entry) error {
	if e == nil {
		return fmt.Errorf("nil entry")
	}
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("missing id")
	}
	if !e.Category.Valid() {
		return fmt.Errorf("entry %q: unknown category %q", e.ID, e.Category)
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("entry %q: missing title", e.ID)
	}
	if len(e.Keywords) == 0 {
		return fmt.Errorf("entry %q: empty keyword set", e.ID)
	}
	for _, k := range e.Keywords {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("entry %q: blank keyword", e.ID)
		}
	}
	return nil
}

// Get returns the entry with the given id.
func (c *Corpus) Get(id string) (*Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Entries returns a fresh slice of all entries in declared order.
// Callers may reorder the slice freely; the entries themselves are shared.
func (c *Corpus) Entries() []*Entry {
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Related resolves an entry's declared related ids against the corpus in
// declared order, silently skipping ids that do not resolve. It returns at
// most limit entries and never fails on a dangling reference.
func (c *Corpus) Related(id string, limit int) []*Entry {
	e, ok := c.byID[id]
	if !ok || limit <= 0 {
		return nil
	}
	out := make([]*Entry, 0, limit)
	for _, relID := range e.RelatedIDs {
		rel, ok := c.byID[relID]
		if !ok {
			continue
		}
		out = append(out, rel)
		if len(out) == limit {
			break
		}
	}
	return out
}
