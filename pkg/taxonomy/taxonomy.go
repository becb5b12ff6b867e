// ABOUTME: Keyed container of at most one metadata record per kind
// ABOUTME: Substring lookup with documented first-match-wins semantics

package taxonomy

import (
	"fmt"
	"io"
	"strings"

	"github.com/kallestad/metastudio/internal/logger"
	"github.com/kallestad/metastudio/internal/metrics"
	"github.com/kallestad/metastudio/pkg/record"
)

// Taxonomy holds at most one metadata record per kind, keyed by the
// lower-cased kind name. Unlike the attribute stores underneath it, adding
// a record of an existing kind overwrites the prior one: last write wins.
// That is the container's single invariant.
type Taxonomy struct {
	kinds   []string // insertion order of kind keys
	records map[string]record.Record
}

// New creates an empty taxonomy
func New() *Taxonomy {
	return &Taxonomy{
		kinds:   make([]string, 0, 4),
		records: make(map[string]record.Record, 4),
	}
}

// Add stores the record under its lower-cased kind name, replacing any
// prior record of the same kind.
func (t *Taxonomy) Add(r record.Record) {
	key := strings.ToLower(r.Kind().String())
	if _, ok := t.records[key]; !ok {
		t.kinds = append(t.kinds, key)
	}
	t.records[key] = r
}

// Get returns the first record, in kind insertion order, whose kind name
// contains the given substring (case-insensitive). When two kind names
// share the substring the earliest added wins. Fails with ErrKindNotFound
// when nothing matches.
func (t *Taxonomy) Get(kind string) (record.Record, error) {
	needle := strings.ToLower(kind)
	for _, key := range t.kinds {
		if strings.Contains(key, needle) {
			logger.GetGlobalLogger().LogTaxonomyLookup(kind, true)
			metrics.Default().RecordLookup(true)
			return t.records[key], nil
		}
	}
	logger.GetGlobalLogger().LogTaxonomyLookup(kind, false)
	metrics.Default().RecordLookup(false)
	return nil, fmt.Errorf("%w: %q", ErrKindNotFound, kind)
}

// All returns the full mapping of lower-cased kind name to record
func (t *Taxonomy) All() map[string]record.Record {
	out := make(map[string]record.Record, len(t.records))
	for k, r := range t.records {
		out[k] = r
	}
	return out
}

// Kinds returns the kind keys in insertion order
func (t *Taxonomy) Kinds() []string {
	out := make([]string, len(t.kinds))
	copy(out, t.kinds)
	return out
}

// Len returns the number of records held
func (t *Taxonomy) Len() int {
	return len(t.kinds)
}

// Print writes one record's attributes to w, or every record in kind
// insertion order when kind is empty.
func (t *Taxonomy) Print(w io.Writer, kind string) error {
	if kind != "" {
		r, err := t.Get(kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "--- %s ---\n", r.Kind())
		r.Print(w)
		return nil
	}
	for _, key := range t.kinds {
		r := t.records[key]
		fmt.Fprintf(w, "--- %s ---\n", r.Kind())
		r.Print(w)
	}
	return nil
}
