// ABOUTME: Ordered attribute store with strict add/change semantics
// ABOUTME: Insertion order is preserved for process logs and display

package attrs

import (
	"fmt"
	"io"

	"github.com/kallestad/metastudio/internal/logger"
	"github.com/kallestad/metastudio/internal/metrics"
)

// Store is an ordered mapping from attribute name to Value. Adding an
// existing key fails, changing a missing key fails, and removing a missing
// key is reported but not fatal.
type Store struct {
	keys []string
	vals map[string]Value
}

// NewStore creates an empty attribute store
func NewStore() *Store {
	return &Store{
		keys: make([]string, 0, 16),
		vals: make(map[string]Value, 16),
	}
}

// Add inserts a new attribute. Fails with ErrDuplicateKey if the key
// already exists.
func (s *Store) Add(key string, v Value) error {
	if _, ok := s.vals[key]; ok {
		metrics.Default().RecordAttributeOp("add", "error")
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	s.keys = append(s.keys, key)
	s.vals[key] = v
	metrics.Default().RecordAttributeOp("add", "success")
	return nil
}

// Get returns the value for key. Fails with ErrMissingKey if absent.
func (s *Store) Get(key string) (Value, error) {
	v, ok := s.vals[key]
	if !ok {
		metrics.Default().RecordAttributeOp("get", "error")
		return Value{}, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	metrics.Default().RecordAttributeOp("get", "success")
	return v, nil
}

// Change overwrites the value of an existing attribute. Fails with
// ErrMissingKey if the key was never added.
func (s *Store) Change(key string, v Value) error {
	if _, ok := s.vals[key]; !ok {
		metrics.Default().RecordAttributeOp("change", "error")
		return fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	s.vals[key] = v
	metrics.Default().RecordAttributeOp("change", "success")
	return nil
}

// Remove deletes an attribute. Removal of a missing key is logged and
// execution continues.
func (s *Store) Remove(key string) {
	if _, ok := s.vals[key]; !ok {
		logger.GetGlobalLogger().LogAttributeRemoved(key, false)
		metrics.Default().RecordAttributeOp("remove", "error")
		return
	}
	delete(s.vals, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	logger.GetGlobalLogger().LogAttributeRemoved(key, true)
	metrics.Default().RecordAttributeOp("remove", "success")
}

// Increment adds one to an integer attribute. Fails with ErrMissingKey if
// the key is absent and ErrNotCountable if the value is not an integer.
func (s *Store) Increment(key string) error {
	v, ok := s.vals[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	if v.Type != TYPE_INT {
		return fmt.Errorf("%w: %q", ErrNotCountable, key)
	}
	v.I64++
	s.vals[key] = v
	return nil
}

// Append adds one item to a string-list attribute. Fails with ErrMissingKey
// if the key is absent and ErrNotList if the value is not a list.
func (s *Store) Append(key, item string) error {
	v, ok := s.vals[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	if v.Type != TYPE_LIST {
		return fmt.Errorf("%w: %q", ErrNotList, key)
	}
	v.List = append(v.List, item)
	s.vals[key] = v
	return nil
}

// Has reports whether the key exists
func (s *Store) Has(key string) bool {
	_, ok := s.vals[key]
	return ok
}

// Len returns the number of attributes
func (s *Store) Len() int {
	return len(s.keys)
}

// Keys returns the attribute names in insertion order
func (s *Store) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Snapshot returns a copy of the full mapping
func (s *Store) Snapshot() map[string]Value {
	out := make(map[string]Value, len(s.vals))
	for k, v := range s.vals {
		out[k] = v
	}
	return out
}

// Print writes the attributes to w, one per line, in insertion order
func (s *Store) Print(w io.Writer) {
	for _, k := range s.keys {
		fmt.Fprintf(w, "%-24s %s\n", k, s.vals[k].String())
	}
}
