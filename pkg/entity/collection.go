// ABOUTME: Ordered collection of dataset entities
// ABOUTME: Member mutations drive the collection descriptive counters

package entity

import (
	"fmt"
	"strings"

	"github.com/kallestad/metastudio/internal/logger"
	"github.com/kallestad/metastudio/pkg/builder"
	"github.com/kallestad/metastudio/pkg/record"
	"github.com/kallestad/metastudio/pkg/taxonomy"
)

// named is satisfied by entities that carry their own name, letting Add
// derive a member key without an explicit name argument.
type named interface {
	Name() string
}

// DataCollection groups datasets and sub-collections under class-prefixed
// member keys. Every membership change refreshes the descriptive counters
// and the process log.
type DataCollection struct {
	name    string
	keys    []string
	members map[string]record.Entity
	meta    *taxonomy.Taxonomy
}

// NewDataCollection creates an empty collection and builds its metadata
func NewDataCollection(name string, opts ...builder.Option) (*DataCollection, error) {
	dc := &DataCollection{
		name:    name,
		keys:    make([]string, 0, 8),
		members: make(map[string]record.Entity, 8),
	}
	tax, err := builder.NewCollectionBuilder(dc, name, nil, opts...).Build()
	if err != nil {
		return nil, err
	}
	dc.meta = tax
	return dc, nil
}

// Name returns the collection name
func (c *DataCollection) Name() string {
	return c.name
}

// ClassName returns the entity class name
func (c *DataCollection) ClassName() string {
	return "DataCollection"
}

// SizeOf estimates the in-memory size of the collection itself, excluding
// its members.
func (c *DataCollection) SizeOf() int64 {
	size := int64(96 + len(c.name))
	for _, k := range c.keys {
		size += int64(len(k)) + 16
	}
	return size
}

// Metadata returns the collection's metadata taxonomy
func (c *DataCollection) Metadata() *taxonomy.Taxonomy {
	return c.meta
}

// Members returns the current member mapping
func (c *DataCollection) Members() map[string]record.Entity {
	out := make(map[string]record.Entity, len(c.members))
	for k, v := range c.members {
		out[k] = v
	}
	return out
}

// Len returns the number of members
func (c *DataCollection) Len() int {
	return len(c.keys)
}

// memberKey derives the class-prefixed key for a member
func memberKey(e record.Entity, name string) string {
	if name == "" {
		if n, ok := e.(named); ok {
			name = n.Name()
		}
	}
	return strings.ToLower(e.ClassName()) + "_" + name
}

// Add inserts a member under a class-prefixed key. The key derives from
// the given name, falling back to the member's own name. Fails with
// ErrMemberExists if the key is already taken.
func (c *DataCollection) Add(e record.Entity, name string) error {
	key := memberKey(e, name)
	if _, ok := c.members[key]; ok {
		return fmt.Errorf("%w: %q", ErrMemberExists, key)
	}
	c.keys = append(c.keys, key)
	c.members[key] = e
	c.refresh("member '" + key + "' added")
	return nil
}

// Change replaces the member at an existing key. Fails with
// ErrMemberNotFound if the key was never added.
func (c *DataCollection) Change(key string, e record.Entity) error {
	if _, ok := c.members[key]; !ok {
		return fmt.Errorf("%w: %q", ErrMemberNotFound, key)
	}
	c.members[key] = e
	c.refresh("member '" + key + "' changed")
	return nil
}

// Remove deletes the member at a key. Removal of a missing key is logged
// and execution continues.
func (c *DataCollection) Remove(key string) {
	if _, ok := c.members[key]; !ok {
		logger.GetGlobalLogger().Warn("member does not exist").
			Str("key", key).Msg("remove skipped")
		return
	}
	delete(c.members, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	c.refresh("member '" + key + "' removed")
}

// Member returns the member whose own name matches. Fails with
// ErrMemberNotFound when no member carries the name.
func (c *DataCollection) Member(name string) (record.Entity, error) {
	for _, k := range c.keys {
		if n, ok := c.members[k].(named); ok && n.Name() == name {
			return c.members[k], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMemberNotFound, name)
}

// refresh propagates a membership change to the dynamic records: the
// descriptive counters, the administrative counters and the process log.
func (c *DataCollection) refresh(event string) {
	if r, err := c.meta.Get("desc"); err == nil {
		_ = r.Update(event)
	}
	touch(c.meta, event)
}

var _ record.MemberLister = (*DataCollection)(nil)
