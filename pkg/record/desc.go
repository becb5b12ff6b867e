// ABOUTME: Descriptive metadata records
// ABOUTME: User-facing labels, with a member-counting collection variant

package record

import (
	"fmt"

	"github.com/kallestad/metastudio/pkg/attrs"
)

// DescVersion is the fixed version string stamped on descriptive records
const DescVersion = "0.1.0"

// Desc holds descriptive metadata. The user-facing fields start empty and
// are filled in through the store by the caller.
type Desc struct {
	base
}

// NewDesc builds a descriptive record for the given entity
func NewDesc(env Environ, entity Entity, name string) (*Desc, error) {
	d := &Desc{base: newBase(KindDescriptive, env, entity, name)}

	ad := adder{store: d.store}
	ad.add("type", attrs.NewStringValue(""))
	ad.add("category", attrs.NewStringValue(""))
	ad.add("title", attrs.NewStringValue(""))
	ad.add("description_short", attrs.NewStringValue(""))
	ad.add("description", attrs.NewStringValue(""))
	ad.add("class", attrs.NewStringValue(entity.ClassName()))
	ad.add("version", attrs.NewStringValue(DescVersion))
	if ad.err != nil {
		return nil, ad.err
	}

	d.built()
	return d, nil
}

// Update is a no-op for plain descriptive records; every field is either
// write-once or user-managed through the store.
func (d *Desc) Update(event string) error {
	d.updated(event)
	return nil
}

// CollectionDesc is the descriptive record for collection entities. Instead
// of the user-fillable labels it tracks three member counters, recomputed
// from the entity's current member map on every update.
type CollectionDesc struct {
	base
	members MemberLister
}

// NewCollectionDesc builds a descriptive record for a collection entity.
// The entity must expose its member mapping.
func NewCollectionDesc(env Environ, entity Entity, name string) (*CollectionDesc, error) {
	lister, ok := entity.(MemberLister)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotCollection, entity.ClassName())
	}

	d := &CollectionDesc{
		base:    newBase(KindDescriptive, env, entity, name),
		members: lister,
	}

	ad := adder{store: d.store}
	ad.add("class", attrs.NewStringValue(entity.ClassName()))
	ad.add("version", attrs.NewStringValue(DescVersion))
	ad.add("n_members", attrs.NewIntValue(0))
	ad.add("n_members_datacollection", attrs.NewIntValue(0))
	ad.add("n_members_dataset", attrs.NewIntValue(0))
	if ad.err != nil {
		return nil, ad.err
	}

	d.built()
	return d, nil
}

// Update recomputes the member counters by walking the entity's current
// member mapping. Members that are themselves collections count toward
// n_members_datacollection, everything else toward n_members_dataset.
func (d *CollectionDesc) Update(event string) error {
	var total, collections, datasets int64
	for _, member := range d.members.Members() {
		total++
		if _, ok := member.(MemberLister); ok {
			collections++
		} else {
			datasets++
		}
	}

	if err := d.store.Change("n_members", attrs.NewIntValue(total)); err != nil {
		return err
	}
	if err := d.store.Change("n_members_datacollection", attrs.NewIntValue(collections)); err != nil {
		return err
	}
	if err := d.store.Change("n_members_dataset", attrs.NewIntValue(datasets)); err != nil {
		return err
	}
	d.updated(event)
	return nil
}
