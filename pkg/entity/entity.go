// ABOUTME: Entity types that consume the taxonomy builders
// ABOUTME: Plain datasets plus file, RDBMS and remote-backed sources

package entity

import (
	"github.com/kallestad/metastudio/pkg/builder"
	"github.com/kallestad/metastudio/pkg/record"
	"github.com/kallestad/metastudio/pkg/taxonomy"
)

// touch applies a mutation event to the records defined to be dynamic for
// plain entities: the administrative counters and the process log.
func touch(tax *taxonomy.Taxonomy, event string) {
	if r, err := tax.Get("admin"); err == nil {
		_ = r.Update(event)
	}
	if r, err := tax.Get("process"); err == nil {
		_ = r.Update(event)
	}
}

// DataSet wraps one in-memory tabular dataset. It carries no storage of
// its own; columns live in memory and the metadata taxonomy describes them.
type DataSet struct {
	name string
	data map[string][]float64
	meta *taxonomy.Taxonomy
}

// NewDataSet creates a dataset and builds its metadata taxonomy
func NewDataSet(name string, opts ...builder.Option) (*DataSet, error) {
	ds := &DataSet{
		name: name,
		data: make(map[string][]float64),
	}
	tax, err := builder.NewEntityBuilder(ds, name, nil, opts...).Build()
	if err != nil {
		return nil, err
	}
	ds.meta = tax
	return ds, nil
}

// Name returns the dataset name
func (d *DataSet) Name() string {
	return d.name
}

// ClassName returns the entity class name
func (d *DataSet) ClassName() string {
	return "DataSet"
}

// SizeOf estimates the in-memory size of the dataset in bytes
func (d *DataSet) SizeOf() int64 {
	size := int64(96 + len(d.name))
	for col, vals := range d.data {
		size += int64(len(col)) + int64(8*len(vals))
	}
	return size
}

// Metadata returns the dataset's metadata taxonomy
func (d *DataSet) Metadata() *taxonomy.Taxonomy {
	return d.meta
}

// SetColumn stores one named column and records the mutation
func (d *DataSet) SetColumn(name string, values []float64) {
	col := make([]float64, len(values))
	copy(col, values)
	d.data[name] = col
	touch(d.meta, "column '"+name+"' set")
}

// Column returns one named column, or nil if absent
func (d *DataSet) Column(name string) []float64 {
	vals, ok := d.data[name]
	if !ok {
		return nil
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out
}

// Columns returns the number of columns held
func (d *DataSet) Columns() int {
	return len(d.data)
}

var _ record.Entity = (*DataSet)(nil)
