// ABOUTME: Technical metadata records
// ABOUTME: Host machine and object-size snapshot, with file and RDBMS variants

package record

import (
	"github.com/kallestad/metastudio/internal/format"
	"github.com/kallestad/metastudio/pkg/attrs"
)

// Tech holds technical metadata: a snapshot of the host machine, memory
// usage and the entity's in-memory size. The snapshot is captured at
// construction and refreshed only by an explicit Refresh call.
type Tech struct {
	base
}

// NewTech builds a technical record for the given entity
func NewTech(env Environ, entity Entity, name string) (*Tech, error) {
	t := &Tech{base: newBase(KindTechnical, env, entity, name)}

	host, err := env.Host()
	if err != nil {
		return nil, err
	}
	mem, err := env.Memory()
	if err != nil {
		return nil, err
	}
	physical, logical, err := env.CPUCounts()
	if err != nil {
		return nil, err
	}

	ad := adder{store: t.store}
	ad.add("system", attrs.NewStringValue(host.System))
	ad.add("node", attrs.NewStringValue(host.Node))
	ad.add("release", attrs.NewStringValue(host.Release))
	ad.add("version", attrs.NewStringValue(host.Version))
	ad.add("machine", attrs.NewStringValue(host.Machine))
	ad.add("processor", attrs.NewStringValue(host.Processor))
	ad.add("physical_cores", attrs.NewIntValue(int64(physical)))
	ad.add("total_cores", attrs.NewIntValue(int64(logical)))
	ad.add("total_memory", attrs.NewStringValue(format.ScaleNumber(float64(mem.Total), "B")))
	ad.add("available_memory", attrs.NewStringValue(format.ScaleNumber(float64(mem.Available), "B")))
	ad.add("used_memory", attrs.NewStringValue(format.ScaleNumber(float64(mem.Used), "B")))
	ad.add("pct_memory_used", attrs.NewFloatValue(mem.UsedPercent))
	ad.add("object_size", attrs.NewIntValue(entity.SizeOf()))
	ad.add("updates", attrs.NewIntValue(0))
	if ad.err != nil {
		return nil, ad.err
	}

	t.built()
	return t, nil
}

// Update is a no-op for technical records. The snapshot refreshes only
// when Refresh is invoked explicitly.
func (t *Tech) Update(event string) error {
	return nil
}

// Refresh re-captures the host, memory and object-size snapshot and bumps
// the update counter.
func (t *Tech) Refresh() error {
	host, err := t.env.Host()
	if err != nil {
		return err
	}
	mem, err := t.env.Memory()
	if err != nil {
		return err
	}
	physical, logical, err := t.env.CPUCounts()
	if err != nil {
		return err
	}

	changes := map[string]attrs.Value{
		"system":           attrs.NewStringValue(host.System),
		"node":             attrs.NewStringValue(host.Node),
		"release":          attrs.NewStringValue(host.Release),
		"version":          attrs.NewStringValue(host.Version),
		"machine":          attrs.NewStringValue(host.Machine),
		"processor":        attrs.NewStringValue(host.Processor),
		"physical_cores":   attrs.NewIntValue(int64(physical)),
		"total_cores":      attrs.NewIntValue(int64(logical)),
		"total_memory":     attrs.NewStringValue(format.ScaleNumber(float64(mem.Total), "B")),
		"available_memory": attrs.NewStringValue(format.ScaleNumber(float64(mem.Available), "B")),
		"used_memory":      attrs.NewStringValue(format.ScaleNumber(float64(mem.Used), "B")),
		"pct_memory_used":  attrs.NewFloatValue(mem.UsedPercent),
		"object_size":      attrs.NewIntValue(t.entity.SizeOf()),
	}
	for key, v := range changes {
		if err := t.store.Change(key, v); err != nil {
			return err
		}
	}
	if err := t.store.Increment("updates"); err != nil {
		return err
	}
	t.updated("snapshot refresh")
	return nil
}

// NewFileTech builds a technical record extended with the scaled size of
// the backing file. An empty or missing path yields a plain record.
func NewFileTech(env Environ, entity Entity, name, path string) (*Tech, error) {
	t, err := NewTech(env, entity, name)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return t, nil
	}

	st, err := env.Stat(path)
	if err != nil {
		return nil, err
	}
	if !st.Exists {
		return t, nil
	}
	if err := t.store.Add("file_size", attrs.NewStringValue(format.ScaleNumber(float64(st.Size), "M"))); err != nil {
		return nil, err
	}
	return t, nil
}

// NewRDBMSTech builds a technical record extended with whichever of the
// recognized connection parameters were supplied. Unrecognized keys are
// silently ignored.
func NewRDBMSTech(env Environ, entity Entity, name string, params Params) (*Tech, error) {
	t, err := NewTech(env, entity, name)
	if err != nil {
		return nil, err
	}

	ad := adder{store: t.store}
	for _, key := range rdbmsParams {
		if v, ok := params[key]; ok {
			ad.add(key, attrs.NewStringValue(v))
		}
	}
	if ad.err != nil {
		return nil, ad.err
	}
	return t, nil
}
