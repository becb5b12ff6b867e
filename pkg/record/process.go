// ABOUTME: Process metadata records
// ABOUTME: An append-only, human-readable activity log per entity

package record

import (
	"fmt"
	"io"

	"github.com/kallestad/metastudio/pkg/attrs"
)

// Process holds process metadata: an ordered list of human-readable log
// lines seeded with the entity's instantiation.
type Process struct {
	base
}

// NewProcess builds a process record seeded with an instantiation line
func NewProcess(env Environ, entity Entity, name string) (*Process, error) {
	p := &Process{base: newBase(KindProcess, env, entity, name)}

	line := fmt.Sprintf("%s object named '%s' was instantiated at %s by %s.",
		entity.ClassName(), name, env.Now().Format(stampLayout), env.Username())
	if err := p.store.Add("log", attrs.NewListValue([]string{line})); err != nil {
		return nil, err
	}

	p.built()
	return p, nil
}

// Update appends one log line combining the entity class, name, timestamp
// and the event description. An empty event is a no-op.
func (p *Process) Update(event string) error {
	if event == "" {
		return nil
	}
	line := fmt.Sprintf("Class: %s | Name: %s | Date: %s | Event: %s",
		p.entity.ClassName(), p.name, p.env.Now().Format(stampLayout), event)
	if err := p.store.Append("log", line); err != nil {
		return err
	}
	p.updated(event)
	return nil
}

// Log returns a copy of the activity log lines in order
func (p *Process) Log() []string {
	v, err := p.store.Get("log")
	if err != nil {
		return nil
	}
	out := make([]string, len(v.List))
	copy(out, v.List)
	return out
}

// Print writes the log lines to w, one per line
func (p *Process) Print(w io.Writer) {
	for _, line := range p.Log() {
		fmt.Fprintln(w, line)
	}
}
