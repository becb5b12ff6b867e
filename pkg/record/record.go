// ABOUTME: Shared record behavior and construction helpers
// ABOUTME: Each record owns one attribute store tagged with a fixed kind

package record

import (
	"io"
	"sort"
	"strings"
	"time"

	"github.com/kallestad/metastudio/internal/logger"
	"github.com/kallestad/metastudio/internal/metrics"
	"github.com/kallestad/metastudio/pkg/attrs"
)

// Stamp layout for human-readable timestamps (created, modified, log lines)
const stampLayout = time.ANSIC

// Slug layout for the timestamp component of generated object names
const slugLayout = "2006-1-2_15-4-5"

// Record is one metadata record of a fixed kind. The kind never changes
// after construction; Update only refreshes the fields defined to be
// dynamic for that kind.
type Record interface {
	// Kind returns the record category
	Kind() Kind

	// Store returns the record's attribute store
	Store() *attrs.Store

	// Update refreshes the record's dynamic fields. The event description
	// is only meaningful to the process record.
	Update(event string) error

	// Print writes the record's attributes to w
	Print(w io.Writer)
}

// base carries what every record kind shares: the kind tag, a non-owning
// reference to the described entity, the entity name and the store.
type base struct {
	kind   Kind
	entity Entity
	name   string
	env    Environ
	store  *attrs.Store
}

func newBase(kind Kind, env Environ, entity Entity, name string) base {
	return base{
		kind:   kind,
		entity: entity,
		name:   name,
		env:    env,
		store:  attrs.NewStore(),
	}
}

// Kind returns the record category
func (b *base) Kind() Kind {
	return b.kind
}

// Store returns the record's attribute store
func (b *base) Store() *attrs.Store {
	return b.store
}

// Print writes the record's attributes to w
func (b *base) Print(w io.Writer) {
	b.store.Print(w)
}

// built reports construction to the logger and metrics
func (b *base) built() {
	logger.GetGlobalLogger().LogRecordBuilt(b.kind.String(), b.entity.ClassName(), b.name)
	metrics.Default().RecordBuilt(b.kind.String())
}

// updated reports an applied update
func (b *base) updated(event string) {
	logger.GetGlobalLogger().LogRecordUpdated(b.kind.String(), b.name, event)
	metrics.Default().RecordUpdate(b.kind.String())
}

// sortedKeys returns the parameter keys in a stable order
func sortedKeys(params Params) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// adder batches attribute insertions, keeping the first error
type adder struct {
	store *attrs.Store
	err   error
}

func (a *adder) add(key string, v attrs.Value) {
	if a.err != nil {
		return
	}
	a.err = a.store.Add(key, v)
}

// objectName derives the synthetic object name from the process owner, the
// construction time, the entity class and the entity name.
func objectName(user string, at time.Time, class, name string) string {
	parts := []string{
		strings.ToLower(user),
		at.Format(slugLayout),
		strings.ToLower(class),
		strings.ToLower(name),
	}
	return strings.Join(parts, "_")
}
