// Package metrics provides Prometheus metrics for metastudio
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for metastudio
type Metrics struct {
	// Attribute store metrics
	AttributeOpsTotal *prometheus.CounterVec

	// Record metrics
	RecordsBuiltTotal  *prometheus.CounterVec
	RecordUpdatesTotal *prometheus.CounterVec

	// Taxonomy metrics
	TaxonomyLookupsTotal prometheus.Counter
	TaxonomyMissesTotal  prometheus.Counter

	// Builder metrics
	TaxonomiesBuiltTotal *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	m := &Metrics{}

	m.AttributeOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metastudio_attribute_ops_total",
			Help: "Total number of attribute store operations",
		},
		[]string{"operation", "status"},
	)

	m.RecordsBuiltTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metastudio_records_built_total",
			Help: "Total number of metadata records constructed",
		},
		[]string{"kind"},
	)

	m.RecordUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metastudio_record_updates_total",
			Help: "Total number of metadata record updates",
		},
		[]string{"kind"},
	)

	m.TaxonomyLookupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metastudio_taxonomy_lookups_total",
			Help: "Total number of taxonomy kind lookups",
		},
	)

	m.TaxonomyMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metastudio_taxonomy_misses_total",
			Help: "Total number of taxonomy lookups with no matching kind",
		},
	)

	m.TaxonomiesBuiltTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metastudio_taxonomies_built_total",
			Help: "Total number of taxonomies assembled",
		},
		[]string{"storage_kind"},
	)

	return m
}

// RecordAttributeOp records one attribute store operation
func (m *Metrics) RecordAttributeOp(operation, status string) {
	m.AttributeOpsTotal.WithLabelValues(operation, status).Inc()
}

// RecordBuilt records construction of one metadata record
func (m *Metrics) RecordBuilt(kind string) {
	m.RecordsBuiltTotal.WithLabelValues(kind).Inc()
}

// RecordUpdate records one metadata record update
func (m *Metrics) RecordUpdate(kind string) {
	m.RecordUpdatesTotal.WithLabelValues(kind).Inc()
}

// RecordLookup records one taxonomy lookup and whether it matched
func (m *Metrics) RecordLookup(hit bool) {
	m.TaxonomyLookupsTotal.Inc()
	if !hit {
		m.TaxonomyMissesTotal.Inc()
	}
}

// RecordTaxonomyBuilt records one assembled taxonomy
func (m *Metrics) RecordTaxonomyBuilt(storageKind string) {
	m.TaxonomiesBuiltTotal.WithLabelValues(storageKind).Inc()
}

var (
	defaultOnce sync.Once
	defaultSet  *Metrics
)

// Default returns the process-wide metrics set. Registration with the
// default Prometheus registry happens once.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultSet = New()
	})
	return defaultSet
}
