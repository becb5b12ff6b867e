// ABOUTME: Taxonomy builders, one storage kind per entity
// ABOUTME: Select record specializations and assemble one taxonomy

package builder

import (
	"fmt"

	"github.com/kallestad/metastudio/internal/metrics"
	"github.com/kallestad/metastudio/internal/sysinfo"
	"github.com/kallestad/metastudio/pkg/record"
	"github.com/kallestad/metastudio/pkg/taxonomy"
)

// StorageKind selects which record specializations a builder instantiates
type StorageKind int

const (
	// StorageEntity is a plain in-memory dataset
	StorageEntity StorageKind = iota

	// StorageCollection is a collection of datasets
	StorageCollection

	// StorageFile is a file-backed source or store
	StorageFile

	// StorageRDBMS is a relational-database-backed source or store
	StorageRDBMS

	// StorageRemote is a remote, URL-backed source
	StorageRemote
)

// String returns the storage kind name
func (k StorageKind) String() string {
	switch k {
	case StorageEntity:
		return "entity"
	case StorageCollection:
		return "collection"
	case StorageFile:
		return "file"
	case StorageRDBMS:
		return "rdbms"
	case StorageRemote:
		return "remote"
	default:
		return fmt.Sprintf("storagekind(%d)", int(k))
	}
}

// Builder assembles one metadata taxonomy for one entity. The four create
// steps each add one record; Metadata hands back the finished taxonomy and
// re-arms the builder with an empty one.
type Builder struct {
	kind   StorageKind
	entity record.Entity
	name   string
	params record.Params
	env    record.Environ
	tax    *taxonomy.Taxonomy
}

// Option configures a builder
type Option func(*Builder)

// WithEnviron overrides the environment snapshot provider. Tests use this
// to supply fixed ambient values.
func WithEnviron(env record.Environ) Option {
	return func(b *Builder) {
		b.env = env
	}
}

// New creates a builder for the given storage kind. params is the
// free-form keyword bundle; specializations extract only the keys they
// recognize.
func New(kind StorageKind, entity record.Entity, name string, params record.Params, opts ...Option) *Builder {
	b := &Builder{
		kind:   kind,
		entity: entity,
		name:   name,
		params: params,
		env:    sysinfo.New(),
		tax:    taxonomy.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewEntityBuilder creates a builder for plain dataset entities
func NewEntityBuilder(entity record.Entity, name string, params record.Params, opts ...Option) *Builder {
	return New(StorageEntity, entity, name, params, opts...)
}

// NewCollectionBuilder creates a builder for collection entities
func NewCollectionBuilder(entity record.Entity, name string, params record.Params, opts ...Option) *Builder {
	return New(StorageCollection, entity, name, params, opts...)
}

// NewFileBuilder creates a builder for file-backed entities
func NewFileBuilder(entity record.Entity, name string, params record.Params, opts ...Option) *Builder {
	return New(StorageFile, entity, name, params, opts...)
}

// NewRDBMSBuilder creates a builder for RDBMS-backed entities
func NewRDBMSBuilder(entity record.Entity, name string, params record.Params, opts ...Option) *Builder {
	return New(StorageRDBMS, entity, name, params, opts...)
}

// NewRemoteBuilder creates a builder for remote, URL-backed entities
func NewRemoteBuilder(entity record.Entity, name string, params record.Params, opts ...Option) *Builder {
	return New(StorageRemote, entity, name, params, opts...)
}

// CreateAdmin adds the administrative record for this storage kind
func (b *Builder) CreateAdmin() error {
	var (
		r   record.Record
		err error
	)
	switch b.kind {
	case StorageFile:
		r, err = record.NewFileAdmin(b.env, b.entity, b.name, b.params["path"])
	case StorageRemote:
		r, err = record.NewRemoteAdmin(b.env, b.entity, b.name, b.params)
	default:
		r, err = record.NewAdmin(b.env, b.entity, b.name)
	}
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	b.tax.Add(r)
	return nil
}

// CreateDesc adds the descriptive record for this storage kind
func (b *Builder) CreateDesc() error {
	var (
		r   record.Record
		err error
	)
	switch b.kind {
	case StorageCollection:
		r, err = record.NewCollectionDesc(b.env, b.entity, b.name)
	default:
		r, err = record.NewDesc(b.env, b.entity, b.name)
	}
	if err != nil {
		return fmt.Errorf("create desc: %w", err)
	}
	b.tax.Add(r)
	return nil
}

// CreateTech adds the technical record for this storage kind
func (b *Builder) CreateTech() error {
	var (
		r   record.Record
		err error
	)
	switch b.kind {
	case StorageFile:
		r, err = record.NewFileTech(b.env, b.entity, b.name, b.params["path"])
	case StorageRDBMS:
		r, err = record.NewRDBMSTech(b.env, b.entity, b.name, b.params)
	default:
		r, err = record.NewTech(b.env, b.entity, b.name)
	}
	if err != nil {
		return fmt.Errorf("create tech: %w", err)
	}
	b.tax.Add(r)
	return nil
}

// CreateProcess adds the process record
func (b *Builder) CreateProcess() error {
	r, err := record.NewProcess(b.env, b.entity, b.name)
	if err != nil {
		return fmt.Errorf("create process: %w", err)
	}
	b.tax.Add(r)
	return nil
}

// Metadata returns the assembled taxonomy and re-arms the builder with an
// empty one. A second read without rebuilding yields an empty taxonomy.
func (b *Builder) Metadata() *taxonomy.Taxonomy {
	tax := b.tax
	b.tax = taxonomy.New()
	return tax
}

// Build runs the four creation steps in order and returns the finished
// taxonomy.
func (b *Builder) Build() (*taxonomy.Taxonomy, error) {
	if err := b.CreateAdmin(); err != nil {
		return nil, err
	}
	if err := b.CreateDesc(); err != nil {
		return nil, err
	}
	if err := b.CreateTech(); err != nil {
		return nil, err
	}
	if err := b.CreateProcess(); err != nil {
		return nil, err
	}
	metrics.Default().RecordTaxonomyBuilt(b.kind.String())
	return b.Metadata(), nil
}
