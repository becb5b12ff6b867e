// ABOUTME: File, RDBMS and remote-backed data source entities
// ABOUTME: Carry location facts only; content I/O lives elsewhere

package entity

import (
	"github.com/kallestad/metastudio/pkg/builder"
	"github.com/kallestad/metastudio/pkg/record"
	"github.com/kallestad/metastudio/pkg/taxonomy"
)

// DataSourceFile is an immutable file-backed data source. The path is
// recorded in the file variants of the administrative and technical
// records; file contents are never read here.
type DataSourceFile struct {
	name string
	path string
	meta *taxonomy.Taxonomy
}

// NewDataSourceFile creates a file-backed source and builds its metadata
func NewDataSourceFile(name, path string, opts ...builder.Option) (*DataSourceFile, error) {
	s := &DataSourceFile{name: name, path: path}
	params := record.Params{"path": path}
	tax, err := builder.NewFileBuilder(s, name, params, opts...).Build()
	if err != nil {
		return nil, err
	}
	s.meta = tax
	return s, nil
}

// Name returns the source name
func (s *DataSourceFile) Name() string { return s.name }

// Path returns the backing file path
func (s *DataSourceFile) Path() string { return s.path }

// ClassName returns the entity class name
func (s *DataSourceFile) ClassName() string { return "DataSourceFile" }

// SizeOf estimates the in-memory size of the source descriptor
func (s *DataSourceFile) SizeOf() int64 {
	return int64(64 + len(s.name) + len(s.path))
}

// Metadata returns the source's metadata taxonomy
func (s *DataSourceFile) Metadata() *taxonomy.Taxonomy { return s.meta }

// DataStoreFile is a mutable file-backed storage target
type DataStoreFile struct {
	name string
	path string
	meta *taxonomy.Taxonomy
}

// NewDataStoreFile creates a file-backed store and builds its metadata
func NewDataStoreFile(name, path string, opts ...builder.Option) (*DataStoreFile, error) {
	s := &DataStoreFile{name: name, path: path}
	params := record.Params{"path": path}
	tax, err := builder.NewFileBuilder(s, name, params, opts...).Build()
	if err != nil {
		return nil, err
	}
	s.meta = tax
	return s, nil
}

// Name returns the store name
func (s *DataStoreFile) Name() string { return s.name }

// Path returns the backing file path
func (s *DataStoreFile) Path() string { return s.path }

// ClassName returns the entity class name
func (s *DataStoreFile) ClassName() string { return "DataStoreFile" }

// SizeOf estimates the in-memory size of the store descriptor
func (s *DataStoreFile) SizeOf() int64 {
	return int64(64 + len(s.name) + len(s.path))
}

// Metadata returns the store's metadata taxonomy
func (s *DataStoreFile) Metadata() *taxonomy.Taxonomy { return s.meta }

// Written records a write to the backing file in the process log
func (s *DataStoreFile) Written(event string) {
	touch(s.meta, event)
}

// DataSourceRDBMS is a relational-database-backed data source. Recognized
// connection parameters land in the technical record.
type DataSourceRDBMS struct {
	name   string
	params record.Params
	meta   *taxonomy.Taxonomy
}

// NewDataSourceRDBMS creates an RDBMS-backed source and builds its
// metadata. params may carry database, user, password, host and port;
// unrecognized keys are ignored.
func NewDataSourceRDBMS(name string, params record.Params, opts ...builder.Option) (*DataSourceRDBMS, error) {
	s := &DataSourceRDBMS{name: name, params: params}
	tax, err := builder.NewRDBMSBuilder(s, name, params, opts...).Build()
	if err != nil {
		return nil, err
	}
	s.meta = tax
	return s, nil
}

// Name returns the source name
func (s *DataSourceRDBMS) Name() string { return s.name }

// ClassName returns the entity class name
func (s *DataSourceRDBMS) ClassName() string { return "DataSourceRDBMS" }

// SizeOf estimates the in-memory size of the source descriptor
func (s *DataSourceRDBMS) SizeOf() int64 {
	size := int64(64 + len(s.name))
	for k, v := range s.params {
		size += int64(len(k) + len(v))
	}
	return size
}

// Metadata returns the source's metadata taxonomy
func (s *DataSourceRDBMS) Metadata() *taxonomy.Taxonomy { return s.meta }

// DataSourceRemote is a remote, URL-backed data source. Every parameter
// whose key contains "url" lands in the administrative record.
type DataSourceRemote struct {
	name   string
	params record.Params
	meta   *taxonomy.Taxonomy
}

// NewDataSourceRemote creates a remote source and builds its metadata
func NewDataSourceRemote(name string, params record.Params, opts ...builder.Option) (*DataSourceRemote, error) {
	s := &DataSourceRemote{name: name, params: params}
	tax, err := builder.NewRemoteBuilder(s, name, params, opts...).Build()
	if err != nil {
		return nil, err
	}
	s.meta = tax
	return s, nil
}

// Name returns the source name
func (s *DataSourceRemote) Name() string { return s.name }

// ClassName returns the entity class name
func (s *DataSourceRemote) ClassName() string { return "DataSourceRemote" }

// SizeOf estimates the in-memory size of the source descriptor
func (s *DataSourceRemote) SizeOf() int64 {
	size := int64(64 + len(s.name))
	for k, v := range s.params {
		size += int64(len(k) + len(v))
	}
	return size
}

// Metadata returns the source's metadata taxonomy
func (s *DataSourceRemote) Metadata() *taxonomy.Taxonomy { return s.meta }
