// ABOUTME: Metadata record data model
// ABOUTME: Defines record kinds and the entity collaborator contract

package record

// Kind identifies one of the four metadata record categories
type Kind string

const (
	KindAdministrative Kind = "Administrative"
	KindDescriptive    Kind = "Descriptive"
	KindTechnical      Kind = "Technical"
	KindProcess        Kind = "Process"
)

// String returns the kind name
func (k Kind) String() string {
	return string(k)
}

// Entity is the collaborator contract every described object must satisfy.
// Records only read the class name and an in-memory size estimate.
type Entity interface {
	// ClassName returns the entity's type name, e.g. "DataSet"
	ClassName() string

	// SizeOf returns an estimate of the entity's in-memory size in bytes
	SizeOf() int64
}

// MemberLister is implemented by collection entities whose member counts
// are tracked by descriptive metadata.
type MemberLister interface {
	Entity

	// Members returns the current mapping of member name to member entity
	Members() map[string]Entity
}

// Params is the free-form keyword bundle passed through the builders.
// Specializations extract only the keys they recognize; everything else is
// accepted and ignored.
type Params map[string]string

// RDBMS connection parameter keys recognized by the technical record
var rdbmsParams = []string{"database", "user", "password", "host", "port"}
