// ABOUTME: Injectable environment snapshot capability
// ABOUTME: Ambient process, host and filesystem facts behind one interface

package record

import "time"

// HostInfo is a snapshot of the host machine identity
type HostInfo struct {
	System    string // OS name, e.g. "linux"
	Node      string // hostname
	Release   string // kernel release
	Version   string // platform version
	Machine   string // hardware architecture
	Processor string // CPU model
}

// MemoryInfo is a snapshot of virtual memory usage
type MemoryInfo struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
}

// FileStat describes one path on the filesystem
type FileStat struct {
	Exists   bool
	Size     int64
	Created  time.Time
	Accessed time.Time
	Modified time.Time
}

// Environ supplies the ambient facts records read at construction and
// update time. Production code uses the sysinfo implementation; tests
// supply a StaticEnviron with fixed values.
type Environ interface {
	// Username returns the identity of the process owner
	Username() string

	// Now returns the current wall-clock time
	Now() time.Time

	// Host returns the host machine snapshot
	Host() (HostInfo, error)

	// Memory returns the virtual memory snapshot
	Memory() (MemoryInfo, error)

	// CPUCounts returns the physical and logical core counts
	CPUCounts() (physical, logical int, err error)

	// Stat describes a filesystem path. A missing path is not an error;
	// it is reported through FileStat.Exists.
	Stat(path string) (FileStat, error)
}

// StaticEnviron is an Environ with fixed values. The zero value is usable;
// unset fields read as zero.
type StaticEnviron struct {
	User     string
	Clock    time.Time
	HostInfo HostInfo
	MemInfo  MemoryInfo
	Physical int
	Logical  int
	Files    map[string]FileStat
}

// Username returns the fixed user
func (s *StaticEnviron) Username() string {
	return s.User
}

// Now returns the fixed clock value
func (s *StaticEnviron) Now() time.Time {
	return s.Clock
}

// Host returns the fixed host snapshot
func (s *StaticEnviron) Host() (HostInfo, error) {
	return s.HostInfo, nil
}

// Memory returns the fixed memory snapshot
func (s *StaticEnviron) Memory() (MemoryInfo, error) {
	return s.MemInfo, nil
}

// CPUCounts returns the fixed core counts
func (s *StaticEnviron) CPUCounts() (int, int, error) {
	return s.Physical, s.Logical, nil
}

// Stat returns the configured stat for path, or a non-existent FileStat
func (s *StaticEnviron) Stat(path string) (FileStat, error) {
	if fs, ok := s.Files[path]; ok {
		return fs, nil
	}
	return FileStat{}, nil
}
