// Package sysinfo implements the environment snapshot on the live host
package sysinfo

import (
	"os"
	"os/user"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/kallestad/metastudio/pkg/record"
)

// Environ reads ambient facts from the running process and host machine.
// The zero value is ready to use.
type Environ struct{}

// New creates a live environment snapshot provider
func New() *Environ {
	return &Environ{}
}

// Username returns the login name of the process owner
func (e *Environ) Username() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Username
}

// Now returns the current wall-clock time
func (e *Environ) Now() time.Time {
	return time.Now()
}

// Host returns the host machine identity
func (e *Environ) Host() (record.HostInfo, error) {
	info, err := host.Info()
	if err != nil {
		return record.HostInfo{}, err
	}

	hi := record.HostInfo{
		System:  info.OS,
		Node:    info.Hostname,
		Release: info.KernelVersion,
		Version: info.PlatformVersion,
		Machine: info.KernelArch,
	}

	// The CPU model is best-effort; leave it blank when unavailable
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		hi.Processor = cpus[0].ModelName
	}
	return hi, nil
}

// Memory returns the current virtual memory usage
func (e *Environ) Memory() (record.MemoryInfo, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return record.MemoryInfo{}, err
	}
	return record.MemoryInfo{
		Total:       vm.Total,
		Available:   vm.Available,
		Used:        vm.Used,
		UsedPercent: vm.UsedPercent,
	}, nil
}

// CPUCounts returns the physical and logical core counts
func (e *Environ) CPUCounts() (int, int, error) {
	physical, err := cpu.Counts(false)
	if err != nil {
		return 0, 0, err
	}
	logical, err := cpu.Counts(true)
	if err != nil {
		return 0, 0, err
	}
	return physical, logical, nil
}

// Stat describes a filesystem path. A missing path is reported through
// FileStat.Exists rather than as an error.
func (e *Environ) Stat(path string) (record.FileStat, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return record.FileStat{}, nil
		}
		return record.FileStat{}, err
	}

	created, accessed := statTimes(fi)
	return record.FileStat{
		Exists:   true,
		Size:     fi.Size(),
		Created:  created,
		Accessed: accessed,
		Modified: fi.ModTime(),
	}, nil
}
