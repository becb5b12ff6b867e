//go:build !linux

package sysinfo

import (
	"os"
	"time"
)

// statTimes falls back to the modification time on platforms where the
// stat structure is not portable.
func statTimes(fi os.FileInfo) (created, accessed time.Time) {
	return fi.ModTime(), fi.ModTime()
}
