//go:build linux

package sysinfo

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts the change and access timestamps. Linux exposes no
// true birth time through stat, so the inode change time stands in for
// creation.
func statTimes(fi os.FileInfo) (created, accessed time.Time) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fi.ModTime(), fi.ModTime()
	}
	created = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	accessed = time.Unix(st.Atim.Sec, st.Atim.Nsec)
	return created, accessed
}
