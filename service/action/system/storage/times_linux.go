//go:build linux

package storage

import (
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes returns status change and access times
func fileTimes(location string) (created, accessed time.Time, ok bool) {
	var st unix.Stat_t
	if err := unix.Stat(location, &st); err != nil {
		return created, accessed, false
	}
	return time.Unix(st.Ctim.Unix()), time.Unix(st.Atim.Unix()), true
}
