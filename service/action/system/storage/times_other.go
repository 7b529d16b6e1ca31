//go:build !linux && !darwin

package storage

import "time"

func fileTimes(string) (time.Time, time.Time, bool) {
	return time.Time{}, time.Time{}, false
}
