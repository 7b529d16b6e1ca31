// Package clock wraps time so session timestamps and cell pacing can be
// stubbed in tests.
package clock

import (
	"context"
	"time"
)

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// SleepFunc pauses for d or until ctx is done. Override in tests to skip pacing.
var SleepFunc = func(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Sleep is a thin wrapper around SleepFunc.
func Sleep(ctx context.Context, d time.Duration) { SleepFunc(ctx, d) }
