// Package progress provides a lightweight tracker that keeps aggregated
// cell counters (total, completed, failed, skipped) for a single notebook
// session.  The tracker instance lives in the dispatch context; every
// component that receives the context can update the counters via the Delta
// helper without requiring a global registry.

package progress

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Delta represents an incremental counter change.
type Delta struct {
	Total     int
	Completed int
	Skipped   int
	Failed    int
}

// Progress keeps aggregated cell counters. It is safe for concurrent use.
type Progress struct {
	SessionID string
	Variant   string
	StartedAt time.Time

	TotalCells     int
	CompletedCells int
	SkippedCells   int // denied by policy
	FailedCells    int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta to the tracker.  If an onChange callback
// has been registered it is invoked with a copy of the updated tracker
// outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()
	p.TotalCells += d.Total
	p.CompletedCells += d.Completed
	p.SkippedCells += d.Skipped
	p.FailedCells += d.Failed
	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

func (p *Progress) copy() Progress {
	return Progress{
		SessionID:      p.SessionID,
		Variant:        p.Variant,
		StartedAt:      p.StartedAt,
		TotalCells:     p.TotalCells,
		CompletedCells: p.CompletedCells,
		SkippedCells:   p.SkippedCells,
		FailedCells:    p.FailedCells,
	}
}

// Summary renders the counters as a single line
func (p *Progress) Summary(now time.Time) string {
	s := p.Snapshot()
	return fmt.Sprintf("%d cells: %d completed, %d failed, %d skipped in %s",
		s.TotalCells, s.CompletedCells, s.FailedCells, s.SkippedCells, now.Sub(s.StartedAt).Round(time.Second))
}

// OnChange registers a callback that is invoked after every Update.
// Passing nil disables the callback.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.
func WithNewTracker(ctx context.Context, sessionID, variant string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		SessionID: sessionID,
		Variant:   variant,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot.
func GetSnapshot(ctx context.Context) (Progress, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Progress{}, false
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
