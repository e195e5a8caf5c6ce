package advocacy

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// DebugRecord describes one executed call. Only the latest record is kept
// by the Client; sinks may keep history.
type DebugRecord struct {
	RequestID   uuid.UUID
	Method      string
	Path        string
	URL         string
	AccessToken string
	Query       Params
	Body        Fields
	StatusCode  int
	Response    interface{}
	Err         error
	Duration    time.Duration
	At          time.Time
}

// DebugSink receives debug records. Errors are logged and otherwise
// ignored.
type DebugSink interface {
	Record(ctx context.Context, rec DebugRecord) error
}

// DebugSinkFunc adapts a function to DebugSink.
type DebugSinkFunc func(ctx context.Context, rec DebugRecord) error

func (f DebugSinkFunc) Record(ctx context.Context, rec DebugRecord) error {
	return f(ctx, rec)
}

type debugState struct {
	enabled atomic.Bool
	sinks   []DebugSink

	mu      sync.Mutex
	current *DebugRecord
}

func (d *debugState) setEnabled(v bool) { d.enabled.Store(v) }

func (d *debugState) isEnabled() bool { return d.enabled.Load() }

func (d *debugState) store(rec DebugRecord) {
	d.mu.Lock()
	d.current = &rec
	d.mu.Unlock()
}

func (d *debugState) last() (DebugRecord, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return DebugRecord{}, false
	}
	return *d.current, true
}
