package metrics

import (
	"sync"
	"time"
)

type messageStats struct {
	messages        int
	handlerErrors   int
	lastHandlerTime time.Duration
}

// Recorder captures lightweight, in-memory metrics about feed ingestion.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu             sync.Mutex
	stats          map[string]*messageStats
	unknownTypes   int
	listenerPanics int
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*messageStats),
		otel:  otel,
	}
}

// RecordMessage increments counters for one processed message and stores the
// handler latency.
func (r *Recorder) RecordMessage(messageType string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(messageType)
	stats.messages++
	stats.lastHandlerTime = duration
	if err != nil {
		stats.handlerErrors++
	}
	if r.otel != nil {
		r.otel.recordMessage(messageType, duration, err)
	}
}

// RecordUnknownType tracks a message whose type tag had no handler.
func (r *Recorder) RecordUnknownType(messageType string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.unknownTypes++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordUnknownType(messageType)
	}
}

// RecordAction tracks one appended play-by-play action.
func (r *Recorder) RecordAction(actionType string) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordAction(actionType)
}

// RecordListener tracks one listener invocation, noting whether it panicked.
func (r *Recorder) RecordListener(messageType string, panicked bool) {
	if r == nil {
		return
	}
	if panicked {
		r.mu.Lock()
		r.listenerPanics++
		r.mu.Unlock()
	}
	if r.otel != nil {
		r.otel.recordListener(messageType, panicked)
	}
}

// RecordConnect tracks one feed connection attempt.
func (r *Recorder) RecordConnect(err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordConnect(err)
}

// RecordFrame tracks one received feed frame and its size.
func (r *Recorder) RecordFrame(bytes int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordFrame(bytes)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Messages returns the total messages recorded for a type.
func (r *Recorder) Messages(messageType string) int {
	return r.snapshot(messageType).messages
}

// HandlerErrors returns the total failed handler runs recorded for a type.
func (r *Recorder) HandlerErrors(messageType string) int {
	return r.snapshot(messageType).handlerErrors
}

// UnknownTypes returns the total unrecognized message types seen.
func (r *Recorder) UnknownTypes() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unknownTypes
}

// ListenerPanics returns the total listener panics recovered.
func (r *Recorder) ListenerPanics() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listenerPanics
}

func (r *Recorder) ensureStats(messageType string) *messageStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[messageType]
	if !ok {
		stats = &messageStats{}
		r.stats[messageType] = stats
	}
	return stats
}

func (r *Recorder) snapshot(messageType string) messageStats {
	if r == nil {
		return messageStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[messageType]; ok && stats != nil {
		return *stats
	}
	return messageStats{}
}
