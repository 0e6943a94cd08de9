package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderCountsMessages(t *testing.T) {
	r := NewRecorder()

	r.RecordMessage("status", time.Millisecond, nil)
	r.RecordMessage("status", time.Millisecond, nil)
	r.RecordMessage("status", time.Millisecond, errors.New("boom"))
	r.RecordMessage("ping", time.Millisecond, nil)

	if got := r.Messages("status"); got != 3 {
		t.Errorf("Messages(status) = %d, want 3", got)
	}
	if got := r.HandlerErrors("status"); got != 1 {
		t.Errorf("HandlerErrors(status) = %d, want 1", got)
	}
	if got := r.Messages("ping"); got != 1 {
		t.Errorf("Messages(ping) = %d, want 1", got)
	}
	if got := r.Messages("teams"); got != 0 {
		t.Errorf("Messages for unseen type = %d, want 0", got)
	}
}

func TestRecorderUnknownTypesAndPanics(t *testing.T) {
	r := NewRecorder()

	r.RecordUnknownType("mystery")
	r.RecordUnknownType("mystery")
	if got := r.UnknownTypes(); got != 2 {
		t.Errorf("UnknownTypes = %d, want 2", got)
	}

	r.RecordListener("status", false)
	r.RecordListener("status", true)
	if got := r.ListenerPanics(); got != 1 {
		t.Errorf("ListenerPanics = %d, want 1", got)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var r *Recorder

	// All methods must be no-ops on a nil receiver.
	r.RecordMessage("status", time.Millisecond, nil)
	r.RecordUnknownType("x")
	r.RecordAction("steal")
	r.RecordListener("status", true)
	r.RecordConnect(nil)
	r.RecordFrame(128)
	r.RecordHTTPRequest("GET", "/game", 200, time.Millisecond)

	if r.Messages("status") != 0 || r.UnknownTypes() != 0 || r.ListenerPanics() != 0 {
		t.Fatal("nil recorder should report zeros")
	}
}
