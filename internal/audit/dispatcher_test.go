package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

type countingSink struct {
	count atomic.Int64
}

func (s *countingSink) Emit(context.Context, Event) {
	s.count.Add(1)
}

type gateSink struct {
	gate chan struct{}
}

func (s *gateSink) Emit(context.Context, Event) {
	<-s.gate
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher

	d.Emit(context.Background(), Event{EventType: TypeLogin})
	d.Close()
	if got := d.Dropped(); got != 0 {
		t.Fatalf("expected zero dropped on nil dispatcher, got %d", got)
	}
}

func TestDisabledConfigYieldsNilDispatcher(t *testing.T) {
	if d := NewDispatcher(Config{Enabled: false}, &countingSink{}); d != nil {
		t.Fatal("expected nil dispatcher when disabled")
	}
}

func TestCloseDrainsBufferedEvents(t *testing.T) {
	sink := &countingSink{}
	d := NewDispatcher(Config{Enabled: true, BufferSize: 64}, sink)

	for i := 0; i < 10; i++ {
		d.Emit(context.Background(), Event{EventType: TypeLogin})
	}
	d.Close()

	if got := sink.count.Load(); got != 10 {
		t.Fatalf("expected 10 delivered events after drain, got %d", got)
	}
}

func TestDropIfFullCountsDrops(t *testing.T) {
	sink := &gateSink{gate: make(chan struct{})}
	d := NewDispatcher(Config{Enabled: true, BufferSize: 1, DropIfFull: true}, sink)

	// Give the worker a moment to pull the first event and block in the
	// sink, then saturate the single-slot buffer.
	d.Emit(context.Background(), Event{EventType: "a"})

	deadline := time.Now().Add(time.Second)
	for d.Dropped() == 0 {
		d.Emit(context.Background(), Event{EventType: "b"})
		if time.Now().After(deadline) {
			t.Fatal("expected drops once the buffer was full")
		}
	}

	close(sink.gate)
	d.Close()
}

func TestJSONWriterSinkWritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), Event{EventType: TypeLogin, SubjectID: "u1", Success: true})
	sink.Emit(context.Background(), Event{EventType: TypeLogout, Success: true})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d:\n%s", len(lines), buf.String())
	}

	var first Event
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal first line: %v", err)
	}
	if first.EventType != TypeLogin || first.SubjectID != "u1" {
		t.Fatalf("unexpected first event: %+v", first)
	}
}

func TestChannelSinkDeliversEvents(t *testing.T) {
	sink := NewChannelSink(4)
	d := NewDispatcher(Config{Enabled: true, BufferSize: 4}, sink)

	d.Emit(context.Background(), Event{EventType: TypeCitySelected, City: "Pune"})

	select {
	case event := <-sink.Events():
		if event.EventType != TypeCitySelected || event.City != "Pune" {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	d.Close()
}
