package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ConnorRigby/owl/render"
)

// longRefresh is long enough that the periodic ticker never fires
// during a test; every tick in these tests is driven explicitly via
// RenderNow, so assertions don't race the actor's own timer.
const longRefresh = time.Hour

func startTest(t *testing.T, term *fakeTerm) *Engine {
	t.Helper()
	e, err := Start(Options{
		RefreshEvery:  longRefresh,
		TerminalWidth: fakeTermWidth,
		Terminal:      term,
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { e.Stop() })
	return e
}

func TestAddBlockFirstPaint(t *testing.T) {
	term := newFakeTerm()
	e := startTest(t, term)

	e.AddBlock("a", "A", nil)
	e.AddBlock("b", "B", nil)
	if err := e.RenderNow(); err != nil {
		t.Fatalf("RenderNow: %v", err)
	}

	want := pad("A") + "\n" + pad("B") + "\n"
	if diff := cmp.Diff(want, term.last()); diff != "" {
		t.Errorf("last write mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateRepaintsOnlyChangedBlock(t *testing.T) {
	term := newFakeTerm()
	e := startTest(t, term)

	e.AddBlock("a", "A", nil)
	e.AddBlock("b", "B", nil)
	e.RenderNow()

	e.Update("a", "A2")
	e.RenderNow()

	want := render.CursorUp(2) + render.Box("A2", fakeTermWidth, 1) + render.CursorDown(1)
	if diff := cmp.Diff(want, term.last()); diff != "" {
		t.Errorf("last write mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateUnknownIDIsSilentlyIgnored(t *testing.T) {
	term := newFakeTerm()
	e := startTest(t, term)

	e.AddBlock("a", "A", nil)
	e.RenderNow()
	before := term.history()

	e.Update("ghost", "boo")
	e.RenderNow()

	after := term.history()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("tick with no real change produced a terminal write (-before +after):\n%s", diff)
	}
}

func TestPutCharsAcksAfterPaint(t *testing.T) {
	term := newFakeTerm()
	e := startTest(t, term)

	e.AddBlock("a", "A", nil)
	e.RenderNow()

	done := make(chan struct{})
	go func() {
		if err := e.PutChars([]byte("hello\n")); err != nil {
			t.Errorf("PutChars: %v", err)
		}
		close(done)
	}()

	// PutChars only acks once a tick has actually painted it; poll with
	// RenderNow until that happens instead of assuming the background
	// goroutine's send has already landed in the mailbox.
	deadline := time.After(time.Second)
	for {
		select {
		case <-done:
			goto acked
		case <-deadline:
			t.Fatal("PutChars did not return after the tick that painted it")
		default:
			e.RenderNow()
			time.Sleep(time.Millisecond)
		}
	}
acked:

	last := term.last()
	if !strings.Contains(last, "hello") {
		t.Errorf("last write = %q, want it to contain %q", last, "hello")
	}
}

func TestPutCharsFuncDefersProduction(t *testing.T) {
	term := newFakeTerm()
	e := startTest(t, term)

	e.AddBlock("a", "A", nil)
	e.RenderNow()

	called := false
	done := make(chan struct{})
	go func() {
		err := e.PutCharsFunc(func() []byte {
			called = true
			return []byte("deferred\n")
		})
		if err != nil {
			t.Errorf("PutCharsFunc: %v", err)
		}
		close(done)
	}()

	// The producer must not run just because the message reached the
	// actor's mailbox; only an actual tick may invoke it.
	time.Sleep(10 * time.Millisecond)
	if called {
		t.Fatalf("producer ran before any tick occurred")
	}

	deadline := time.After(time.Second)
	for {
		select {
		case <-done:
			goto acked
		case <-deadline:
			t.Fatal("PutCharsFunc did not return after the tick that painted it")
		default:
			e.RenderNow()
			time.Sleep(time.Millisecond)
		}
	}
acked:

	if !called {
		t.Errorf("producer never ran")
	}
	if last := term.last(); !strings.Contains(last, "deferred") {
		t.Errorf("last write = %q, want it to contain %q", last, "deferred")
	}
}

func TestFlushResetsRegion(t *testing.T) {
	term := newFakeTerm()
	e := startTest(t, term)

	e.AddBlock("a", "A", nil)
	e.RenderNow()

	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	e.AddBlock("c", "C", nil)
	e.RenderNow()

	want := pad("C") + "\n"
	if diff := cmp.Diff(want, term.last()); diff != "" {
		t.Errorf("last write after flush mismatch (-want +got):\n%s", diff)
	}
}

func TestStopMakesEngineUnusable(t *testing.T) {
	term := newFakeTerm()
	e, err := Start(Options{RefreshEvery: longRefresh, TerminalWidth: fakeTermWidth, Terminal: term})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	e.AddBlock("a", "A", nil)
	if err := e.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	if err := e.PutChars([]byte("x")); err != ErrStopped {
		t.Errorf("PutChars after Stop = %v, want ErrStopped", err)
	}
	if err := e.Flush(); err != ErrStopped {
		t.Errorf("Flush after Stop = %v, want ErrStopped", err)
	}
}

func TestWriteFailureTerminatesActor(t *testing.T) {
	term := newFakeTerm()
	e := startTestNoCleanup(t, term)

	e.AddBlock("a", "A", nil)
	e.RenderNow()

	term.setFail(true)
	e.Update("a", "A2")
	e.RenderNow() // swallow any error: the point is what happens after

	if err := e.PutChars([]byte("x")); err != ErrStopped {
		t.Errorf("PutChars after a failed write = %v, want ErrStopped", err)
	}
}

func startTestNoCleanup(t *testing.T, term *fakeTerm) *Engine {
	t.Helper()
	e, err := Start(Options{RefreshEvery: longRefresh, TerminalWidth: fakeTermWidth, Terminal: term})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return e
}

func pad(s string) string {
	if len(s) >= fakeTermWidth {
		return s
	}
	return s + strings.Repeat(" ", fakeTermWidth-len(s))
}
