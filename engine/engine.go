// Package engine implements owl's component C5, the single-threaded
// actor that owns a terminal's sticky block region, and exposes the
// public API described in spec.md §6.
//
// It is grounded on the actor loop in Elvish's pkg/cli/loop.go: one
// goroutine, one mailbox, no locks anywhere in the hot path. owl's
// actor differs from the teacher's in one respect the teacher doesn't
// need: it runs on a timer rather than purely in response to terminal
// input, since owl has no line-editing input of its own to wait on.
package engine

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ConnorRigby/owl/block"
)

// DefaultRefresh is the refresh interval used when Options.RefreshEvery
// is zero (spec.md §6: "refresh_every: positive ms, default 100").
const DefaultRefresh = 100 * time.Millisecond

// AutoWidth requests that the engine query the terminal for its width
// every tick, rather than using a fixed column count.
const AutoWidth = 0

// Options configures Start. The zero value is valid and applies every
// documented default.
type Options struct {
	// Name is an optional identifier, surfaced only in log fields.
	Name string
	// RefreshEvery is the tick period. Zero means DefaultRefresh.
	RefreshEvery time.Duration
	// TerminalWidth is a fixed column count, or AutoWidth to query the
	// terminal every tick (the default).
	TerminalWidth int
	// Terminal is the collaborator the engine writes to and queries
	// width from. Defaults to wrapping os.Stdout.
	Terminal Terminal
	// Logger receives debug/warn instrumentation. Defaults to
	// logrus.StandardLogger().
	Logger *logrus.Logger
}

func (o Options) refresh() time.Duration {
	if o.RefreshEvery <= 0 {
		return DefaultRefresh
	}
	return o.RefreshEvery
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

// Engine is a handle to a running actor. Every method is safe to call
// from any goroutine; all of them only ever send on the mailbox.
type Engine struct {
	mailbox chan message
	stopped chan struct{}
}

// Start launches the actor and returns a handle to it, or ErrNoTerminal
// if opts.Terminal is nil and stdout is not a terminal (spec.md §7,
// startup failure).
func Start(opts Options) (*Engine, error) {
	term := opts.Terminal
	if term == nil {
		t, err := NewFDTerminal(os.Stdout)
		if err != nil {
			return nil, err
		}
		term = t
	}

	e := &Engine{
		mailbox: make(chan message, 256),
		stopped: make(chan struct{}),
	}

	a := newActor(opts, term, e.stopped)
	go a.run(e.mailbox)

	return e, nil
}

// AddBlock registers a new sticky block at the bottom of the region.
// It is fire-and-forget (spec.md §4.4).
func (e *Engine) AddBlock(id string, state any, render block.RenderFunc) {
	e.send(addBlockMsg{id: id, state: state, render: render})
}

// Update replaces a block's state, to be picked up on the next tick.
// It silently no-ops if id is unknown or the engine has stopped
// (spec.md §7: "Unknown block ids on update are silently ignored").
func (e *Engine) Update(id string, state any) {
	e.send(updateMsg{id: id, state: state})
}

// PutChars enqueues bytes to be painted above the sticky region on the
// next tick.
func (e *Engine) PutChars(p []byte) error {
	return e.putChars(p, nil)
}

// PutCharsFunc defers producing the bytes until the actor is ready to
// render them, matching spec.md §9's collapse of the dynamic
// put_chars(mod, fun, args) wire form into a single callback. f is
// called on the actor's own goroutine, not the caller's, and not until
// the write queue is actually drained for rendering.
func (e *Engine) PutCharsFunc(f func() []byte) error {
	return e.putChars(nil, f)
}

func (e *Engine) putChars(p []byte, producer func() []byte) error {
	replyCh := make(chan error, 1)
	msg := putCharsMsg{bytes: p, producer: producer, reply: func(err error) { replyCh <- err }}
	if !e.trySend(msg) {
		return ErrStopped
	}
	return <-replyCh
}

// Flush runs an immediate tick, then resets all engine state (cleared
// blocks, write queue, above-paint tracking). Subsequent blocks start a
// fresh terminal region. It blocks until the reset has completed.
func (e *Engine) Flush() error {
	done := make(chan struct{})
	if !e.trySend(flushMsg{done: done}) {
		return ErrStopped
	}
	<-done
	return nil
}

// Stop runs a final tick and terminates the actor. The Engine is
// unusable afterward; every subsequent call returns ErrStopped.
func (e *Engine) Stop() error {
	done := make(chan struct{})
	if !e.trySend(stopMsg{done: done}) {
		return ErrStopped
	}
	<-done
	return nil
}

// RenderNow forces an immediate tick outside the normal timer cadence.
// It is the exported hook for spec.md §4.4's "render now
// (internal/debug)" operation, intended for tests, not steady-state use.
func (e *Engine) RenderNow() error {
	done := make(chan struct{})
	if !e.trySend(renderNowMsg{done: done}) {
		return ErrStopped
	}
	<-done
	return nil
}

func (e *Engine) send(m message) {
	e.trySend(m)
}

// trySend enqueues m unless the actor has already exited, in which
// case it reports failure instead of blocking forever on a dead
// mailbox.
func (e *Engine) trySend(m message) bool {
	select {
	case <-e.stopped:
		return false
	default:
	}
	select {
	case e.mailbox <- m:
		return true
	case <-e.stopped:
		return false
	}
}
