package engine

import (
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Terminal is the collaborator the engine writes composite render
// output to and queries for width. It is the Go analog of spec.md §6's
// terminal_columns/terminal_write collaborator pair, folded into one
// interface since both concerns are owned by the same file descriptor
// in every real implementation the teacher ships.
type Terminal interface {
	// Columns returns the current terminal width, or ok=false if it
	// cannot be determined (the engine then falls back to the
	// configured or previously known width).
	Columns() (width int, ok bool)
	// Write flushes one composite render payload. Called at most once
	// per tick.
	Write(p []byte) (int, error)
}

// fdTerminal is the default Terminal, backed by a real file descriptor.
// It is the direct analog of the teacher's pkg/sys terminal helpers
// (WinSize, IsATTY), ported onto golang.org/x/term's portable API with
// go-isatty kept as the secondary TTY check the teacher's own
// sys.IsATTY performs.
type fdTerminal struct {
	f *os.File
}

// NewFDTerminal wraps f (typically os.Stdout) as a Terminal. It returns
// ErrNoTerminal if f is not attached to a terminal at all.
func NewFDTerminal(f *os.File) (Terminal, error) {
	if !term.IsTerminal(int(f.Fd())) && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil, ErrNoTerminal
	}
	return &fdTerminal{f: f}, nil
}

func (t *fdTerminal) Columns() (int, bool) {
	w, _, err := term.GetSize(int(t.f.Fd()))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

func (t *fdTerminal) Write(p []byte) (int, error) {
	return t.f.Write(p)
}

// watchResize starts forwarding each SIGWINCH as a value on the
// returned channel, stopping when stop is closed. It is owl's
// analog of the teacher's sys.NotifySignals + app.go's SIGWINCH case,
// narrowed to the one signal that matters to a width="auto" engine
// (spec.md's supplemented SIGWINCH feature, SPEC_FULL.md §4).
func watchResize(stop <-chan struct{}) <-chan struct{} {
	ch := make(chan struct{}, 1)
	sigCh := make(chan os.Signal, 16)
	signal.Notify(sigCh, sigwinch)
	go func() {
		defer signal.Stop(sigCh)
		for {
			select {
			case <-stop:
				return
			case <-sigCh:
				select {
				case ch <- struct{}{}:
				default:
				}
			}
		}
	}()
	return ch
}
