package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ConnorRigby/owl/block"
	"github.com/ConnorRigby/owl/render"
	"github.com/ConnorRigby/owl/writequeue"
)

// fallbackWidth is used the first time Columns reports ok=false and no
// fixed TerminalWidth was configured, so the very first tick still has
// something sane to wrap at.
const fallbackWidth = 80

// actor owns every piece of mutable engine state. It is the only thing
// in this package that mutates a block.Store or writequeue.Queue, by
// construction: every field below is only ever touched from run's
// goroutine, the same single-owner discipline the teacher's loop.go
// enforces for its own state.
type actor struct {
	refresh    time.Duration
	fixedWidth int
	term       Terminal
	log        *logrus.Entry
	stopped    chan struct{}

	store          *block.Store
	wq             *writequeue.Queue
	width          int
	abovePaintDone bool

	ticksRun int
}

func newActor(opts Options, term Terminal, stopped chan struct{}) *actor {
	width := opts.TerminalWidth
	if width == AutoWidth {
		if w, ok := term.Columns(); ok {
			width = w
		} else {
			width = fallbackWidth
		}
	}
	return &actor{
		refresh:    opts.refresh(),
		fixedWidth: opts.TerminalWidth,
		term:       term,
		log:        opts.logger().WithField("engine", opts.Name),
		stopped:    stopped,
		store:      block.New(),
		wq:         writequeue.New(),
		width:      width,
	}
}

// run is the actor's event loop: one mailbox, one ticker, one resize
// notifier, never more than one of these handled at a time. It mirrors
// the shape of the teacher's loop.Run, minus the input-consuming-burst
// optimization that loop.go needs and owl does not (owl has no
// per-keystroke event storms to coalesce; its own coalescing happens at
// the block-store layer instead, via block.Store.SetState).
func (a *actor) run(mailbox chan message) {
	ticker := time.NewTicker(a.refresh)
	defer ticker.Stop()

	stop := make(chan struct{})
	defer close(stop)

	var resizeCh <-chan struct{}
	if a.fixedWidth == AutoWidth {
		resizeCh = watchResize(stop)
	}

	armed := false

	for {
		select {
		case m := <-mailbox:
			switch msg := m.(type) {
			case addBlockMsg:
				shouldArm := !armed && !a.store.HasWork()
				a.store.Register(msg.id, msg.state, msg.render)
				if shouldArm {
					armed = true
				}

			case updateMsg:
				a.store.SetState(msg.id, msg.state)

			case putCharsMsg:
				shouldArm := !armed
				reply := func() {
					if msg.reply != nil {
						msg.reply(nil)
					}
				}
				if msg.producer != nil {
					a.wq.PushFunc(msg.producer, reply)
				} else {
					a.wq.Push(msg.bytes, reply)
				}
				if shouldArm {
					armed = true
				}

			case flushMsg:
				a.tick()
				a.store.Reset()
				a.wq = writequeue.New()
				a.abovePaintDone = false
				armed = false
				close(msg.done)
				if a.dead() {
					return
				}

			case renderNowMsg:
				armed = a.tick()
				close(msg.done)
				if a.dead() {
					return
				}

			case stopMsg:
				a.tick()
				if !a.dead() {
					close(a.stopped)
				}
				close(msg.done)
				return
			}

		case <-ticker.C:
			if armed {
				armed = a.tick()
				if a.dead() {
					return
				}
			}

		case <-resizeCh:
			armed = a.tick()
			if a.dead() {
				return
			}
		}
	}
}

func (a *actor) dead() bool {
	select {
	case <-a.stopped:
		return true
	default:
		return false
	}
}

// tick runs one full render cycle and reports whether work remains (at
// least one known block, or a write still queued), which is what
// decides re-arming (spec.md §4.4). A terminal
// write failure closes a.stopped, so run's callers can detect and exit
// without attempting the doomed final tick stop would otherwise run
// (spec.md §7: "a write failure should terminate the actor cleanly").
func (a *actor) tick() bool {
	a.ticksRun++

	if a.fixedWidth == AutoWidth {
		if w, ok := a.term.Columns(); ok {
			a.width = w
		}
	}

	res, above := render.Tick(a.store, a.wq, a.width, a.abovePaintDone)
	a.abovePaintDone = above

	didWork := res.Output != ""
	if didWork {
		if _, err := a.term.Write([]byte(res.Output)); err != nil {
			a.log.WithError(err).Warn("terminal write failed, actor exiting")
			res.Reply()
			close(a.stopped)
			return false
		}
		a.log.WithFields(logrus.Fields{
			"tick":  a.ticksRun,
			"bytes": len(res.Output),
		}).Debug("tick painted")
	}
	res.Reply()

	return a.store.HasWork() || a.wq.Len() > 0
}
