package engine

import "github.com/ConnorRigby/owl/block"

// message is the sum type accepted by the actor's mailbox. Every
// operation in spec.md §4.4 has exactly one constructor below.
type message any

type addBlockMsg struct {
	id     string
	state  any
	render block.RenderFunc
}

type updateMsg struct {
	id    string
	state any
}

// putCharsMsg carries either literal bytes or a deferred producer:
// PutChars sets bytes, PutCharsFunc sets producer, matching spec.md
// §9's decision to collapse the wire-level put_chars variants into a
// single shape. producer is not called here or anywhere on the
// caller's goroutine; it is only invoked by the actor, at the point
// the write queue is drained for rendering.
type putCharsMsg struct {
	bytes    []byte
	producer func() []byte
	reply    func(error)
}

type flushMsg struct {
	done chan struct{}
}

type stopMsg struct {
	done chan struct{}
}

type renderNowMsg struct {
	done chan struct{}
}
