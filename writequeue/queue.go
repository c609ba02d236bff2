// Package writequeue implements owl's component C3: the queue of
// "put-above" byte chunks and their reply addresses, submitted between
// ticks by put_chars (spec.md §3, §4.3 Phase A).
package writequeue

// Reply is satisfied once the bytes that were queued alongside it have
// actually been painted above the sticky region.
type Reply func()

// Entry is one queued write: either the bytes to emit directly, or a
// Producer that is called to obtain them. Producer is resolved only
// when the entry is actually drained for rendering, never before, so
// a deferred put_chars really does defer producing its bytes until
// the actor is ready to render them.
type Entry struct {
	Bytes    []byte
	Producer func() []byte
	Reply    Reply
}

// Queue is a FIFO queue of Entries. It mirrors the Elixir source's
// internal LIFO stack (appending is O(1) there too) but keeps FIFO
// order directly, since Go has no reason to pay for a reversal on
// drain the way a cons-list-based stack would.
type Queue struct {
	entries []Entry
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Push enqueues one write. reply may be nil if the caller does not
// need an acknowledgement.
func (q *Queue) Push(bytes []byte, reply Reply) {
	q.entries = append(q.entries, Entry{Bytes: bytes, Reply: reply})
}

// PushFunc enqueues a deferred write: producer is not called until the
// entry is drained, so the bytes are not produced until the actor is
// actually ready to render them.
func (q *Queue) PushFunc(producer func() []byte, reply Reply) {
	q.entries = append(q.entries, Entry{Producer: producer, Reply: reply})
}

// Len reports how many entries are currently queued.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Drain returns all queued entries, in FIFO (submission) order, and
// empties the queue.
func (q *Queue) Drain() []Entry {
	entries := q.entries
	q.entries = nil
	return entries
}
