package engine

import "sync"

// fakeTerm is an implementation of Terminal useful in tests, grounded
// on the teacher's clitest.fakeTTY: a predefined size plus a recorded
// history of every write, safe for the one test goroutine reading it
// concurrently with the actor goroutine writing to it.
type fakeTerm struct {
	mu     sync.Mutex
	width  int
	writes []string
	fail   bool
}

// fakeTermWidth mirrors clitest.FakeTTYWidth: a fixed width chosen for
// no particular reason beyond being wide enough that none of the test
// fixtures wrap.
const fakeTermWidth = 50

func newFakeTerm() *fakeTerm {
	return &fakeTerm{width: fakeTermWidth}
}

func (t *fakeTerm) Columns() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, true
}

func (t *fakeTerm) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fail {
		return 0, errFakeWriteFailed
	}
	t.writes = append(t.writes, string(p))
	return len(p), nil
}

func (t *fakeTerm) setWidth(w int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.width = w
}

func (t *fakeTerm) setFail(fail bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fail = fail
}

func (t *fakeTerm) history() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.writes...)
}

func (t *fakeTerm) last() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.writes) == 0 {
		return ""
	}
	return t.writes[len(t.writes)-1]
}

var errFakeWriteFailed = fakeWriteError{}

type fakeWriteError struct{}

func (fakeWriteError) Error() string { return "fake terminal write failure" }
