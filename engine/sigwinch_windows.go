//go:build windows

package engine

import "syscall"

// Windows has no SIGWINCH; width changes are only ever picked up by the
// periodic tick re-querying Columns, same as the teacher's own
// sys.winSize on this platform.
const sigwinch = syscall.Signal(-1)
