//go:build unix

package engine

import "syscall"

const sigwinch = syscall.SIGWINCH
