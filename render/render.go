// Package render implements owl's component C4: the differential
// renderer that reconciles the in-memory block store and write queue
// against whatever is currently painted on screen, producing the one
// composite ANSI byte stream a tick writes to the terminal.
//
// It is grounded on the cursor-relative redraw strategy in Elvish's
// pkg/cli/term.Writer (src.elv.sh/pkg/cli/term/writer.go): move the
// cursor to a known offset, overwrite, move on, never read the
// terminal back. owl narrows that general buffer-diff approach to a
// fixed stack of named blocks at the bottom of the screen, per
// spec.md §4.3.
package render

import (
	"fmt"
	"strings"

	"github.com/ConnorRigby/owl/ansiterm"
	"github.com/ConnorRigby/owl/block"
	"github.com/ConnorRigby/owl/writequeue"
)

// CursorUp returns the escape sequence that moves the cursor up n
// rows, or "" if n <= 0.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[%dA", n)
}

// CursorDown returns the escape sequence that moves the cursor down n
// rows, or "" if n <= 0.
func CursorDown(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[%dB", n)
}

// Box renders content to exactly height rows of width columns, padding
// short lines with spaces and short content with blank rows at the
// bottom. Every row, including the last, is newline-terminated: owl's
// blocks are always followed immediately by whatever comes next,
// whether that is another block or the resting place of the cursor.
func Box(content string, width, height int) string {
	rendered, _ := ansiterm.RenderBlock(content, width)
	padded := ansiterm.PadToWidth(rendered, width)
	lines := strings.Split(padded, "\n")
	blank := strings.Repeat(" ", width)
	for len(lines) < height {
		lines = append(lines, blank)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n") + "\n"
}

// Result is everything one tick's render call produced.
type Result struct {
	// Output is the composite byte stream to write to the terminal in
	// a single call. It is empty if there was nothing to do.
	Output string
	// Reply must be invoked only after Output has been written
	// successfully, never before (spec.md §4.3 Phase A).
	Reply func()
}

// Tick runs one full render cycle (spec.md §4.3's Phase A, B, and C)
// against store and wq, using the current terminal width and whether
// any above-write has ever been painted before. It returns the
// composite output to write and the updated abovePaintDone flag.
func Tick(store *block.Store, wq *writequeue.Queue, width int, abovePaintDone bool) (Result, bool) {
	phaseA, reply, abovePaintDone := renderPhaseA(store, wq, width, abovePaintDone)
	phaseARan := phaseA != "" || reply != nil

	phaseB := renderPhaseB(store, width, phaseARan)
	phaseC := renderPhaseC(store, width)

	var parts []string
	for _, p := range []string{phaseA, phaseB, phaseC} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	res := Result{Output: strings.Join(parts, "\n")}
	if reply != nil {
		res.Reply = reply
	} else {
		res.Reply = func() {}
	}
	return res, abovePaintDone
}

// renderPhaseA drains the write queue and, if it was non-empty,
// produces the cursor motion and padded bytes needed to paint it above
// the block region.
func renderPhaseA(store *block.Store, wq *writequeue.Queue, width int, abovePaintDone bool) (string, func(), bool) {
	entries := wq.Drain()
	if len(entries) == 0 {
		return "", nil, abovePaintDone
	}

	// Deferred producers are resolved here, at the point the queue is
	// actually drained for rendering, never earlier.
	resolved := make([][]byte, len(entries))
	for i, e := range entries {
		if e.Producer != nil {
			resolved[i] = e.Producer()
		} else {
			resolved[i] = e.Bytes
		}
	}

	H := 0
	for _, id := range store.Rendered() {
		if b, ok := store.Get(id); ok {
			H += b.LastHeight
		}
	}
	up := H
	if abovePaintDone {
		up = H + 1
	}

	var sb strings.Builder
	if up == 0 {
		for _, b := range resolved {
			sb.Write(b)
		}
	} else {
		sb.WriteString(CursorUp(up))
		for _, b := range resolved {
			sb.WriteString(ansiterm.PadToWidth(string(b), width))
		}
	}

	reply := func() {
		for _, e := range entries {
			if e.Reply != nil {
				e.Reply()
			}
		}
	}
	// The queued bytes are already newline-terminated; when phase B or
	// C follows, Tick supplies the single separator newline between
	// phases, so strip it here to avoid a doubled blank line ahead of it.
	out := sb.String()
	if len(store.Rendered()) > 0 || len(store.Pending()) > 0 {
		out = strings.TrimSuffix(out, "\n")
	}
	return out, reply, true
}

// renderPhaseB walks the rendered blocks top-to-bottom, repainting
// every block that changed, that is invalidated because phaseARan, or
// that is invalidated because an earlier block grew this tick.
func renderPhaseB(store *block.Store, width int, phaseARan bool) string {
	dirty := store.TakeDirty()
	rendered := store.Rendered()

	var out strings.Builder
	totalHeightBeforeCursor := 0
	pendingOffset := 0
	force := phaseARan
	emittedAny := false
	lastEmitted := -1

	for i, id := range rendered {
		b, ok := store.Get(id)
		if !ok {
			continue
		}
		oldH := b.LastHeight

		if force || dirty[id] {
			content := b.Render(b.State)
			_, newH := ansiterm.RenderBlock(content, width)
			maxH := newH
			if oldH > maxH {
				maxH = oldH
			}
			if pendingOffset > 0 {
				out.WriteString(CursorDown(pendingOffset))
				pendingOffset = 0
			}
			out.WriteString(Box(content, width, maxH))
			b.LastContent = content
			b.LastHeight = maxH
			if newH > oldH {
				force = true
			}
			emittedAny = true
			lastEmitted = i
		} else {
			pendingOffset += oldH
		}
		totalHeightBeforeCursor += oldH
	}

	if !emittedAny {
		return ""
	}

	var prefix string
	if !phaseARan {
		prefix = CursorUp(totalHeightBeforeCursor)
	}

	trailingOffset := 0
	for i := lastEmitted + 1; i < len(rendered); i++ {
		if b, ok := store.Get(rendered[i]); ok {
			trailingOffset += b.LastHeight
		}
	}
	suffix := CursorDown(trailingOffset)

	return prefix + out.String() + suffix
}

// renderPhaseC paints every block registered since the last tick. New
// blocks always go at the bottom, where the cursor already sits, so no
// cursor motion is emitted.
func renderPhaseC(store *block.Store, width int) string {
	pending := store.Pending()
	if len(pending) == 0 {
		return ""
	}
	var out strings.Builder
	for _, id := range pending {
		b, ok := store.Get(id)
		if !ok {
			continue
		}
		content := b.Render(b.State)
		_, h := ansiterm.RenderBlock(content, width)
		out.WriteString(Box(content, width, h))
		b.LastContent = content
		b.LastHeight = h
	}
	store.CommitPending()
	return out.String()
}
