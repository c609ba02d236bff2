package ansiterm

import "strings"

// padLine right-pads line with spaces until it occupies width visible
// columns. Lines already at or beyond width are left untouched.
func padLine(line string, width int) string {
	w := VisibleWidth(line)
	if w >= width {
		return line
	}
	return line + strings.Repeat(" ", width-w)
}

// PadToWidth splits s on "\n" and right-pads every resulting line to
// width visible columns, leaving ANSI escape sequences untouched and
// uncounted. A trailing "\n" is preserved without manufacturing a
// spurious, fully padded, empty final line.
func PadToWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	trailingNewline := strings.HasSuffix(s, "\n")
	body := s
	if trailingNewline {
		body = s[:len(s)-1]
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	out := strings.Join(lines, "\n")
	if trailingNewline {
		out += "\n"
	}
	return out
}
