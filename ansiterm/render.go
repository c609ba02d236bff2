package ansiterm

import "strings"

// chunkLine splits one line (no embedded "\n") into chunks of at most
// width visible columns. Escape sequences never form a chunk on
// their own and are never split from the token that follows them:
// they are held back and emitted with the chunk that receives the
// next visible token (or with the last chunk, at the end of the line).
func chunkLine(line string, width int) []string {
	var chunks []string
	var cur, pending strings.Builder
	curWidth := 0
	flush := func() {
		chunks = append(chunks, cur.String())
		cur.Reset()
		curWidth = 0
	}
	for _, tok := range Tokenize(line) {
		if tok.Escape {
			// Held back until the next visible token is seen, so a
			// flush decided here can't strand it at the end of the
			// chunk it was about to leave.
			pending.WriteString(tok.Text)
			continue
		}
		if curWidth > 0 && curWidth+tok.Width > width {
			flush()
		}
		cur.WriteString(pending.String())
		pending.Reset()
		cur.WriteString(tok.Text)
		curWidth += tok.Width
	}
	cur.WriteString(pending.String())
	pending.Reset()
	if cur.Len() > 0 || len(chunks) == 0 {
		flush()
	}
	return chunks
}

// RenderBlock splits content on explicit line breaks and further
// chunks each resulting line so no visible line exceeds width
// columns. It returns the re-joined multi-line text and the number of
// resulting lines.
//
// content is the VT-rendered byte stream of a style.Text value (or any
// other already-styled string); RenderBlock does not itself know about
// style.Text so that it can also be used directly on raw ANSI input,
// which is what owl's write-queue (put_chars) path needs.
func RenderBlock(content string, width int) (string, int) {
	if width <= 0 {
		width = 1
	}
	lines := strings.Split(content, "\n")
	var allChunks []string
	for _, line := range lines {
		allChunks = append(allChunks, chunkLine(line, width)...)
	}
	return strings.Join(allChunks, "\n"), len(allChunks)
}
