package style

import "strings"

// Text is styled text represented as a recursive variant: a plain run
// of bytes, a run tagged with a Style, or the concatenation of other
// Text values. It has no notion of width or line breaks of its own —
// that is the job of package ansiterm, which walks the VT-rendered
// byte stream produced by VTString.
type Text interface {
	// VTString renders the text as a byte stream with embedded SGR
	// escape sequences, resetting the style at the end of every styled
	// run so runs never bleed into whatever follows them.
	VTString() string
}

type plainText string

// Plain returns unstyled Text.
func Plain(s string) Text { return plainText(s) }

func (p plainText) VTString() string { return string(p) }

type styledText struct {
	text  string
	style Style
}

// Styled returns Text carrying a single Style.
func Styled(s string, st Style) Text { return styledText{s, st} }

func (s styledText) VTString() string {
	sgr := s.style.SGR()
	if sgr == "" {
		return s.text
	}
	return "\033[" + sgr + "m" + s.text + "\033[m"
}

type concatText []Text

// Concat joins Text values left to right.
func Concat(ts ...Text) Text {
	if len(ts) == 1 {
		return ts[0]
	}
	return concatText(ts)
}

func (c concatText) VTString() string {
	var sb strings.Builder
	for _, t := range c {
		sb.WriteString(t.VTString())
	}
	return sb.String()
}

// String returns t.VTString(). The Text implementations do not
// themselves implement fmt.Stringer.
func String(t Text) string { return t.VTString() }
