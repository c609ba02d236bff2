package style

import "fmt"

// Color is an ANSI-renderable foreground or background color. It is
// deliberately narrow: owl only needs to turn a color into the SGR
// fragment that selects it, never to introspect or blend colors.
type Color interface {
	fgSGR() string
	bgSGR() string
}

// ANSI is one of the 8 standard or 8 bright ANSI colors (0-15).
type ANSI uint8

func (c ANSI) fgSGR() string {
	if c < 8 {
		return fmt.Sprintf("%d", 30+int(c))
	}
	return fmt.Sprintf("%d", 82+int(c))
}

func (c ANSI) bgSGR() string {
	if c < 8 {
		return fmt.Sprintf("%d", 40+int(c))
	}
	return fmt.Sprintf("%d", 92+int(c))
}

// XTerm256 is a color from the 256-color xterm palette.
type XTerm256 uint8

func (c XTerm256) fgSGR() string { return fmt.Sprintf("38;5;%d", uint8(c)) }
func (c XTerm256) bgSGR() string { return fmt.Sprintf("48;5;%d", uint8(c)) }

// TrueColor is a 24-bit RGB color.
type TrueColor struct{ R, G, B uint8 }

func (c TrueColor) fgSGR() string { return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B) }
func (c TrueColor) bgSGR() string { return fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B) }
