package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS control bytes
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width and height
)

// Document accumulates an ESC/POS byte stream for a thermal printer.
// Width is the paper width in characters: 32 for 58mm, 48 for 80mm.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument creates an initialized document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{esc, '@'})
	return d
}

// Width returns the paper width in characters.
func (d *Document) Width() int {
	return d.width
}

// SetAlign sets text alignment to AlignLeft, AlignCenter, or AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{esc, 'a', byte(align)})
	return d
}

// SetBold enables or disables emphasized text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

// SetFontSize sets the character size, FontNormal or FontDouble.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{gs, '!', size})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
	return d
}

// TextF writes a formatted line followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// FeedLines advances the paper by n lines.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

// Separator prints a full-width line of the given character.
func (d *Document) Separator(char byte) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// KeyValue prints a left-aligned key with the value pushed to the right edge.
func (d *Document) KeyValue(key, value string) *Document {
	pad := d.width - len([]rune(key)) - len([]rune(value))
	if pad < 1 {
		pad = 1
	}
	return d.Text(key + strings.Repeat(" ", pad) + value)
}

// ItemLine prints "NxName" with the line total right-aligned.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	prefix := fmt.Sprintf("%dx %s", qty, name)
	avail := d.width - len([]rune(total)) - 1
	if runes := []rune(prefix); len(runes) > avail && avail > 0 {
		prefix = string(runes[:avail])
	}
	return d.KeyValue(prefix, total)
}

// PartialCut sends the partial paper cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
