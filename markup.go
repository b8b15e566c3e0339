package tablefmt

import "strings"

const (
	labelMarker = "{label}"
	ruleMarker  = "{---}"
)

// carry is the separator state handed from one cell to the next.
type carry int

const (
	carryNone carry = iota
	carryCorner
	carryBlank
)

// cell is a raw value resolved against its column.
type cell struct {
	content string
	sep     rune
	align   Alignment
	left    int
	right   int
	rule    bool
}

// splitMarker splits "{marker}content". A value without a closing brace has
// no marker.
func splitMarker(raw string) (marker, content string, ok bool) {
	if !strings.HasPrefix(raw, "{") {
		return "", raw, false
	}
	end := strings.IndexByte(raw, '}')
	if end < 0 {
		return "", raw, false
	}
	return raw[1:end], raw[end+1:], true
}

// resolveCell applies the incoming carry and the value's marker. It returns
// the carry for the next cell.
func resolveCell(col Column, raw string, in carry) (cell, carry) {
	c := cell{
		content: raw,
		sep:     col.Separator,
		align:   col.Align,
		left:    col.LeftMargin,
		right:   col.RightMargin,
	}
	switch {
	case in == carryCorner:
		c.sep = SepCorner
	case in == carryBlank && raw == "":
		c.sep = SepBlank
	}

	marker, content, ok := splitMarker(raw)
	if !ok {
		return c, carryNone
	}
	c.content = content
	if marker == "" {
		c.content = ""
		return c, carryNone
	}

	out := carryNone
	if marker == "label" {
		c.content = col.Label
	}
	if marker == "---" || marker == "===" {
		c.left, c.right = 0, 0
		c.sep, out = SepCorner, carryCorner
		c.content = strings.Repeat(marker[:1], max(0, col.Width))
		c.rule = true
	}
	if strings.HasPrefix(marker, "L") {
		c.align = AlignLeft
	}
	if strings.HasPrefix(marker, "R") {
		c.align = AlignRight
	}
	if strings.Contains(marker, " ") {
		c.sep, out = SepBlank, carryBlank
	}
	return c, out
}
