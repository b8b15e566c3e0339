package tablefmt

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// renderRow lays out values against cols. Only min(len(cols), len(values))
// cells are drawn. The closing separator is drawn only when the row reaches
// the last column; any non-empty row ends with a newline.
func renderRow(cols []Column, values []string) string {
	n := min(len(cols), len(values))
	if n == 0 {
		return ""
	}
	var (
		sb   strings.Builder
		in   carry
		sep  rune
		text string
	)
	for i := range n {
		prevEmpty := i == 0 || values[i-1] == ""
		text, sep, in = layoutCell(cols[i], values[i], prevEmpty, in)
		sb.WriteString(text)
	}
	if n == len(cols) {
		if values[n-1] == "" {
			sep = SepBlank
		}
		sb.WriteRune(sep)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// layoutCell renders one cell as its leading separator followed by exactly
// col.Width display columns. It returns the separator used and the carry for
// the next cell.
func layoutCell(col Column, raw string, prevEmpty bool, in carry) (string, rune, carry) {
	c, next := resolveCell(col, raw, in)
	width := max(0, col.Width)
	if c.content == "" {
		c.left, c.right = 0, 0
		if prevEmpty {
			c.sep = SepBlank
		}
		c.content = strings.Repeat(" ", width)
	}
	var body string
	if c.align == AlignRight {
		body = alignRight(c.content, width, c.right)
	} else {
		body = alignLeft(c.content, width, c.left)
	}
	return string(c.sep) + body, c.sep, next
}

// alignLeft keeps the head of s that fits after the margin and pads right.
func alignLeft(s string, width, margin int) string {
	margin = min(max(0, margin), width)
	s = runewidth.Truncate(s, width-margin, "")
	pad := width - margin - runewidth.StringWidth(s)
	return strings.Repeat(" ", margin) + s + strings.Repeat(" ", pad)
}

// alignRight keeps the tail of s that fits before the margin and pads left.
func alignRight(s string, width, margin int) string {
	margin = min(max(0, margin), width)
	s = truncateHead(s, width-margin)
	pad := width - margin - runewidth.StringWidth(s)
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", margin)
}

// truncateHead drops runes from the front of s until it fits in width.
func truncateHead(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	used, i := 0, len(s)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		w := runewidth.RuneWidth(r)
		if used+w > width {
			break
		}
		used += w
		i -= size
	}
	return s[i:]
}
