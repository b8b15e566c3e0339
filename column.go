package tablefmt

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Separator runes.
const (
	SepBar    = '|'
	SepCorner = '+'
	SepBlank  = ' '
)

// Column describes one fixed-width cell slot.
type Column struct {
	Label       string
	Width       int
	LeftMargin  int
	RightMargin int
	// Separator is drawn in front of the column's cells.
	Separator rune
	Align     Alignment
}

// ParseColumns parses a column specification such as "| ID | NAME |".
// Text before the first delimiter and after the last one is ignored, so a
// spec without two delimiters yields no columns.
func ParseColumns(spec string) []Column {
	var (
		cols    []Column
		segment strings.Builder
		sep     rune
		open    bool
	)
	for _, r := range spec {
		switch r {
		case SepBar, SepCorner:
			if open {
				cols = append(cols, newColumn(sep, segment.String()))
			}
			sep, open = r, true
			segment.Reset()
		default:
			segment.WriteRune(r)
		}
	}
	return cols
}

func newColumn(sep rune, segment string) Column {
	label := strings.TrimSpace(segment)
	return Column{
		Label:       label,
		Width:       runewidth.StringWidth(label),
		LeftMargin:  utf8.RuneCountInString(segment) - utf8.RuneCountInString(strings.TrimLeftFunc(segment, unicode.IsSpace)),
		RightMargin: utf8.RuneCountInString(segment) - utf8.RuneCountInString(strings.TrimRightFunc(segment, unicode.IsSpace)),
		Separator:   sep,
		Align:       AlignLeft,
	}
}
