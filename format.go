package tablefmt

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrPrint             = errors.New("print failed")
)

// Format represents an export format.
type Format string

const (
	Text     Format = "text"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
)

var formats = []Format{Text, CSV, TSV, JSON, YAML, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls cell text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// String returns "L" or "R".
func (a Alignment) String() string {
	if a == AlignRight {
		return "R"
	}
	return "L"
}

func parseAlignment(c rune) (Alignment, bool) {
	switch c {
	case 'L', 'l':
		return AlignLeft, true
	case 'R', 'r':
		return AlignRight, true
	default:
		return AlignLeft, false
	}
}

// Export writes header and rows in format f.
//
// Text renders through a [Formatter]: a header, every row as given, and a
// footer rule. The other formats write resolved cell text: markers are
// applied, rule rows are dropped, and a nil header defaults to the column
// labels.
func (t *Table) Export(w io.Writer, f Format, header []string, rows [][]string) error {
	if f == Text {
		return t.exportText(w, header, rows)
	}
	hdr, resolved := t.resolveAll(header, rows)
	switch f {
	case CSV:
		return writeCSV(w, hdr, resolved)
	case TSV:
		return writeTSV(w, hdr, resolved)
	case JSON:
		return writeJSON(w, hdr, resolved)
	case YAML:
		return writeYAML(w, hdr, resolved)
	case Markdown:
		return writeMarkdown(w, hdr, resolved, t.columns)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func (t *Table) exportText(w io.Writer, header []string, rows [][]string) error {
	f := t.Formatter().Header(header...)
	for _, row := range rows {
		f.Row(row...)
	}
	return f.Footer().Print(w)
}

func (t *Table) resolveAll(header []string, rows [][]string) ([]string, [][]string) {
	if len(header) == 0 {
		header = t.fill(labelMarker)
	}
	hdr, _ := t.resolve(header)
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if cells, ok := t.resolve(row); ok {
			out = append(out, cells)
		}
	}
	return hdr, out
}

// exportDoc is the JSON and YAML export shape.
type exportDoc struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}
