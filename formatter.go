package tablefmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formatter accumulates table text for one [Table] in a private buffer.
// All methods except Print return the formatter for chaining.
//
// A Formatter is not safe for concurrent use. Use one formatter per
// goroutine; formatters may share the same Table.
type Formatter struct {
	table *Table
	buf   strings.Builder
	log   logrus.FieldLogger
}

// FormatterOption configures a [Formatter].
type FormatterOption func(*Formatter)

// WithLogger reports Print failures to l.
func WithLogger(l logrus.FieldLogger) FormatterOption {
	return func(f *Formatter) { f.log = l }
}

// NewFormatter returns a formatter for t. A nil table has no columns.
func NewFormatter(t *Table, opts ...FormatterOption) *Formatter {
	if t == nil {
		t = &Table{}
	}
	f := &Formatter{table: t}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Header writes a rule, a row of labels, and another rule. Without labels,
// every column shows its own label.
func (f *Formatter) Header(labels ...string) *Formatter {
	if len(labels) == 0 {
		labels = f.table.fill(labelMarker)
	}
	return f.Line().Row(labels...).Line()
}

// Footer writes a rule followed by optional raw text lines.
func (f *Formatter) Footer(text ...string) *Formatter {
	return f.Line().Text(text...)
}

// Text writes raw lines that bypass the column layout.
func (f *Formatter) Text(lines ...string) *Formatter {
	for _, line := range lines {
		f.buf.WriteString(line)
		f.buf.WriteByte('\n')
	}
	return f
}

// Line writes a row of markers, by default a full rule.
func (f *Formatter) Line(markers ...string) *Formatter {
	if len(markers) == 0 {
		markers = f.table.fill(ruleMarker)
	}
	return f.Row(markers...)
}

// Row writes one row of values.
func (f *Formatter) Row(values ...string) *Formatter {
	f.buf.WriteString(renderRow(f.table.columns, values))
	return f
}

// Object writes the rows that the table's mappers produce for v.
func (f *Formatter) Object(v any, opts ...RowOption) *Formatter {
	o := applyRowOptions(opts)
	for _, rows := range f.table.mapObject(v) {
		for _, row := range rows {
			f.Row(row...)
		}
		if o.separator {
			f.Line()
		}
	}
	return f
}

// String returns the buffered text without clearing it.
func (f *Formatter) String() string { return f.buf.String() }

// Len returns the number of buffered bytes.
func (f *Formatter) Len() int { return f.buf.Len() }

// Reset discards the buffered text.
func (f *Formatter) Reset() *Formatter {
	f.buf.Reset()
	return f
}

// Print writes the buffered text to w and clears the buffer. A nil writer
// is a no-op. When the write fails, the buffer is kept and the error is
// returned wrapped in [ErrPrint].
func (f *Formatter) Print(w io.Writer) error {
	if w == nil || f.buf.Len() == 0 {
		return nil
	}
	if _, err := io.WriteString(w, f.buf.String()); err != nil {
		if f.log != nil {
			f.log.WithError(err).WithField("bytes", f.buf.Len()).Warn("Table print failed, buffer kept.")
		}
		return fmt.Errorf("%w: %w", ErrPrint, err)
	}
	f.buf.Reset()
	return nil
}
